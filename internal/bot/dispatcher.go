package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gyomeihajime7-hub/Telebot/internal/shared/telemetry"
)

// Dispatcher classifies updates and runs the matched handler. Handler errors
// stop at this boundary: they are logged, answered with a best-effort generic
// reply when a user is known, and never escalated to the caller.
type Dispatcher struct {
	Handlers *Handlers
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(h *Handlers) *Dispatcher {
	return &Dispatcher{Handlers: h}
}

// Dispatch processes one update to completion.
func (d *Dispatcher) Dispatch(ctx context.Context, upd tgbotapi.Update) {
	ev := Classify(&upd)

	var err error
	switch ev.Kind {
	case EventCommand:
		switch ev.Command {
		case CommandStart:
			err = d.Handlers.Start(ctx, ev)
		case CommandHelp:
			err = d.Handlers.Help(ctx, ev)
		case CommandMyFiles:
			err = d.Handlers.MyFiles(ctx, ev)
		}
	case EventUpload:
		err = d.Handlers.Upload(ctx, ev)
	case EventCallback:
		err = d.Handlers.Callback(ctx, ev)
	case EventUnhandled:
		// nothing matched; the update is acknowledged without action
	}

	if err == nil {
		telemetry.Info("update.processed", map[string]any{
			"update_id": upd.UpdateID,
			"kind":      ev.Kind,
		})
		return
	}

	telemetry.Error("update.failed", map[string]any{
		"update_id": upd.UpdateID,
		"kind":      ev.Kind,
		"user_id":   ev.UserID,
		"error":     err.Error(),
	})

	if ev.UserID == 0 {
		return
	}
	if sendErr := d.Handlers.Sender.Send(ctx, Outgoing{ChatID: ev.UserID, Text: failureText}); sendErr != nil {
		// best-effort only; nothing left to do if even this reply fails
		telemetry.Error("update.failure_reply_failed", map[string]any{
			"update_id": upd.UpdateID,
			"user_id":   ev.UserID,
			"error":     sendErr.Error(),
		})
	}
}
