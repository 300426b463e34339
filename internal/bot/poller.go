package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gyomeihajime7-hub/Telebot/internal/shared/telemetry"
)

// Poller runs the long-polling dispatch loop used outside hosted mode.
type Poller struct {
	API        *tgbotapi.BotAPI
	Dispatcher *Dispatcher
}

// NewPoller constructs a Poller.
func NewPoller(api *tgbotapi.BotAPI, d *Dispatcher) *Poller {
	return &Poller{API: api, Dispatcher: d}
}

// Run polls for updates until ctx is canceled, dispatching each one in turn.
// Any registered webhook is removed first and the pending backlog dropped.
func (p *Poller) Run(ctx context.Context) error {
	if _, err := p.API.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		telemetry.Warn("poller.delete_webhook_failed", map[string]any{
			"error": err.Error(),
		})
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := p.API.GetUpdatesChan(cfg)

	telemetry.Info("poller.started", nil)
	for {
		select {
		case <-ctx.Done():
			p.API.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			p.Dispatcher.Dispatch(ctx, upd)
		}
	}
}
