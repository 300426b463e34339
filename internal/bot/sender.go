package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Outgoing is one reply to a chat. ParseMode is empty for plain text.
type Outgoing struct {
	ChatID    int64
	Text      string
	ParseMode string
}

// Sender performs outbound calls against the bot transport. Each call runs to
// completion before returning; there is no queueing, batching, or retry.
type Sender interface {
	Send(ctx context.Context, msg Outgoing) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

// TelegramSender sends through the Bot API client.
type TelegramSender struct {
	API *tgbotapi.BotAPI
}

// NewTelegramSender constructs a TelegramSender.
func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{API: api}
}

// Send delivers one message. The underlying client blocks until the platform
// responds, so the reply is fully sent before the handler returns.
func (s *TelegramSender) Send(ctx context.Context, msg Outgoing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	out.ParseMode = msg.ParseMode
	if _, err := s.API.Send(out); err != nil {
		return fmt.Errorf("send message to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query so the platform clears its
// pending-callback UI state. Answering the same id again is harmless.
func (s *TelegramSender) AnswerCallback(ctx context.Context, callbackID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.API.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("answer callback %s: %w", callbackID, err)
	}
	return nil
}

// NopSender drops every send. It stands in when no bot token is configured,
// which keeps local runs and tests off the network.
type NopSender struct{}

func (NopSender) Send(ctx context.Context, msg Outgoing) error {
	return ctx.Err()
}

func (NopSender) AnswerCallback(ctx context.Context, callbackID string) error {
	return ctx.Err()
}
