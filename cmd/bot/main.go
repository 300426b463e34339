package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gyomeihajime7-hub/Telebot/internal/bootstrap"
	"github.com/gyomeihajime7-hub/Telebot/internal/bot"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/config"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/server"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("bot api init: %v", err)
	}
	log.Printf("authorized as @%s", api.Self.UserName)

	app, err := bootstrap.Build(cfg, bot.NewTelegramSender(api))
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)

	if cfg.Production {
		// Hosted mode: point the platform at us, then serve webhook + health.
		// A registration failure is logged and the server still comes up.
		if err := bot.RegisterWebhook(api, cfg.PublicWebhookURL()); err != nil {
			telemetry.Error("webhook.register_failed", map[string]any{"error": err.Error()})
		} else {
			telemetry.Info("webhook.registered", nil)
		}
		log.Printf("starting webhook server on %s", addr)
		if err := app.Router.Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	// Local mode: health server and polling loop run as two independent
	// long-running tasks sharing only the connection pool.
	go func() {
		log.Printf("starting health server on %s", addr)
		if err := app.Router.Run(addr); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := bot.NewPoller(api, app.Dispatcher)
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("poller error: %v", err)
	}
}
