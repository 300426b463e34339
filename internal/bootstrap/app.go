package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gyomeihajime7-hub/Telebot/internal/bot"
	"github.com/gyomeihajime7-hub/Telebot/internal/files"
	"github.com/gyomeihajime7-hub/Telebot/internal/services/health"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/config"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/server"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/storage/db"
)

// App holds shared dependencies, constructed once at process start and passed
// down explicitly instead of living in globals.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	FilesRepo  files.Repo
	Sender     bot.Sender
	Handlers   *bot.Handlers
	Dispatcher *bot.Dispatcher
}

// Build prepares shared dependencies: database pool, file-record repository,
// handlers, dispatcher, and the HTTP router. A nil sender is replaced with a
// NopSender so tests and token-less runs stay off the network.
func Build(cfg config.Config, sender bot.Sender) (*App, error) {
	if sender == nil {
		sender = bot.NopSender{}
	}
	ctx := context.Background()

	var (
		sqlDB *sql.DB
		repo  files.Repo
	)
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: database URL empty; using in-memory repository")
		repo = files.NewMemoryRepo()
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
		if err != nil {
			return nil, err
		}
		if err := db.RunMigrations(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
		sqlDB = conn
		repo = &files.PGRepo{DB: conn}
	}

	handlers := bot.NewHandlers(repo, sender)
	dispatcher := bot.NewDispatcher(handlers)

	router := server.NewRouter(server.RouterDeps{
		Health:  health.NewService(),
		Webhook: bot.NewWebhook(cfg.BotToken, dispatcher),
	})

	return &App{
		Config:     cfg,
		Router:     router,
		DB:         sqlDB,
		FilesRepo:  repo,
		Sender:     sender,
		Handlers:   handlers,
		Dispatcher: dispatcher,
	}, nil
}
