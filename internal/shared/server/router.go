package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyomeihajime7-hub/Telebot/internal/bot"
	"github.com/gyomeihajime7-hub/Telebot/internal/services/health"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/server/middleware"
	"github.com/gyomeihajime7-hub/Telebot/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Health  *health.Service
	Webhook *bot.Webhook
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
	)

	if deps.Health == nil {
		deps.Health = health.NewService()
	}

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Health())
	})
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/debug", func(c *gin.Context) {
		respond.OK(c, deps.Health.Debug())
	})

	if deps.Webhook != nil {
		r.POST("/webhook/:token", deps.Webhook.Handle)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
