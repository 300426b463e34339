package bot

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/gyomeihajime7-hub/Telebot/internal/shared/telemetry"
)

// Webhook adapts platform webhook POSTs onto the dispatcher. The bot token
// doubles as the path secret: requests for any other token are not ours.
type Webhook struct {
	Token      string
	Dispatcher *Dispatcher
}

// NewWebhook constructs a Webhook.
func NewWebhook(token string, d *Dispatcher) *Webhook {
	return &Webhook{Token: token, Dispatcher: d}
}

// Handle processes one webhook request. Unparsable payloads get a 400 and
// touch nothing; everything else is dispatched and acknowledged with a plain
// OK, whatever the handler outcome.
func (w *Webhook) Handle(c *gin.Context) {
	if c.Param("token") != w.Token {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 || string(bytes.TrimSpace(body)) == "null" {
		telemetry.Warn("webhook.empty_body", map[string]any{
			"remote": c.ClientIP(),
		})
		c.String(http.StatusBadRequest, "No data")
		return
	}

	var upd tgbotapi.Update
	if err := json.Unmarshal(body, &upd); err != nil {
		telemetry.Warn("webhook.invalid_update", map[string]any{
			"remote": c.ClientIP(),
			"error":  err.Error(),
		})
		c.String(http.StatusBadRequest, "Invalid update")
		return
	}

	w.Dispatcher.Dispatch(c.Request.Context(), upd)
	c.String(http.StatusOK, "OK")
}
