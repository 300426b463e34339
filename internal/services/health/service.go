package health

import "os"

// Service produces the health and diagnostic payloads for the web surface.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status is the payload for the root endpoint.
func (s *Service) Status() map[string]string {
	return map[string]string{
		"status":  "Bot is running",
		"service": "Telegram File Management Bot",
		"version": "1.0.0",
	}
}

// Health is the payload for the health endpoint.
func (s *Service) Health() map[string]string {
	return map[string]string{"status": "healthy"}
}

// Debug reports which environment variables are set. Presence only, values
// are never echoed.
func (s *Service) Debug() map[string]any {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return map[string]any{
		"bot_token_set":    os.Getenv("BOT_TOKEN") != "",
		"database_url_set": os.Getenv("DATABASE_URL") != "" || os.Getenv("NEON_DATABASE_URL") != "",
		"render_env":       os.Getenv("RENDER") != "",
		"port":             port,
	}
}
