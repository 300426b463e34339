package config

import "testing"

func TestCleanDatabaseURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "plain url",
			in:   "postgresql://u:p@host:5432/db",
			want: "postgresql://u:p@host:5432/db",
			ok:   true,
		},
		{
			name: "psql wrapped",
			in:   "psql 'postgresql://u:p@host/db?sslmode=require'",
			want: "postgresql://u:p@host/db?sslmode=require",
			ok:   true,
		},
		{
			name: "psql without url",
			in:   "psql -h host -d db",
			want: "",
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := cleanDatabaseURL(tc.in)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("cleanDatabaseURL(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestPublicWebhookURL(t *testing.T) {
	cfg := Config{BotToken: "tok", WebhookURL: "https://override.example/webhook/tok"}
	if got := cfg.PublicWebhookURL(); got != "https://override.example/webhook/tok" {
		t.Fatalf("override: got %q", got)
	}

	cfg = Config{BotToken: "tok", ExternalURL: "https://my-bot.onrender.com/"}
	if got := cfg.PublicWebhookURL(); got != "https://my-bot.onrender.com/webhook/tok" {
		t.Fatalf("external url: got %q", got)
	}

	cfg = Config{BotToken: "tok", ServiceName: "filebot"}
	if got := cfg.PublicWebhookURL(); got != "https://filebot.onrender.com/webhook/tok" {
		t.Fatalf("service name fallback: got %q", got)
	}
}
