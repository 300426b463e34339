package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := NewRouter(RouterDeps{})
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRootStatus(t *testing.T) {
	resp := doGet(t, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "Bot is running" {
		t.Fatalf("status field = %q", body["status"])
	}
	if body["service"] != "Telegram File Management Bot" {
		t.Fatalf("service field = %q", body["service"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	resp := doGet(t, "/health")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("status field = %q", body["status"])
	}
}

func TestFaviconNoContent(t *testing.T) {
	resp := doGet(t, "/favicon.ico")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("body should be empty, got %q", resp.Body.String())
	}
}

func TestDebugReportsPresenceOnly(t *testing.T) {
	t.Setenv("BOT_TOKEN", "super-secret-token")

	resp := doGet(t, "/debug")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	raw := resp.Body.String()
	if strings.Contains(raw, "super-secret-token") {
		t.Fatal("debug endpoint must not echo values")
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if set, _ := body["bot_token_set"].(bool); !set {
		t.Fatalf("bot_token_set = %v, want true", body["bot_token_set"])
	}
}

func TestNoWebhookRouteWithoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterDeps{})
	req := httptest.NewRequest(http.MethodPost, "/webhook/anything", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":5000",
		"8080":  ":8080",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
