package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/config"
	"github.com/belenfg/restaurant-chatbot/internal/bootstrap"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: "file", DataDir: t.TempDir()},
	}
	l := log.NewNop()

	app, err := bootstrap.New(context.Background(), cfg, l, bootstrap.Options{})
	if err != nil {
		t.Fatalf("bootstrap.New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	srv, err := New(l, Config{
		Port:               8080,
		Mode:               gin.TestMode,
		Environment:        "test",
		RateLimitPerMin:    -1,
		ChatUseCase:        app.ChatUseCase(cfg.Chat, l),
		ReservationUseCase: app.Reservations,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Fatal("expected error without usecases")
	}
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w, env := do(t, srv.Handler(), http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, w.Code)
		}
		var h healthResp
		if err := json.Unmarshal(env.Data, &h); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
		if h.Service != ServiceName || h.Telegram {
			t.Errorf("GET %s = %+v", path, h)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want req-42", got)
	}
}

func TestChatRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	h := srv.Handler()

	w, env := do(t, h, http.MethodPost, "/api/v1/chat/sessions", map[string]string{"session_id": "web-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("start status = %d, body = %s", w.Code, w.Body.String())
	}
	var start struct {
		SessionID string `json:"session_id"`
		Welcome   string `json:"welcome"`
	}
	if err := json.Unmarshal(env.Data, &start); err != nil {
		t.Fatal(err)
	}
	if start.SessionID != "web-1" || start.Welcome == "" {
		t.Fatalf("start = %+v", start)
	}

	w, env = do(t, h, http.MethodPost, "/api/v1/chat/sessions/web-1/messages", map[string]string{"text": "I want to book a table"})
	if w.Code != http.StatusOK {
		t.Fatalf("send status = %d, body = %s", w.Code, w.Body.String())
	}
	var send struct {
		Reply string `json:"reply"`
		State string `json:"state"`
	}
	if err := json.Unmarshal(env.Data, &send); err != nil {
		t.Fatal(err)
	}
	if send.Reply == "" || send.State == "idle" {
		t.Errorf("send = %+v, want a reservation prompt", send)
	}

	w, _ = do(t, h, http.MethodPost, "/api/v1/chat/sessions/missing/messages", map[string]string{"text": "hi"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", w.Code)
	}
}

func TestReservationRoutes(t *testing.T) {
	srv := newTestServer(t)

	w, _ := do(t, srv.Handler(), http.MethodGet, "/api/v1/customers/nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown customer status = %d, want 404", w.Code)
	}
}

func TestTelegramRouteAbsentWithoutBot(t *testing.T) {
	srv := newTestServer(t)

	w, _ := do(t, srv.Handler(), http.MethodPost, "/webhook/telegram", map[string]any{})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
