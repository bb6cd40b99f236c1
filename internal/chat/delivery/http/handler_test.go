package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	startIn chat.StartInput
	sendIn  chat.SendInput
	sendErr error
	endErr  error
}

func (m *mockUseCase) StartSession(ctx context.Context, input chat.StartInput) (chat.StartOutput, error) {
	m.startIn = input
	id := input.SessionID
	if id == "" {
		id = "generated"
	}
	return chat.StartOutput{SessionID: id, Welcome: "Good morning!"}, nil
}

func (m *mockUseCase) SendMessage(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	m.sendIn = input
	if m.sendErr != nil {
		return chat.SendOutput{}, m.sendErr
	}
	return chat.SendOutput{SessionID: input.SessionID, Reply: "What date?", State: dialogue.StateCollectingDate}, nil
}

func (m *mockUseCase) EndSession(ctx context.Context, sessionID string) error {
	return m.endErr
}

func (m *mockUseCase) Transcript(ctx context.Context, sessionID string) (chat.TranscriptOutput, error) {
	if sessionID != "s1" {
		return chat.TranscriptOutput{}, chat.ErrSessionNotFound
	}
	return chat.TranscriptOutput{SessionID: sessionID, Snapshot: dialogue.Snapshot{
		UserName: "Ana",
		State:    dialogue.StateIdle,
		Turns:    1,
		Transcript: []dialogue.Turn{
			{Role: dialogue.RoleAssistant, Content: "Good morning!"},
			{Role: dialogue.RoleUser, Content: "hi"},
		},
	}}, nil
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/chat"), New(&mockLogger{}, uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, w.Body.String())
	}
	if data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return env
}

func TestStartSession(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	t.Run("empty body", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/chat/sessions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var got startResp
		decode(t, w, &got)
		if got.SessionID != "generated" || got.Welcome != "Good morning!" {
			t.Errorf("unexpected response: %+v", got)
		}
	})

	t.Run("explicit id", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/chat/sessions", `{"session_id":"web_1"}`)
		if w.Code != http.StatusOK || uc.startIn.SessionID != "web_1" {
			t.Errorf("status = %d, input = %+v", w.Code, uc.startIn)
		}
	})
}

func TestSendMessage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		uc := &mockUseCase{}
		r := newTestRouter(uc)

		w := do(r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", `{"text":"book a table"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var got sendResp
		decode(t, w, &got)
		if got.Reply != "What date?" || got.State != "collecting_date" {
			t.Errorf("unexpected response: %+v", got)
		}
		if uc.sendIn.SessionID != "s1" || uc.sendIn.Text != "book a table" {
			t.Errorf("unexpected input: %+v", uc.sendIn)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})
		w := do(r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", chat.ErrSessionNotFound, http.StatusNotFound},
		{"rate limited", chat.ErrRateLimited, http.StatusTooManyRequests},
		{"empty", chat.ErrEmptyMessage, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{sendErr: tc.err})
			w := do(r, http.MethodPost, "/api/v1/chat/sessions/s1/messages", `{"text":"hi"}`)
			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
			if env := decode(t, w, nil); env.Message != tc.err.Error() {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestTranscript(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := do(r, http.MethodGet, "/api/v1/chat/sessions/s1/transcript", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got transcriptResp
	decode(t, w, &got)
	if got.UserName != "Ana" || len(got.Messages) != 2 || got.Messages[1].Role != "user" {
		t.Errorf("unexpected transcript: %+v", got)
	}

	if w := do(r, http.MethodGet, "/api/v1/chat/sessions/other/transcript", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing session status = %d", w.Code)
	}
}

func TestEndSession(t *testing.T) {
	if w := do(newTestRouter(&mockUseCase{}), http.MethodDelete, "/api/v1/chat/sessions/s1", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
	r := newTestRouter(&mockUseCase{endErr: chat.ErrSessionNotFound})
	if w := do(r, http.MethodDelete, "/api/v1/chat/sessions/s1", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}
