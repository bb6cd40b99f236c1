package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/router"
	"github.com/belenfg/restaurant-chatbot/internal/validator"
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

type memStore struct {
	mu      sync.Mutex
	commits []reservation.CommitInput
}

func (s *memStore) Commit(ctx context.Context, input reservation.CommitInput) (reservation.CommitOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commits = append(s.commits, input)
	return reservation.CommitOutput{Customer: reservation.Customer{DisplayName: input.Name, Visits: 1}}, nil
}

func (s *memStore) IsReturningCustomer(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func newTestUseCase(t *testing.T, opts Options) (*implUseCase, *memStore) {
	t.Helper()
	cat := catalog.Default()
	now := func() time.Time { return time.Date(2025, 12, 20, 12, 0, 0, 0, cat.Location) }
	store := &memStore{}
	f, err := dialogue.NewFactory(dialogue.Config{
		Catalog:   cat,
		Validator: validator.New(cat, validator.WithClock(now)),
		Router:    router.New(),
		Store:     store,
		Logger:    &mockLogger{},
	})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	return New(&mockLogger{}, f, opts), store
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	out, err := uc.StartSession(ctx, chat.StartInput{})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if out.SessionID == "" {
		t.Error("expected generated session id")
	}
	if !strings.Contains(out.Welcome, catalog.DefaultName) {
		t.Errorf("unexpected welcome: %q", out.Welcome)
	}

	named, err := uc.StartSession(ctx, chat.StartInput{SessionID: "telegram_42"})
	if err != nil || named.SessionID != "telegram_42" {
		t.Fatalf("explicit id: %+v, %v", named, err)
	}

	if _, err := uc.StartSession(ctx, chat.StartInput{SessionID: strings.Repeat("x", chat.MaxSessionIDLength+1)}); !errors.Is(err, chat.ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestSendMessageReservationFlow(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUseCase(t, Options{})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	steps := []struct {
		text  string
		state dialogue.State
	}{
		{"I want to book a table", dialogue.StateCollectingDate},
		{"27/12/2025", dialogue.StateCollectingTime},
		{"20:00", dialogue.StateCollectingPartySize},
		{"4", dialogue.StateCollectingPhoneOrName},
		{"Ana", dialogue.StateCollectingPhoneOrName},
		{"600123456", dialogue.StateAwaitingConfirmation},
		{"yes", dialogue.StateIdle},
	}
	for _, step := range steps {
		out, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: step.text})
		if err != nil {
			t.Fatalf("%q: %v", step.text, err)
		}
		if out.State != step.state {
			t.Fatalf("%q: state = %s, want %s (reply %q)", step.text, out.State, step.state, out.Reply)
		}
	}
	if len(store.commits) != 1 || store.commits[0].Date != "2025-12-27" {
		t.Errorf("commits = %+v", store.commits)
	}

	tr, err := uc.Transcript(ctx, start.SessionID)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if tr.Snapshot.UserName != "Ana" || len(tr.Snapshot.Transcript) != dialogue.MaxTranscript {
		t.Errorf("snapshot = %+v", tr.Snapshot)
	}
}

func TestSendMessageErrors(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: "missing", Text: "hi"}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "   "}); !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSendMessageRateLimited(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{RateLimitPerMin: 2})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	for i := 0; i < 2; i++ {
		if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "what are your hours?"}); err != nil {
			t.Fatalf("message %d: %v", i, err)
		}
	}
	if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "menu"}); !errors.Is(err, chat.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestUnlimitedRate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{RateLimitPerMin: -1})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	for i := 0; i < 50; i++ {
		if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "menu"}); err != nil {
			t.Fatalf("message %d: %v", i, err)
		}
	}
}

func TestFarewellFinishes(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	out, err := uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "goodbye"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Finished {
		t.Errorf("expected finished after farewell, reply %q", out.Reply)
	}
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	if err := uc.EndSession(ctx, start.SessionID); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if err := uc.EndSession(ctx, start.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("second EndSession: %v", err)
	}
	if _, err := uc.Transcript(ctx, start.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("Transcript after end: %v", err)
	}
}

func TestSessionCapacityEvictsOldest(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{MaxSessions: 2})

	first, _ := uc.StartSession(ctx, chat.StartInput{SessionID: "a"})
	uc.StartSession(ctx, chat.StartInput{SessionID: "b"})
	uc.StartSession(ctx, chat.StartInput{SessionID: "c"})

	if _, err := uc.Transcript(ctx, first.SessionID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected oldest session evicted, got %v", err)
	}
}

func TestConcurrentTurnsSameSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{RateLimitPerMin: -1})

	start, _ := uc.StartSession(ctx, chat.StartInput{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.SendMessage(ctx, chat.SendInput{SessionID: start.SessionID, Text: "what's on the menu?"})
		}()
	}
	wg.Wait()

	tr, err := uc.Transcript(ctx, start.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Snapshot.Turns != 20 {
		t.Errorf("turns = %d, want 20", tr.Snapshot.Turns)
	}
}

func TestStartSessionKeepsLiveDraft(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	first, err := uc.StartSession(ctx, chat.StartInput{SessionID: "telegram_7"})
	if err != nil || first.Resumed {
		t.Fatalf("first start: %+v, %v", first, err)
	}
	out, err := uc.SendMessage(ctx, chat.SendInput{SessionID: "telegram_7", Text: "I want to book a table"})
	if err != nil || out.State != dialogue.StateCollectingDate {
		t.Fatalf("booking intent: %+v, %v", out, err)
	}

	again, err := uc.StartSession(ctx, chat.StartInput{SessionID: "telegram_7"})
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !again.Resumed || again.Welcome != "" || !again.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("second start = %+v, want resumed session", again)
	}

	out, err = uc.SendMessage(ctx, chat.SendInput{SessionID: "telegram_7", Text: "25/12/2025"})
	if err != nil {
		t.Fatal(err)
	}
	if out.State != dialogue.StateCollectingTime {
		t.Errorf("state = %s, want %s (reply %q)", out.State, dialogue.StateCollectingTime, out.Reply)
	}
}

func TestEndThenStartIsFresh(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	uc.StartSession(ctx, chat.StartInput{SessionID: "discord_1"})
	uc.SendMessage(ctx, chat.SendInput{SessionID: "discord_1", Text: "I want to book a table"})

	if err := uc.EndSession(ctx, "discord_1"); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	out, err := uc.StartSession(ctx, chat.StartInput{SessionID: "discord_1"})
	if err != nil || out.Resumed || out.Welcome == "" {
		t.Fatalf("restart: %+v, %v", out, err)
	}
	tr, err := uc.Transcript(ctx, "discord_1")
	if err != nil {
		t.Fatal(err)
	}
	if tr.Snapshot.State != dialogue.StateIdle {
		t.Errorf("state = %s, want idle", tr.Snapshot.State)
	}
}

func TestConcurrentStartSameID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, Options{})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.StartSession(ctx, chat.StartInput{SessionID: "telegram_9"})
			if err == nil && !out.Resumed {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if created != 1 {
		t.Errorf("created = %d, want 1", created)
	}
}
