package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "storage:\n  driver: file\n  data_dir: " + filepath.Join(dir, "data") + "\n" +
		"chat:\n  enable_responder: false\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "chatbot dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestChatCmd_QuitPrintsFarewell(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "what are your opening hours?\nexit\n", "--config", cfg, "chat")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if strings.Count(out, "Chatbot:") != 3 {
		t.Errorf("want welcome, answer and farewell, got:\n%s", out)
	}
}

func TestChatCmd_QuitMidReservation(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "I want to book a table\nquit\n", "--config", cfg, "chat")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if strings.Contains(out, "cancelled") {
		t.Errorf("cancel reply should not be printed:\n%s", out)
	}
	if strings.Count(out, "Chatbot:") != 3 {
		t.Errorf("want welcome, prompt and farewell, got:\n%s", out)
	}
}

func TestReservationsList_Empty(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "", "--config", cfg, "reservations", "list", "--date", "20/12/2025")
	if err != nil {
		t.Fatalf("reservations list: %v", err)
	}
	if !strings.Contains(out, "no reservations on 2025-12-20") {
		t.Errorf("output = %q", out)
	}
}

func TestReservationsList_BadDate(t *testing.T) {
	cfg := writeConfig(t)

	if _, err := run(t, "", "--config", cfg, "reservations", "list", "--date", "tomorrow"); err != errInvalidDate {
		t.Fatalf("err = %v, want errInvalidDate", err)
	}
}

func TestCustomersShow_Unknown(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "", "--config", cfg, "customers", "show", "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("customers show: %v", err)
	}
	if !strings.Contains(out, `no customer named "Ada Lovelace"`) {
		t.Errorf("output = %q", out)
	}
}

func TestChatCmd_LongConversation(t *testing.T) {
	cfg := writeConfig(t)

	const turns = 40
	out, err := run(t, strings.Repeat("what's on the menu?\n", turns)+"exit\n", "--config", cfg, "chat")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if strings.Contains(out, msgSlowDown) {
		t.Errorf("local chat was rate limited:\n%s", out)
	}
	if got := strings.Count(out, "Chatbot:"); got != turns+2 {
		t.Errorf("replies = %d, want %d", got, turns+2)
	}
}

// limitedUseCase answers the first allow turns and then reports ErrRateLimited.
type limitedUseCase struct {
	allow int
	turns int
}

func (m *limitedUseCase) StartSession(ctx context.Context, input chat.StartInput) (chat.StartOutput, error) {
	return chat.StartOutput{SessionID: input.SessionID}, nil
}

func (m *limitedUseCase) SendMessage(ctx context.Context, input chat.SendInput) (chat.SendOutput, error) {
	m.turns++
	if m.turns > m.allow {
		return chat.SendOutput{}, chat.ErrRateLimited
	}
	return chat.SendOutput{SessionID: input.SessionID, Reply: "ok", State: dialogue.StateIdle}, nil
}

func (m *limitedUseCase) EndSession(ctx context.Context, sessionID string) error { return nil }

func (m *limitedUseCase) Transcript(ctx context.Context, sessionID string) (chat.TranscriptOutput, error) {
	return chat.TranscriptOutput{}, nil
}

func TestRunREPL_RateLimitedKeepsGoing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"limited turns are reported", "a\nb\nc\n"},
		{"limited quit still exits", "a\nb\nexit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())
			var out bytes.Buffer

			err := runREPL(cmd, &limitedUseCase{allow: 1}, strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("runREPL: %v", err)
			}
			if got := strings.Count(out.String(), msgSlowDown); got != 2 {
				t.Errorf("slow-down notices = %d, want 2:\n%s", got, out.String())
			}
		})
	}
}
