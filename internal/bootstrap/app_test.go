package bootstrap

import (
	"context"
	"strings"
	"testing"

	"github.com/belenfg/restaurant-chatbot/config"
	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Storage: config.StorageConfig{Driver: "file", DataDir: t.TempDir()},
	}
}

func TestNew_FileStore(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), log.NewNop(), Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if app.Factory == nil || app.Reservations == nil || app.Validator == nil {
		t.Fatal("expected all collaborators to be wired")
	}
	if len(app.Providers) != 0 {
		t.Errorf("Providers = %v, want none", app.Providers)
	}
}

func TestNew_ResponderWithoutProviders(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), log.NewNop(), Options{EnableResponder: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	if len(app.Providers) != 0 {
		t.Errorf("Providers = %v, want none", app.Providers)
	}
}

func TestOpenRepository_UnknownDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = "mongo"

	_, err := OpenRepository(context.Background(), cfg, log.NewNop())
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Fatalf("OpenRepository() error = %v, want unsupported driver", err)
	}
}

func TestApp_ChatUseCase(t *testing.T) {
	app, err := New(context.Background(), testConfig(t), log.NewNop(), Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer app.Close()

	ctx := context.Background()
	uc := app.ChatUseCase(config.ChatConfig{}, log.NewNop())

	start, err := uc.StartSession(ctx, chat.StartInput{SessionID: "s1"})
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if start.Welcome == "" {
		t.Error("expected a welcome message")
	}

	out, err := uc.SendMessage(ctx, chat.SendInput{SessionID: "s1", Text: "what are your opening hours?"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if out.Reply == "" {
		t.Error("expected a reply")
	}
}
