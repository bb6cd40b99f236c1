package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/belenfg/restaurant-chatbot/config"
	"github.com/belenfg/restaurant-chatbot/internal/agent"
	"github.com/belenfg/restaurant-chatbot/internal/agent/orchestrator"
	"github.com/belenfg/restaurant-chatbot/internal/agent/tools"
	"github.com/belenfg/restaurant-chatbot/internal/catalog"
	"github.com/belenfg/restaurant-chatbot/internal/chat"
	chatUC "github.com/belenfg/restaurant-chatbot/internal/chat/usecase"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
	"github.com/belenfg/restaurant-chatbot/internal/reservation"
	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	reservationUC "github.com/belenfg/restaurant-chatbot/internal/reservation/usecase"
	"github.com/belenfg/restaurant-chatbot/internal/router"
	"github.com/belenfg/restaurant-chatbot/internal/validator"
	"github.com/belenfg/restaurant-chatbot/pkg/llmprovider"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// App holds the collaborators every entry point shares.
type App struct {
	Catalog      *catalog.Catalog
	Validator    *validator.Validator
	Repository   repository.Repository
	Reservations reservation.UseCase
	Factory      *dialogue.Factory
	// Providers lists the LLM providers in fallback order. Empty means canned-only.
	Providers []string
}

// Options selects optional parts of the build.
type Options struct {
	// EnableResponder tries to build the LLM responder from cfg.LLM.
	EnableResponder bool
}

// Close releases the store.
func (a *App) Close() error {
	if a.Repository == nil {
		return nil
	}
	return a.Repository.Close()
}

// ChatUseCase builds the session cache over the app's factory.
func (a *App) ChatUseCase(cfg config.ChatConfig, l log.Logger) chat.UseCase {
	return chatUC.New(l, a.Factory, chatUC.Options{
		SessionTTL:      cfg.SessionTTL,
		MaxSessions:     cfg.MaxSessions,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
}

// New wires catalog, store, validator and dialogue factory from cfg.
func New(ctx context.Context, cfg *config.Config, l log.Logger, opts Options) (*App, error) {
	cat, err := catalog.FromConfig(cfg.Restaurant)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	repo, err := OpenRepository(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	app := &App{
		Catalog:      cat,
		Validator:    validator.New(cat),
		Repository:   repo,
		Reservations: reservationUC.New(repo, l, cat.Policy.MaxPerSlot),
	}

	var responder dialogue.Responder
	if opts.EnableResponder {
		responder, app.Providers = buildResponder(ctx, cfg, app, l)
	}

	app.Factory, err = dialogue.NewFactory(dialogue.Config{
		Catalog:          cat,
		Validator:        app.Validator,
		Router:           router.New(),
		Store:            app.Reservations,
		Logger:           l,
		Responder:        responder,
		ResponderTimeout: cfg.Chat.ResponderTimeout,
	})
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("dialogue: %w", err)
	}
	return app, nil
}

// buildResponder returns nil when no provider can be initialized; the bot
// then runs on canned replies.
func buildResponder(ctx context.Context, cfg *config.Config, app *App, l log.Logger) (dialogue.Responder, []string) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Info(ctx, "No LLM providers enabled, running canned-only")
		} else {
			l.Warnf(ctx, "LLM providers unavailable, running canned-only: %v", err)
		}
		return nil, nil
	}

	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		l.Warnf(ctx, "Invalid LLM manager config, running canned-only: %v", err)
		return nil, nil
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)

	registry := agent.NewToolRegistry(
		tools.NewCheckAvailabilityTool(app.Reservations, app.Validator, l),
		tools.NewGetOpeningHoursTool(app.Catalog, app.Validator.Now),
		tools.NewGetMenuTool(app.Catalog),
	)

	l.Infof(ctx, "LLM responder enabled with providers %v", manager.Providers())
	return orchestrator.New(manager, registry, l), manager.Providers()
}
