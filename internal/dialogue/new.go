package dialogue

import (
	"errors"
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
	"github.com/belenfg/restaurant-chatbot/internal/router"
	"github.com/belenfg/restaurant-chatbot/internal/validator"
	pkgLog "github.com/belenfg/restaurant-chatbot/pkg/log"
)

// Config holds the collaborators shared by every session.
type Config struct {
	Catalog   *catalog.Catalog
	Validator *validator.Validator
	Router    router.Router
	Store     Store
	Logger    pkgLog.Logger

	// Responder is optional. Nil means canned replies only.
	Responder        Responder
	ResponderTimeout time.Duration
}

func (c Config) validate() error {
	if c.Catalog == nil {
		return errors.New("catalog is required")
	}
	if c.Validator == nil {
		return errors.New("validator is required")
	}
	if c.Router == nil {
		return errors.New("router is required")
	}
	if c.Store == nil {
		return errors.New("store is required")
	}
	if c.Logger == nil {
		return errors.New("logger is required")
	}
	return nil
}

// Factory creates one Engine per session.
type Factory struct {
	cfg Config
}

// NewFactory validates cfg and fills defaults.
func NewFactory(cfg Config) (*Factory, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ResponderTimeout <= 0 {
		cfg.ResponderTimeout = DefaultResponderTimeout
	}
	return &Factory{cfg: cfg}, nil
}

// HasResponder reports whether engines will try the responder.
func (f *Factory) HasResponder() bool {
	return f.cfg.Responder != nil
}

// New returns a fresh Engine in the Idle state.
func (f *Factory) New() *Engine {
	return &Engine{
		cfg:   f.cfg,
		state: Context{State: StateIdle},
	}
}

// Engine runs one conversation. It is not safe for concurrent use; callers
// serialize turns per session.
type Engine struct {
	cfg        Config
	state      Context
	transcript []Turn
	returning  bool
}
