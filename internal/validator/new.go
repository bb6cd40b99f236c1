package validator

import (
	"time"

	"github.com/belenfg/restaurant-chatbot/internal/catalog"
	"github.com/belenfg/restaurant-chatbot/pkg/datemath"
)

// Validator checks reservation fields against the catalog's policy.
// It holds no mutable state.
type Validator struct {
	cat    *catalog.Catalog
	parser *datemath.Parser
	now    func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// New creates a Validator bound to cat.
func New(cat *catalog.Catalog, opts ...Option) *Validator {
	v := &Validator{
		cat:    cat,
		parser: datemath.NewParserIn(cat.Location),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Today is midnight of the current day in the restaurant's timezone.
func (v *Validator) Today() time.Time {
	return v.parser.StartOfDay(v.now())
}

// Now is the current instant in the restaurant's timezone.
func (v *Validator) Now() time.Time {
	return v.now().In(v.cat.Location)
}
