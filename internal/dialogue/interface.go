package dialogue

import (
	"context"

	"github.com/belenfg/restaurant-chatbot/internal/reservation"
)

// Responder produces a free-form answer for a turn outside the reservation
// flow. history excludes the current prompt.
type Responder interface {
	Generate(ctx context.Context, prompt string, history []Turn, systemPrompt string) (string, error)
}

// Store is the slice of the reservation usecase the engine needs.
type Store interface {
	Commit(ctx context.Context, input reservation.CommitInput) (reservation.CommitOutput, error)
	IsReturningCustomer(ctx context.Context, name string) (bool, error)
}
