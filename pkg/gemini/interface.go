package gemini

import "context"

// IGemini is the REST generateContent client behind the "gemini" responder
// provider. It is safe for concurrent use by many chat sessions.
type IGemini interface {
	// GenerateContent fails with ErrBlocked when the guest's message or the
	// answer was stopped by Gemini's safety filters.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
