package openai

import "context"

// IClient is a chat completions client for OpenAI-compatible APIs.
// Implementations are safe for concurrent use.
type IClient interface {
	// GenerateContent sends one chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the configured provider name
	Provider() string

	// Model returns the model being used
	Model() string
}

// New creates a client for cfg.Provider, filling its default endpoint and model.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
