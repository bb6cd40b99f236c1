package googleai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// IGoogleAI generates content through the Google Gen AI SDK.
// Implementations are safe for concurrent use.
type IGoogleAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a genai client for the configured backend.
func New(ctx context.Context, cfg Config) (IGoogleAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cc := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}
	if cfg.Backend == BackendVertex {
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	} else {
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("googleai: failed to create client: %w", err)
	}
	return &googleImpl{client: client, model: cfg.Model}, nil
}
