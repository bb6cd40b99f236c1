package ark

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Config holds Ark client configuration. Model is the endpoint id.
type Config struct {
	APIKey  string
	BaseURL string
	Region  string
	Model   string
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ark: APIKey is required")
	}
	if c.Model == "" {
		return fmt.Errorf("ark: Model is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	return nil
}

// Generator is the part of an eino chat model the client calls.
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

type arkImpl struct {
	model string
	chat  Generator
}

// Request is a text-only chat request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// Message is one conversation turn. Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response is the generated text.
type Response struct {
	Content string
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
