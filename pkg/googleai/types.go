package googleai

import (
	"fmt"

	"google.golang.org/genai"
)

// Config selects the Gemini API (API key) or Vertex AI (project and location).
type Config struct {
	Backend  string
	APIKey   string
	Project  string
	Location string
	Model    string
	BaseURL  string
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.Backend == "" {
		c.Backend = BackendGoogleAI
	}
	switch c.Backend {
	case BackendGoogleAI:
		if c.APIKey == "" {
			return fmt.Errorf("googleai: APIKey is required")
		}
	case BackendVertex:
		if c.Project == "" {
			return fmt.Errorf("googleai: Project is required for vertex")
		}
		if c.Location == "" {
			c.Location = DefaultLocation
		}
	default:
		return fmt.Errorf("googleai: unknown backend %q", c.Backend)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

type googleImpl struct {
	client *genai.Client
	model  string
}

// Request is a provider-neutral generation request.
type Request struct {
	System      string
	Messages    []Content
	Tools       []Tool
	Temperature float32
	MaxTokens   int
}

// Content is one turn. Role is "user", "assistant" or "model".
type Content struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

type FunctionCall struct {
	Name string
	Args map[string]interface{}
}

type FunctionResponse struct {
	Name     string
	Response map[string]interface{}
}

// Response carries the first candidate.
type Response struct {
	Content Content
	Usage   *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
