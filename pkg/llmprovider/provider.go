package llmprovider

import (
	"context"
	"strings"
)

// Message roles shared by every backend. Adapters map them to the
// provider's own vocabulary ("model" for Gemini, for instance).
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Provider is one LLM backend the responder can fall back through.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Name is the config key of the provider: "ark", "gemini", "googleai" or "openai".
	Name() string
	Model() string
}

// Request is a provider-neutral generation request. SystemInstruction
// carries the restaurant prompt, Messages the guest transcript.
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message is one transcript entry.
type Message struct {
	Role  string
	Parts []Part
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Text joins the non-empty text parts with newlines and trims the result.
func (m Message) Text() string {
	var texts []string
	for _, p := range m.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

// FirstCall returns the first tool call of m, or nil when the model answered in text.
func (m Message) FirstCall() *FunctionCall {
	for _, p := range m.Parts {
		if p.FunctionCall != nil {
			return p.FunctionCall
		}
	}
	return nil
}

// Part holds exactly one of text, a tool call or a tool result.
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool declares a callable tool such as check_availability. Parameters is a JSON Schema.
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
	Response interface{}
}

// Response is the assistant turn produced by whichever provider answered.
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
