package llmprovider

import (
	"context"

	"github.com/belenfg/restaurant-chatbot/pkg/ark"
	"github.com/belenfg/restaurant-chatbot/pkg/gemini"
	"github.com/belenfg/restaurant-chatbot/pkg/googleai"
	"github.com/belenfg/restaurant-chatbot/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAIAdapter adapts pkg/openai. One adapter per configured provider
// (openai, deepseek or qwen).
type OpenAIAdapter struct {
	client openai.IClient
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: toOpenAIContent(req.SystemInstruction),
		Messages:          toOpenAIContents(req.Messages),
		Tools:             toOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      fromOpenAIContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

func (a *OpenAIAdapter) Name() string  { return a.client.Provider() }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// ArkAdapter adapts pkg/ark. Ark is text only: tools are not offered and
// function parts are dropped from the history.
type ArkAdapter struct {
	client ark.IArk
}

// NewArkAdapter creates a new Ark adapter
func NewArkAdapter(client ark.IArk) *ArkAdapter {
	return &ArkAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *ArkAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	arkReq := &ark.Request{
		System:      textOf(req.SystemInstruction),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	for i := range req.Messages {
		text := textOf(&req.Messages[i])
		if text == "" {
			continue
		}
		arkReq.Messages = append(arkReq.Messages, ark.Message{Role: req.Messages[i].Role, Content: text})
	}

	resp, err := a.client.GenerateContent(ctx, arkReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Content}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

func (a *ArkAdapter) Name() string  { return "ark" }
func (a *ArkAdapter) Model() string { return a.client.Model() }

// GoogleAIAdapter adapts pkg/googleai for both the Gemini API and Vertex AI.
type GoogleAIAdapter struct {
	name   string
	client googleai.IGoogleAI
}

// NewGoogleAIAdapter creates a new adapter reported under name
func NewGoogleAIAdapter(name string, client googleai.IGoogleAI) *GoogleAIAdapter {
	return &GoogleAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *GoogleAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	gReq := &googleai.Request{
		System:      textOf(req.SystemInstruction),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		gReq.Messages = append(gReq.Messages, toGoogleAIContent(m))
	}
	for _, t := range req.Tools {
		gReq.Tools = append(gReq.Tools, googleai.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters})
	}

	resp, err := a.client.GenerateContent(ctx, gReq)
	if err != nil {
		return nil, err
	}

	msg := Message{Role: RoleAssistant}
	for _, p := range resp.Content.Parts {
		part := Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		msg.Parts = append(msg.Parts, part)
	}

	return &Response{
		Content:      msg,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

func (a *GoogleAIAdapter) Name() string  { return a.name }
func (a *GoogleAIAdapter) Model() string { return a.client.Model() }
