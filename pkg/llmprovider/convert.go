package llmprovider

import (
	"github.com/belenfg/restaurant-chatbot/pkg/gemini"
	"github.com/belenfg/restaurant-chatbot/pkg/googleai"
	"github.com/belenfg/restaurant-chatbot/pkg/openai"
)

func usageOf(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

// textOf is msg.Text, tolerating a missing system instruction.
func textOf(msg *Message) string {
	if msg == nil {
		return ""
	}
	return msg.Text()
}

// Gemini

func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// OpenAI-compatible

func toOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openai.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openai.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func toOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toOpenAIContent(&msgs[i])
	}
	return contents
}

func toOpenAITools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// Google Gen AI

func toGoogleAIContent(msg Message) googleai.Content {
	out := googleai.Content{Role: msg.Role}
	for _, p := range msg.Parts {
		part := googleai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			part.FunctionCall = &googleai.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			part.FunctionResponse = &googleai.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: map[string]interface{}{"result": p.FunctionResponse.Response},
			}
		}
		out.Parts = append(out.Parts, part)
	}
	return out
}
