package googleai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerateContent calls models.generateContent.
func (g *googleImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, toContents(req.Messages), toConfig(req))
	if err != nil {
		return nil, fmt.Errorf("googleai: generate failed: %w", err)
	}
	return fromResponse(resp), nil
}

func (g *googleImpl) Model() string {
	return g.model
}

func toConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(req.Temperature)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	if len(req.Tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, len(req.Tools))
		for i, t := range req.Tools {
			decls[i] = &genai.FunctionDeclaration{
				Name:                 t.Name,
				Description:          t.Description,
				ParametersJsonSchema: t.Parameters,
			}
		}
		cfg.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}
	return cfg
}

func toContents(msgs []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := genai.Role(genai.RoleUser)
		if m.Role == "assistant" || m.Role == string(genai.RoleModel) {
			role = genai.RoleModel
		}
		parts := make([]*genai.Part, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch {
			case p.FunctionCall != nil:
				parts = append(parts, genai.NewPartFromFunctionCall(p.FunctionCall.Name, p.FunctionCall.Args))
			case p.FunctionResponse != nil:
				parts = append(parts, genai.NewPartFromFunctionResponse(p.FunctionResponse.Name, p.FunctionResponse.Response))
			case p.Text != "":
				parts = append(parts, genai.NewPartFromText(p.Text))
			}
		}
		out = append(out, genai.NewContentFromParts(parts, role))
	}
	return out
}

func fromResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Content: Content{Role: "assistant"}, Usage: &Usage{}}
	if m := resp.UsageMetadata; m != nil {
		out.Usage = &Usage{
			InputTokens:  int(m.PromptTokenCount),
			OutputTokens: int(m.CandidatesTokenCount),
			TotalTokens:  int(m.TotalTokenCount),
		}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return out
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		switch {
		case p.FunctionCall != nil:
			out.Content.Parts = append(out.Content.Parts, Part{
				FunctionCall: &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args},
			})
		case p.Text != "" && !p.Thought:
			out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
		}
	}
	return out
}
