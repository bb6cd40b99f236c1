package ark

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// GenerateContent sends the conversation to the chat model.
func (a *arkImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]*schema.Message, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, schema.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		if m.Role == "assistant" {
			msgs = append(msgs, schema.AssistantMessage(m.Content, nil))
			continue
		}
		msgs = append(msgs, schema.UserMessage(m.Content))
	}

	var opts []model.Option
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(req.Temperature))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	out, err := a.chat.Generate(ctx, msgs, opts...)
	if err != nil {
		return nil, fmt.Errorf("ark: generate failed: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("ark: empty response")
	}

	resp := &Response{Content: out.Content, Usage: &Usage{}}
	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		u := out.ResponseMeta.Usage
		resp.Usage = &Usage{
			InputTokens:  u.PromptTokens,
			OutputTokens: u.CompletionTokens,
			TotalTokens:  u.TotalTokens,
		}
	}
	return resp, nil
}

func (a *arkImpl) Model() string {
	return a.model
}
