package ark_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/belenfg/restaurant-chatbot/pkg/ark"
)

type fakeChat struct {
	got  []*schema.Message
	opts []model.Option
	err  error
}

func (f *fakeChat) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.got = input
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{
		Role:    schema.Assistant,
		Content: "Our paella is famous.",
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 30, CompletionTokens: 6, TotalTokens: 36},
		},
	}, nil
}

func TestConfigValidate(t *testing.T) {
	if _, err := ark.New(context.Background(), ark.Config{Model: "ep-1"}); err == nil {
		t.Error("expected error without API key")
	}
	if _, err := ark.New(context.Background(), ark.Config{APIKey: "k"}); err == nil {
		t.Error("expected error without model")
	}
}

func TestGenerateContent(t *testing.T) {
	chat := &fakeChat{}
	c := ark.NewWithGenerator("ep-test", chat)

	resp, err := c.GenerateContent(context.Background(), &ark.Request{
		System: "You are a host.",
		Messages: []ark.Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "user", Content: "recommend a dish"},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Our paella is famous." || resp.Usage.TotalTokens != 36 {
		t.Errorf("resp = %+v", resp)
	}
	if len(chat.got) != 4 || chat.got[0].Role != schema.System || chat.got[2].Role != schema.Assistant {
		t.Errorf("messages = %+v", chat.got)
	}
	if len(chat.opts) != 2 {
		t.Errorf("expected temperature and max tokens options, got %d", len(chat.opts))
	}
	if c.Model() != "ep-test" {
		t.Errorf("Model() = %q", c.Model())
	}
}

func TestGenerateContentError(t *testing.T) {
	c := ark.NewWithGenerator("ep-test", &fakeChat{err: errors.New("quota")})
	if _, err := c.GenerateContent(context.Background(), &ark.Request{}); err == nil {
		t.Fatal("expected error")
	}
}
