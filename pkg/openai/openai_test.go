package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/belenfg/restaurant-chatbot/pkg/openai"
)

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		provider string
		model    string
	}{
		{openai.ProviderOpenAI, "gpt-4o-mini"},
		{openai.ProviderDeepSeek, "deepseek-chat"},
		{openai.ProviderQwen, "qwen-plus"},
	}
	for _, tt := range tests {
		c, err := openai.New(openai.Config{Provider: tt.provider, APIKey: "k"})
		if err != nil {
			t.Fatalf("%s: %v", tt.provider, err)
		}
		if c.Model() != tt.model || c.Provider() != tt.provider {
			t.Errorf("%s: got %s/%s", tt.provider, c.Provider(), c.Model())
		}
	}

	if _, err := openai.New(openai.Config{Provider: "mistral", APIKey: "k"}); err == nil {
		t.Error("unknown provider without base URL and model should fail")
	}
	if _, err := openai.New(openai.Config{Provider: openai.ProviderQwen}); err == nil {
		t.Error("missing API key should fail")
	}
}

func TestGenerateContent(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role       string `json:"role"`
			Content    string `json:"content"`
			ToolCallID string `json:"tool_call_id"`
		} `json:"messages"`
		Tools []struct {
			Function struct {
				Name string `json:"name"`
			} `json:"function"`
		} `json:"tools"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" || r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"bad key"}`))
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "",
				"tool_calls": [{"id": "x", "type": "function", "function": {"name": "check_availability", "arguments": "{\"date\":\"2025-12-25\"}"}}]}}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 8, "total_tokens": 28}
		}`))
	}))
	defer ts.Close()

	c, err := openai.New(openai.Config{Provider: openai.ProviderDeepSeek, APIKey: "secret", BaseURL: ts.URL + "/v1/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &openai.Request{
		SystemInstruction: &openai.Content{Parts: []openai.Part{{Text: "be brief"}}},
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "free on christmas?"}}},
			{Role: "assistant", Parts: []openai.Part{{FunctionCall: &openai.FunctionCall{Name: "get_menu"}}}},
			{Role: "user", Parts: []openai.Part{{FunctionResponse: &openai.FunctionResponse{Name: "get_menu", Response: map[string]string{"ok": "yes"}}}}},
		},
		Tools: []openai.Tool{{Name: "check_availability"}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if got.Model != "deepseek-chat" || len(got.Messages) != 4 {
		t.Fatalf("request = %+v", got)
	}
	if got.Messages[0].Role != "system" || got.Messages[3].Role != "tool" || got.Messages[3].ToolCallID != "call_get_menu" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if len(got.Tools) != 1 || got.Tools[0].Function.Name != "check_availability" {
		t.Errorf("tools = %+v", got.Tools)
	}

	fc := resp.Content.Parts[0].FunctionCall
	if fc == nil || fc.Name != "check_availability" || fc.Args["date"] != "2025-12-25" {
		t.Fatalf("function call = %+v", resp.Content.Parts)
	}
	if resp.Usage.TotalTokens != 28 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, _ := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})
	if _, err := c.GenerateContent(context.Background(), &openai.Request{}); err == nil {
		t.Fatal("expected error on 429")
	}
}
