package googleai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"googleai needs key", Config{}, true},
		{"googleai ok", Config{APIKey: "k"}, false},
		{"vertex needs project", Config{Backend: BackendVertex}, true},
		{"vertex ok", Config{Backend: BackendVertex, Project: "p"}, false},
		{"unknown backend", Config{Backend: "azure", APIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Model != DefaultModel {
				t.Errorf("Model = %q, want default", cfg.Model)
			}
		})
	}
}

func TestToContentsMapsRoles(t *testing.T) {
	contents := toContents([]Content{
		{Role: "user", Parts: []Part{{Text: "hi"}}},
		{Role: "assistant", Parts: []Part{{FunctionCall: &FunctionCall{Name: "get_menu"}}}},
		{Role: "user", Parts: []Part{{FunctionResponse: &FunctionResponse{Name: "get_menu", Response: map[string]interface{}{"ok": true}}}}},
	})
	if len(contents) != 3 {
		t.Fatalf("len = %d", len(contents))
	}
	if contents[1].Role != string(genai.RoleModel) || contents[1].Parts[0].FunctionCall == nil {
		t.Errorf("assistant turn = %+v", contents[1])
	}
	if contents[2].Parts[0].FunctionResponse == nil {
		t.Errorf("function response lost")
	}
	for _, i := range []int{0, 2} {
		if contents[i].Role != string(genai.RoleUser) {
			t.Errorf("turn %d role = %q, want user", i, contents[i].Role)
		}
	}
}

func TestGenerateContent(t *testing.T) {
	var body map[string]interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "We have vegan options."}]}}],
			"usageMetadata": {"promptTokenCount": 9, "candidatesTokenCount": 4, "totalTokenCount": 13}
		}`))
	}))
	defer ts.Close()

	c, err := New(context.Background(), Config{APIKey: "k", Model: "gemini-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &Request{
		System:      "You are a host.",
		Messages:    []Content{{Role: "user", Parts: []Part{{Text: "vegan?"}}}},
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "We have vegan options." {
		t.Errorf("content = %+v", resp.Content)
	}
	if resp.Usage.TotalTokens != 13 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if _, ok := body["systemInstruction"]; !ok {
		t.Errorf("system instruction not sent: %v", body)
	}
}
