package agent_test

import (
	"context"
	"testing"

	"github.com/belenfg/restaurant-chatbot/internal/agent"
)

type mockTool struct {
	name        string
	description string
	params      map[string]interface{}
}

func (m *mockTool) Name() string                       { return m.name }
func (m *mockTool) Description() string                { return m.description }
func (m *mockTool) Parameters() map[string]interface{} { return m.params }
func (m *mockTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry(
		&mockTool{name: "tool2", description: "desc2"},
		&mockTool{name: "tool1", description: "desc1", params: nil},
	)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List tools sorted", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(tools))
		}
		if tools[0].Name() != "tool1" || tools[1].Name() != "tool2" {
			t.Errorf("unexpected order: %s, %s", tools[0].Name(), tools[1].Name())
		}
	})

	t.Run("ToFunctionDefinitions", func(t *testing.T) {
		defs := registry.ToFunctionDefinitions()
		if len(defs) != 2 {
			t.Fatalf("expected 2 tools, got %d", len(defs))
		}
		if defs[0].Name != "tool1" || defs[0].Description != "desc1" {
			t.Errorf("unexpected first definition: %+v", defs[0])
		}
	})

	t.Run("Register replaces same name", func(t *testing.T) {
		registry.Register(&mockTool{name: "tool1", description: "other"})
		if registry.Len() != 2 {
			t.Errorf("expected 2 tools, got %d", registry.Len())
		}
		got, _ := registry.Get("tool1")
		if got.Description() != "other" {
			t.Errorf("expected replaced tool, got %q", got.Description())
		}
	})
}
