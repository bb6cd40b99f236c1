package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/belenfg/restaurant-chatbot/internal/agent"
	"github.com/belenfg/restaurant-chatbot/internal/catalog"
)

type GetMenuTool struct {
	cat *catalog.Catalog
}

func NewGetMenuTool(cat *catalog.Catalog) *GetMenuTool {
	return &GetMenuTool{cat: cat}
}

func (t *GetMenuTool) Name() string {
	return "get_menu"
}

func (t *GetMenuTool) Description() string {
	return "Get the restaurant menu grouped by category."
}

func (t *GetMenuTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional category name, e.g. 'Desserts'",
			},
		},
	}
}

type MenuCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func (t *GetMenuTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	want, _ := input["category"].(string)

	var out []MenuCategory
	for _, c := range t.cat.Menu() {
		if want != "" && !strings.EqualFold(strings.TrimSpace(want), c.Name) {
			continue
		}
		out = append(out, MenuCategory{Name: c.Name, Items: c.Items})
	}
	if want != "" && len(out) == 0 {
		return nil, fmt.Errorf("unknown menu category %q", want)
	}
	return out, nil
}

var _ agent.Tool = (*GetMenuTool)(nil)
