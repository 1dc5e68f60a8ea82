package tools

import (
	"context"
	"fmt"

	"globetrek/pkg/duckduckgo"
)

// WebSearch gives the agent keyless web lookups for destination facts.
type WebSearch struct {
	client *duckduckgo.Client
}

// NewWebSearch creates the web_search tool.
func NewWebSearch(client *duckduckgo.Client) *WebSearch {
	return &WebSearch{client: client}
}

func (t *WebSearch) Name() string { return "web_search" }

func (t *WebSearch) Description() string {
	return "Search the web for up-to-date information about destinations, attractions, and travel topics."
}

func (t *WebSearch) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The search query",
			},
		},
		"required": []string{"query"},
	}
}

func (t *WebSearch) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	query := stringParam(params, "query")
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return t.client.Search(ctx, query)
}
