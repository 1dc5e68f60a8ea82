package agent_test

import (
	"context"
	"testing"

	"globetrek/internal/agent"
)

type fakeTool struct {
	name string
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake tool" }

func (f *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}

func (f *fakeTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return "ok", nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := agent.NewToolRegistry()
	registry.Register(&fakeTool{name: "search_flights"})
	registry.Register(&fakeTool{name: "web_search"})

	if _, ok := registry.Get("search_flights"); !ok {
		t.Error("expected search_flights to be registered")
	}
	if _, ok := registry.Get("missing"); ok {
		t.Error("expected missing tool lookup to fail")
	}
	if got := len(registry.List()); got != 2 {
		t.Errorf("expected 2 tools, got %d", got)
	}
}

func TestToFunctionDefinitionsPreservesOrder(t *testing.T) {
	registry := agent.NewToolRegistry()
	registry.Register(&fakeTool{name: "search_airports"})
	registry.Register(&fakeTool{name: "search_flights"})
	registry.Register(&fakeTool{name: "web_search"})

	defs := registry.ToFunctionDefinitions()
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}

	want := []string{"search_airports", "search_flights", "web_search"}
	for i, name := range want {
		if defs[i].Function.Name != name {
			t.Errorf("definition %d: expected %q, got %q", i, name, defs[i].Function.Name)
		}
	}
}
