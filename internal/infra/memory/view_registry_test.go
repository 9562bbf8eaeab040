package memory

import (
	"testing"

	"purrfect-cats/internal/app"
)

func TestViewRegistryLifecycle(t *testing.T) {
	registry := NewViewRegistry()
	view, err := app.NewView("v1", sampleCatalog(), nil, app.SystemClock{}, app.DefaultViewOptions())
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	registry.Register(view)
	if got, ok := registry.Get("v1"); !ok || got != view {
		t.Fatalf("expected view present")
	}
	if registry.Count() != 1 {
		t.Fatalf("expected count 1, got %d", registry.Count())
	}

	registry.Touch("v1")
	if registry.Count() != 1 {
		t.Fatalf("touch must not change the registry")
	}

	registry.Remove("v1")
	if _, ok := registry.Get("v1"); ok {
		t.Fatalf("expected view removed")
	}
}
