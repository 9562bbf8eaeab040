package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
catalog:
  id: purrfect-cat-world
  ttl: 2m
fact:
  url: http://facts.local/fact
  timeout: 3s
view:
  carousel_interval: 5s
  answer_delay: 1s
  registry_ttl: 4m
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Catalog.ID != "purrfect-cat-world" || cfg.Fact.URL != "http://facts.local/fact" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := Duration(cfg.View.CarouselInterval, time.Second); got != 5*time.Second {
		t.Fatalf("expected 5s, got %v", got)
	}
	if got := Duration(cfg.View.RegistryTTL, 10*time.Minute); got != 4*time.Minute {
		t.Fatalf("expected registry ttl 4m, got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDurationFallback(t *testing.T) {
	for _, raw := range []string{"", "soon", "-1s", "0s"} {
		if got := Duration(raw, 7*time.Second); got != 7*time.Second {
			t.Fatalf("%q: expected fallback, got %v", raw, got)
		}
	}
}
