package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
project: "my-project"
request-type: "agent"
logging-level: "debug"
image-models:
  - gemini-3-pro-image
search-models:
  - gemini-3-pro-search
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Project != "my-project" || cfg.RequestType != "agent" || cfg.LoggingLevel != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.ImageModels) != 1 || cfg.ImageModels[0] != "gemini-3-pro-image" {
		t.Errorf("unexpected image models: %v", cfg.ImageModels)
	}
	if len(cfg.SearchModels) != 1 || cfg.SearchModels[0] != "gemini-3-pro-search" {
		t.Errorf("unexpected search models: %v", cfg.SearchModels)
	}
}

func TestLoadConfig_DefaultsLoggingLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("project: p\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LoggingLevel != "info" {
		t.Errorf("expected default logging level info, got %q", cfg.LoggingLevel)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
