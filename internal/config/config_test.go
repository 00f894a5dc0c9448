package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Fatalf("expected default color mode auto, got %q", cfg.Color)
	}
	if !cfg.Symbols {
		t.Fatalf("expected symbols enabled by default")
	}

	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}
}

func TestLoadConfigReadsExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "decksmith")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	contents := "color = \"never\"\nsymbols = false\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(contents), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "never" {
		t.Fatalf("expected color never, got %q", cfg.Color)
	}
	if cfg.Symbols {
		t.Fatalf("expected symbols disabled")
	}
}

func TestLoadConfigDefaultsEmptyColor(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "decksmith")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("symbols = true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "auto" {
		t.Fatalf("expected empty color to default to auto, got %q", cfg.Color)
	}
}

func TestGetConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	want := filepath.Join("/tmp/xdg-test", "decksmith", "config.toml")
	if got := GetConfigFilePath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
