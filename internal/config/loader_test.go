package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("default screen = %dx%d, expected positive dimensions", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Timing.TickRate <= 0 {
		t.Errorf("default tick rate = %d, expected positive", cfg.Timing.TickRate)
	}
	if len(cfg.Keys.Left) == 0 || len(cfg.Keys.O) == 0 {
		t.Error("default key bindings are empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "console.yaml")

	yaml := `
screen:
  width: 128
  height: 48
timing:
  tick_rate: 60
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Screen.Width != 128 || cfg.Screen.Height != 48 {
		t.Errorf("screen = %dx%d, expected 128x48", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", cfg.Timing.TickRate)
	}

	// Sections the file omits fall back to defaults.
	if len(cfg.Keys.Left) == 0 {
		t.Error("omitted key bindings should fall back to defaults")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}
