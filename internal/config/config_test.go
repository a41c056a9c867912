package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1920
	cfg.Preview.Material = "wireframe"
	cfg.Preview.Mode = "all"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadSanitizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "window:\n  width: -10\n  target_fps: 0\ninput:\n  click_threshold_px: -1\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Window.Width != def.Window.Width {
		t.Errorf("negative width should fall back to %d, got %d", def.Window.Width, cfg.Window.Width)
	}
	if cfg.Window.TargetFPS != def.Window.TargetFPS {
		t.Errorf("zero fps should fall back to %d, got %d", def.Window.TargetFPS, cfg.Window.TargetFPS)
	}
	if cfg.Input.ClickThresholdPx != def.Input.ClickThresholdPx {
		t.Errorf("negative threshold should fall back to %v, got %v", def.Input.ClickThresholdPx, cfg.Input.ClickThresholdPx)
	}
}
