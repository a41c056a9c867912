// Package config loads and persists editor preferences as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the editor preferences.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	Preview PreviewConfig `yaml:"preview"`
}

// WindowConfig sizes the editor window.
type WindowConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	TargetFPS int  `yaml:"target_fps"`
	VSync     bool `yaml:"vsync"`
}

// InputConfig tunes pointer handling.
type InputConfig struct {
	// ClickThresholdPx is the maximum pointer travel in device pixels for
	// a press/release pair to count as a click instead of a drag.
	ClickThresholdPx float64 `yaml:"click_threshold_px"`
}

// PreviewConfig tunes the preview compositor.
type PreviewConfig struct {
	// Material is the preview shading mode: standard, wireframe, normal
	// or basic.
	Material string `yaml:"material"`
	// Mode is the startup preview mode: none, selected or all.
	Mode string `yaml:"mode"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			TargetFPS: 60,
			VSync:     true,
		},
		Input: InputConfig{
			ClickThresholdPx: 5.0,
		},
		Preview: PreviewConfig{
			Material: "standard",
			Mode:     "none",
		},
	}
}

// Load reads preferences from path, filling gaps with defaults. A missing
// file is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.sanitize()
	return cfg, nil
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the per-user preferences location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "meshflow.yaml"
	}
	return filepath.Join(dir, "meshflow", "config.yaml")
}

// sanitize clamps nonsensical values back to defaults.
func (c *Config) sanitize() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.TargetFPS <= 0 {
		c.Window.TargetFPS = def.Window.TargetFPS
	}
	if c.Input.ClickThresholdPx <= 0 {
		c.Input.ClickThresholdPx = def.Input.ClickThresholdPx
	}
	if c.Preview.Material == "" {
		c.Preview.Material = def.Preview.Material
	}
	if c.Preview.Mode == "" {
		c.Preview.Mode = def.Preview.Mode
	}
}
