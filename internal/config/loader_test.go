package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	if fromYAML != DefaultFlappyConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", fromYAML, DefaultFlappyConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	content := "physics:\n  gravity: 0.75\nobstacles:\n  pipe_gap: 240\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.PipeGap != 240 {
		t.Errorf("PipeGap = %v, expected 240", cfg.Obstacles.PipeGap)
	}

	// Unset fields keep their defaults
	def := DefaultFlappyConfig()
	if cfg.Physics.FlapBoost != def.Physics.FlapBoost {
		t.Errorf("FlapBoost = %v, expected default %v", cfg.Physics.FlapBoost, def.Physics.FlapBoost)
	}
	if cfg.Bird != def.Bird {
		t.Errorf("Bird = %+v, expected default %+v", cfg.Bird, def.Bird)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadFlappy() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFlappyMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadFlappy(path); err == nil {
		t.Fatal("LoadFlappy() should fail for malformed YAML")
	}
}

func TestLoadFlappyRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  flap_boost: 4\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadFlappy(path)
	if err == nil {
		t.Fatal("LoadFlappy() should reject a positive flap boost")
	}
	if !strings.Contains(err.Error(), "flap_boost") {
		t.Errorf("error should name the bad field, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		field  string
	}{
		{"zero gravity", func(c *FlappyConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"zero pipe speed", func(c *FlappyConfig) { c.Physics.PipeSpeed = 0 }, "physics.pipe_speed"},
		{"negative pipe width", func(c *FlappyConfig) { c.Obstacles.PipeWidth = -1 }, "obstacles.pipe_width"},
		{"zero interval", func(c *FlappyConfig) { c.Obstacles.SpawnIntervalMS = 0 }, "obstacles.spawn_interval_ms"},
		{"negative margin", func(c *FlappyConfig) { c.Obstacles.GapMargin = -5 }, "obstacles.gap_margin"},
		{"zero bird height", func(c *FlappyConfig) { c.Bird.Height = 0 }, "bird.height"},
		{"zero cell width", func(c *FlappyConfig) { c.Display.CellWidth = 0 }, "display.cell_width"},
		{"negative hud rows", func(c *FlappyConfig) { c.Display.HUDRows = -1 }, "display.hud_rows"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should mention %s, got: %v", tc.field, err)
			}
		})
	}
}
