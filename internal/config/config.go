// Package config provides YAML-based game configuration loading for
// crappybird.
package config

import (
	"errors"
	"fmt"
	"math"
)

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Bird      FlappyBird      `yaml:"bird"`
	Display   DisplayConfig   `yaml:"display"`
}

// FlappyPhysics defines per-frame physics parameters.
type FlappyPhysics struct {
	Gravity   float64 `yaml:"gravity"`    // Added to velocity every frame
	FlapBoost float64 `yaml:"flap_boost"` // Velocity set by a flap (negative = up)
	PipeSpeed float64 `yaml:"pipe_speed"` // Leftward pipe movement per frame
}

// FlappyObstacles defines pipe geometry and spawning.
type FlappyObstacles struct {
	PipeWidth       float64 `yaml:"pipe_width"`
	PipeGap         float64 `yaml:"pipe_gap"`
	GapMargin       float64 `yaml:"gap_margin"` // Minimum distance from gap to top/bottom
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// FlappyBird defines the bird's fixed column and hitbox.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DisplayConfig maps world units onto terminal cells.
type DisplayConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`
}

// Validate reports every field that cannot produce a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if math.IsNaN(v) || v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("physics.pipe_speed", c.Physics.PipeSpeed)
	if math.IsNaN(c.Physics.FlapBoost) || c.Physics.FlapBoost >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_boost must be negative, got %v", c.Physics.FlapBoost))
	}

	positive("obstacles.pipe_width", c.Obstacles.PipeWidth)
	positive("obstacles.pipe_gap", c.Obstacles.PipeGap)
	positive("obstacles.spawn_x", c.Obstacles.SpawnX)
	if c.Obstacles.GapMargin < 0 {
		errs = append(errs, fmt.Errorf("obstacles.gap_margin must not be negative, got %v", c.Obstacles.GapMargin))
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS))
	}

	positive("bird.width", c.Bird.Width)
	positive("bird.height", c.Bird.Height)

	positive("display.cell_width", c.Display.CellWidth)
	positive("display.cell_height", c.Display.CellHeight)
	if c.Display.HUDRows < 0 {
		errs = append(errs, fmt.Errorf("display.hud_rows must not be negative, got %d", c.Display.HUDRows))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
