package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:   0.5,
			FlapBoost: -10,
			PipeSpeed: 5,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:       100,
			PipeGap:         200,
			GapMargin:       100,
			SpawnX:          800,
			SpawnIntervalMS: 2000,
		},
		Bird: FlappyBird{
			X:      100,
			Width:  50,
			Height: 50,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 25,
			HUDRows:    1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
