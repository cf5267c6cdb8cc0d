// Package flappy implements the crappybird simulation.
// The player controls a bird that falls under gravity and must pass through
// the gaps of pipes scrolling in from the right.
package flappy

import (
	"time"

	"github.com/yeo-develop/crappybird/internal/config"
)

// Params holds the tuning constants of a run. All lengths are world units
// with a top-left origin and y growing downward; rates are per frame.
type Params struct {
	Gravity   float64 // Downward acceleration per frame
	FlapBoost float64 // Velocity set by a flap (negative = up)

	BirdX      float64 // Fixed horizontal position of the bird
	BirdWidth  float64
	BirdHeight float64

	PipeWidth float64
	PipeGap   float64 // Height of the passable gap
	PipeSpeed float64 // Leftward movement per frame
	SpawnX    float64 // Left edge of a freshly spawned pipe
	GapMargin float64 // Minimum distance between a gap and the screen edges

	SpawnInterval time.Duration
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultFlappyConfig())
}

// ParamsFromConfig converts a loaded configuration into simulation parameters.
func ParamsFromConfig(cfg config.FlappyConfig) Params {
	return Params{
		Gravity:       cfg.Physics.Gravity,
		FlapBoost:     cfg.Physics.FlapBoost,
		BirdX:         cfg.Bird.X,
		BirdWidth:     cfg.Bird.Width,
		BirdHeight:    cfg.Bird.Height,
		PipeWidth:     cfg.Obstacles.PipeWidth,
		PipeGap:       cfg.Obstacles.PipeGap,
		PipeSpeed:     cfg.Physics.PipeSpeed,
		SpawnX:        cfg.Obstacles.SpawnX,
		GapMargin:     cfg.Obstacles.GapMargin,
		SpawnInterval: time.Duration(cfg.Obstacles.SpawnIntervalMS) * time.Millisecond,
	}
}
