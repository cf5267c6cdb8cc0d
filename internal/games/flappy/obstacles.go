package flappy

import (
	"math"

	"github.com/yeo-develop/crappybird/internal/core"
)

// Rand is the randomness source consumed by pipe spawning.
// *core.RNG satisfies it; tests can supply a fixed sequence.
type Rand interface {
	Float64() float64
}

// Pipe represents a top/bottom obstacle pair with a gap between them.
type Pipe struct {
	X      float64 // Horizontal position (left edge)
	GapY   float64 // Y position where the gap starts (top of gap)
	Passed bool    // Whether the pipe has been scored
}

// TopRect returns the obstacle above the gap.
func (p Pipe) TopRect(params Params) core.Rect {
	return core.NewRect(p.X, 0, params.PipeWidth, p.GapY)
}

// BottomRect returns the obstacle below the gap, down to the screen bottom.
func (p Pipe) BottomRect(params Params, screenH float64) core.Rect {
	bottomY := p.GapY + params.PipeGap
	return core.NewRect(p.X, bottomY, params.PipeWidth, screenH-bottomY)
}

// Midpoint returns the horizontal center of the pipe.
func (p Pipe) Midpoint(params Params) float64 {
	return p.X + params.PipeWidth/2
}

// CollidesWith reports whether a bird at birdY overlaps either obstacle.
// The bird collides when it is horizontally within the pipe and not fully
// inside the gap.
func (p Pipe) CollidesWith(params Params, birdY float64) bool {
	bird := birdRect(params, birdY)
	column := core.NewRect(p.X, 0, params.PipeWidth, 1)
	if !bird.OverlapsX(column) {
		return false
	}
	return birdY < p.GapY || bird.Bottom() > p.GapY+params.PipeGap
}

// GapRange returns the half-open range [lo, hi) that gap positions are drawn
// from for the given screen height. The range collapses to lo when the screen
// is too short to fit a gap with both margins.
func (params Params) GapRange(screenH float64) (lo, hi float64) {
	span := screenH - params.PipeGap - 2*params.GapMargin
	if span < 0 {
		span = 0
	}
	return params.GapMargin, params.GapMargin + span
}

// newPipe creates a pipe at the spawn column with a random gap position.
func (params Params) newPipe(screenH float64, rng Rand) Pipe {
	lo, hi := params.GapRange(screenH)
	return Pipe{
		X:    params.SpawnX,
		GapY: rng.Float64()*(hi-lo) + lo,
	}
}

// birdRect returns the bird's hitbox at the given height.
func birdRect(params Params, y float64) core.Rect {
	return core.NewRect(params.BirdX, y, params.BirdWidth, params.BirdHeight)
}

// sanitizeHeight treats NaN and negative screen heights as zero.
func sanitizeHeight(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}
