package flappy

import "github.com/yeo-develop/crappybird/internal/core"

// PipeSnapshot is the drawable geometry of one pipe pair.
type PipeSnapshot struct {
	Top    core.Rect
	Bottom core.Rect
}

// Snapshot is a read-only view of a State for renderers.
type Snapshot struct {
	Bird      core.Rect
	Pipes     []PipeSnapshot
	Score     int
	GameOver  bool
	EndReason EndReason
}

// Snapshot derives drawable rectangles from s for a screen of height screenH.
func (params Params) Snapshot(s State, screenH float64) Snapshot {
	screenH = sanitizeHeight(screenH)

	pipes := make([]PipeSnapshot, 0, len(s.Pipes))
	for _, p := range s.Pipes {
		pipes = append(pipes, PipeSnapshot{
			Top:    p.TopRect(params),
			Bottom: p.BottomRect(params, screenH),
		})
	}

	return Snapshot{
		Bird:      birdRect(params, s.Bird.Y),
		Pipes:     pipes,
		Score:     s.Score,
		GameOver:  s.GameOver,
		EndReason: s.EndReason,
	}
}
