package flappy

import "time"

// EndReason records what ended a run.
type EndReason int

const (
	EndNone        EndReason = iota
	EndOutOfBounds           // Bird left the screen vertically
	EndPipe                  // Bird hit a pipe
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndOutOfBounds:
		return "out of bounds"
	case EndPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Message returns the line shown to the player when a run ends this way.
func (r EndReason) Message() string {
	switch r {
	case EndOutOfBounds:
		return "Flew off the screen"
	case EndPipe:
		return "Hit a pipe"
	default:
		return ""
	}
}

// Bird is the player-controlled element. Its column is fixed by Params.BirdX.
type Bird struct {
	Y        float64 // Top of the hitbox
	Velocity float64 // Vertical speed, positive = down
}

// State is the complete simulation state of one run.
// Step never modifies a State in place, so a State handed to a renderer is a
// stable snapshot.
type State struct {
	Bird      Bird
	Pipes     []Pipe // Spawn order, which is also left-to-right order
	Score     int
	GameOver  bool
	EndReason EndReason
	LastSpawn time.Duration // Frame time of the most recent spawn
}

// NewState returns a fresh run started at frame time now.
// The first pipe appears one spawn interval later.
func NewState(now time.Duration) State {
	return State{LastSpawn: now}
}

// clone returns a copy of s that shares no memory with it.
func (s State) clone() State {
	out := s
	out.Pipes = make([]Pipe, len(s.Pipes), len(s.Pipes)+1)
	copy(out.Pipes, s.Pipes)
	return out
}

// end marks the run as over. The first reason of a frame wins.
func (s *State) end(reason EndReason) {
	if s.GameOver {
		return
	}
	s.GameOver = true
	s.EndReason = reason
}
