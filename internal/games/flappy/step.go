package flappy

import "time"

// Step advances the simulation by exactly one frame and returns the new state.
//
// frameTime is the monotonic timestamp of this frame, screenH the current
// viewport height and flap the edge-triggered tap signal. rng is only drawn
// from when a pipe spawns. The input state is left untouched.
//
// A flap sets the velocity to FlapBoost and skips gravity for that frame;
// gravity resumes on the next frame. While the run is over nothing changes.
func (params Params) Step(s State, frameTime time.Duration, screenH float64, flap bool, rng Rand) State {
	if s.GameOver {
		return s
	}

	screenH = sanitizeHeight(screenH)
	next := s.clone()

	// Bird physics
	if flap {
		next.Bird.Velocity = params.FlapBoost
	} else {
		next.Bird.Velocity += params.Gravity
	}
	next.Bird.Y += next.Bird.Velocity

	if next.Bird.Y < 0 || next.Bird.Y+params.BirdHeight > screenH {
		next.end(EndOutOfBounds)
	}

	// Scroll, then drop pipes whose right edge left the screen
	kept := next.Pipes[:0]
	for _, p := range next.Pipes {
		p.X -= params.PipeSpeed
		if p.X+params.PipeWidth > 0 {
			kept = append(kept, p)
		}
	}
	next.Pipes = kept

	// At most one pipe per frame, even after a long stall
	if frameTime-next.LastSpawn >= params.SpawnInterval {
		next.Pipes = append(next.Pipes, params.newPipe(screenH, rng))
		next.LastSpawn = frameTime
	}

	for _, p := range next.Pipes {
		if p.CollidesWith(params, next.Bird.Y) {
			next.end(EndPipe)
			break
		}
	}

	for i := range next.Pipes {
		p := &next.Pipes[i]
		if !p.Passed && p.Midpoint(params) <= params.BirdX {
			p.Passed = true
			next.Score++
		}
	}

	return next
}
