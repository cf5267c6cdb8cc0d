package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yeo-develop/crappybird/internal/config"
	"github.com/yeo-develop/crappybird/internal/core"
	"github.com/yeo-develop/crappybird/internal/games/flappy"
)

var (
	flagFrames    int
	flagFlapEvery int
	flagHeight    float64
	flagAutopilot bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and log the outcome",
	Long: `Simulate a game without a screen. Frames are timed at the --fps rate,
so the same seed and flags always produce the same run.

The bird flaps every --flap-every frames, or steers toward the next gap
with --autopilot.

Examples:
  crappybird sim --seed 1
  crappybird sim --frames 7200 --flap-every 18 --height 600
  crappybird sim --autopilot --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Flap once every N frames (0 = never)")
	simCmd.Flags().Float64Var(&flagHeight, "height", 600, "Screen height in world units")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Flap toward the next gap instead of on a fixed beat")
}

// simOptions controls a headless run.
type simOptions struct {
	Frames    int
	FlapEvery int
	Height    float64
	FPS       int
	Seed      int64
	Autopilot bool
}

// simResult summarizes a headless run.
type simResult struct {
	Frames    int
	Flaps     int
	Score     int
	GameOver  bool
	EndReason flappy.EndReason
	Elapsed   time.Duration // Simulated time, not wall time
}

// runHeadless steps the simulation directly, without a Game or a screen.
func runHeadless(params flappy.Params, opts simOptions) simResult {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)

	rng := core.NewRNG(opts.Seed)
	state := flappy.NewState(0)
	state.Bird.Y = opts.Height / 2

	var res simResult
	for i := range opts.Frames {
		now := time.Duration(i) * frame

		var flap bool
		if opts.Autopilot {
			flap = autopilot(params, state, opts.Height)
		} else if opts.FlapEvery > 0 {
			flap = i%opts.FlapEvery == 0
		}
		if flap {
			res.Flaps++
		}

		state = params.Step(state, now, opts.Height, flap, rng)
		res.Frames++
		res.Elapsed = now
		if state.GameOver {
			break
		}
	}

	res.Score = state.Score
	res.GameOver = state.GameOver
	res.EndReason = state.EndReason
	return res
}

// autopilot flaps when the bird is falling below the center of the next gap.
func autopilot(params flappy.Params, s flappy.State, screenH float64) bool {
	target := screenH / 2
	for _, p := range s.Pipes {
		if p.X+params.PipeWidth >= params.BirdX {
			target = p.GapY + params.PipeGap/2
			break
		}
	}
	center := s.Bird.Y + params.BirdHeight/2
	return s.Bird.Velocity >= 0 && center+s.Bird.Velocity > target
}

func runSim(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crappybird-sim",
	})

	opts := simOptions{
		Frames:    flagFrames,
		FlapEvery: flagFlapEvery,
		Height:    flagHeight,
		FPS:       flagFPS,
		Seed:      seedOrNow(flagSeed),
		Autopilot: flagAutopilot,
	}
	logger.Debug("simulating", "frames", opts.Frames, "seed", opts.Seed, "height", opts.Height)

	res := runHeadless(flappy.ParamsFromConfig(gameCfg), opts)

	fields := []any{
		"seed", opts.Seed,
		"score", res.Score,
		"frames", res.Frames,
		"flaps", res.Flaps,
		"elapsed", res.Elapsed.Round(time.Millisecond),
	}
	if res.GameOver {
		logger.Info("run ended", append(fields, "reason", res.EndReason)...)
	} else {
		logger.Info("run survived", fields...)
	}
	return nil
}

// seedOrNow returns seed, or a time-based seed when it is zero.
func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
