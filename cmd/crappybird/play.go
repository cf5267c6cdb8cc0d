package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yeo-develop/crappybird/internal/config"
	"github.com/yeo-develop/crappybird/internal/core"
	"github.com/yeo-develop/crappybird/internal/games/flappy"
	"github.com/yeo-develop/crappybird/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/Click - Flap (restarts after game over)
  P/Esc          - Pause
  R              - Restart
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Examples:
  crappybird play
  crappybird play --seed 42
  crappybird play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(flappy.New(gameCfg), cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
