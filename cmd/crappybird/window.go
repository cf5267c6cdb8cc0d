package main

import (
	"github.com/spf13/cobra"

	"github.com/yeo-develop/crappybird/internal/config"
	"github.com/yeo-develop/crappybird/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play there. Only available in binaries
built with the ebiten tag:

  go build -tags ebiten ./cmd/crappybird

Controls:
  Space/Up/Click/Touch - Flap (restarts after game over)
  P                    - Pause
  R                    - Restart
  Q/Esc                - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	return gui.Run(gameCfg, flagFPS, seedOrNow(flagSeed), flagScale)
}
