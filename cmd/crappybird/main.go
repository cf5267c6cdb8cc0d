// crappybird is a side-scrolling flap-through-the-pipes game for the terminal.
//
// Usage:
//
//	crappybird play          - Play in this terminal
//	crappybird serve         - Start SSH server for remote play
//	crappybird window        - Play in a desktop window (ebiten builds)
//	crappybird sim           - Run a headless game and log the outcome
//	crappybird config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load game tuning from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crappybird",
	Short: "Crappy Bird - flap through the pipes in your terminal",
	Long: `Crappy Bird is a side-scrolling game: tap to flap, fly through the
gaps between the pipes, and score one point for every pipe you pass.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  sim      - Run a headless game
  config   - Print the effective configuration

Examples:
  crappybird play
  crappybird play --seed 42 --config ./my-flappy.yaml
  crappybird serve --ssh :2222
  crappybird sim --frames 3600 --flap-every 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
