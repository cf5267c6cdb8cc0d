package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yeo-develop/crappybird/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Shows the game tuning that play, serve and sim would use, as YAML.

The configuration is searched in this order:
  1. --config <path>
  2. ~/.crappybird/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Examples:
  crappybird config
  crappybird config --defaults > ~/.crappybird/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
