package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the built-in YAML config for a game, as a starting point for
~/.arcade/configs/<game>.yaml or --config.

With --path, print the file the game would load instead.

Examples:
  arcade config platformer > ~/.arcade/configs/platformer.yaml
  arcade config invaders --path`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the resolved config file path")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]
	data, err := config.DefaultYAML(gameID)
	exitOnErr("reading default config", err)

	if !flagConfigPath {
		os.Stdout.Write(data)
		return
	}
	if p := config.ResolvePath(gameID, flagConfig); p != "" {
		fmt.Println(p)
		return
	}
	fmt.Println("(built-in default)")
}
