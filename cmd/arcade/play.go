package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/platform/tui"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right  - Move
  Space, W/Up      - Jump (platformer) / Fire (invaders)
  F                - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, gentler physics and fire rate
  normal - Config values as-is
  hard   - Fewer lives, faster enemies, slippery ground
  fixed  - No difficulty progression

Levels (platformer):
  --level takes a built-in level ID (see 'arcade list') or a path to a
  .txt (Flare) or .yaml level file.

Examples:
  arcade play platformer
  arcade play platformer --level cavern
  arcade play platformer --level ./my-level.yaml --watch
  arcade play invaders --difficulty hard
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID or level file (platformer)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the game when its config or level file changes")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	exitOnErr("invalid flags", applyGameFlags(gameID))

	game, err := registry.Create(gameID)
	exitOnErr("creating game", err)

	store := openStore()

	restore := redirectLogs()
	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Watch:  flagWatch,
	})
	restore()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	exitOnErr("running game", runErr)
}
