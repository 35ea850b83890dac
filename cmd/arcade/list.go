package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/tilemap"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games and levels",
	Long:  `Shows a list of all games registered in the arcade and the built-in platformer levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Options")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "-------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, gameOptions(g))
	}

	fmt.Println()
	printLevels()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// printLevels lists the levels embedded in the binary.
func printLevels() {
	levels, err := tilemap.Builtin().LoadAll()
	if err != nil {
		logger.Warn("cannot read built-in levels", "err", err)
		return
	}
	if len(levels) == 0 {
		return
	}

	fmt.Println("Built-in levels (platformer --level):")
	fmt.Println()
	for _, l := range levels {
		fmt.Printf("  %-10s  %-12s  %dx%d\n", l.ID, l.Name, l.Grid.Width(), l.Grid.Height())
	}
	fmt.Println()
}

// gameOptions lists the per-game flags a game honors.
func gameOptions(g registry.GameInfo) string {
	opts := "--config --difficulty"
	if g.Leveled {
		opts += " --level"
	}
	if g.Reloadable {
		opts += " --watch"
	}
	return opts
}
