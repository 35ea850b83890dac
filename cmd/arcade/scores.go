package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagAllScores bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Without arguments, summarize every game that has scores.
With a game ID, show its top 10 scores and latest runs.

Examples:
  arcade scores
  arcade scores platformer
  arcade scores invaders --all
  arcade scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the game's scores and runs")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	exitOnErr("opening scores database", err)
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagClear {
		exitOnErr("clearing scores", store.ClearScores(gameID))
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	exitOnErr("retrieving scores", err)

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("\nPlay 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("\nBest: %d\n", high)
	}
	printRecentRuns(store, gameID)
}

// printSummary lists per-game totals for every game with recorded scores.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	exitOnErr("reading stats", err)
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %6s  %8s  %8s  %s\n", "Game", "Games", "Best", "Avg", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-12s  %6d  %8d  %8.0f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// printRecentRuns lists the latest finished sessions.
func printRecentRuns(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, 5)
	if err != nil {
		logger.Warn("cannot read runs", "err", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		level := r.LevelID
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %s  %-8s  %-4s  %6d pts  %6d ticks  %d dropped\n",
			r.CreatedAt.Format("2006-01-02 15:04"), level, result, r.Score, r.Ticks, r.DroppedTicks)
	}
}
