package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/platform/headless"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagScript string
	flagTicks  int
	flagRender bool
	flagSave   bool
)

// Demo inputs used when no --script is given
var defaultScripts = map[string]string{
	config.GamePlatformer: `# run right, hopping the brick block and the first pit
60 Right
12 Right+Jump
60 Right
15 Right+Jump
60 Right
`,
	config.GameInvaders: `# sweep the ship while firing
90 Left+Fire
180 Right+Fire
180 Left+Fire
180 Right+Fire
`,
}

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Replay an input script headless",
	Long: `Run a game without a terminal, feeding it one input frame per tick from
a script, and print the final state.

Script format, one segment per line:
  <ticks> <Action>[+<Action>...]
Actions: Left, Right, Jump, Fire, Pause. Use "-" for idle ticks.
Lines starting with # are comments.

With a fixed --seed the same script always produces the same result.

Examples:
  arcade sim platformer
  arcade sim platformer --script run.txt --level cavern --render
  arcade sim invaders --seed 7 --ticks 3600 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Input script file (default: built-in demo)")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to simulate (default: script length)")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final screen")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID or level file (platformer)")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}
	exitOnErr("invalid flags", applyGameFlags(gameID))

	script, err := loadScript(gameID)
	exitOnErr("reading script", err)

	game, err := registry.Create(gameID)
	exitOnErr("creating game", err)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.MaxSteps = flagMaxSteps
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug

	res := headless.Run(game, cfg, script.Frames(), flagTicks)
	if r, ok := game.(registry.Reloadable); ok && r.LoadErr() != nil {
		logger.Warn("using defaults", "err", r.LoadErr())
	}

	levelID := ""
	if l, ok := game.(registry.Leveled); ok {
		levelID = l.LevelID()
	}

	st := res.State
	fmt.Printf("game:   %s\n", game.Title())
	if levelID != "" {
		fmt.Printf("level:  %s\n", levelID)
	}
	fmt.Printf("seed:   %d\n", cfg.Seed)
	fmt.Printf("ticks:  %d (%.2fs)\n", res.Ticks, float64(res.Ticks)*cfg.DT())
	fmt.Printf("score:  %d\n", st.Score)
	fmt.Printf("lives:  %d\n", st.Lives)
	fmt.Printf("result: %s\n", resultText(st))

	if flagRender {
		screen := core.NewScreen(80, 24)
		game.Render(screen)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagSave {
		store, err := storage.Open(flagDBPath)
		exitOnErr("opening scores database", err)
		defer store.Close()
		_, err = store.SaveRun(storage.Run{
			GameID:  gameID,
			LevelID: levelID,
			Score:   st.Score,
			Won:     st.Won,
			Ticks:   res.Ticks,
			Seed:    cfg.Seed,
		})
		exitOnErr("saving run", err)
		logger.Info("run saved", "game", gameID)
	}
}

// loadScript reads --script, or the game's demo script.
func loadScript(gameID string) (headless.Script, error) {
	if flagScript == "" {
		return headless.ParseScript(strings.NewReader(defaultScripts[gameID]))
	}
	f, err := os.Open(flagScript)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return headless.ParseScript(f)
}

func resultText(st core.GameState) string {
	switch {
	case st.Won:
		return "won"
	case st.GameOver:
		return "game over"
	default:
		return "running"
	}
}
