package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/invaders"
	"github.com/vovakirdan/tile-arcade/internal/games/platformer"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

// Per-game flags shared by play, menu and sim
var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
)

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		MaxSteps: flagMaxSteps,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
}

// applyGameFlags hands --config, --difficulty and --level to the game
// packages before the game is created.
func applyGameFlags(gameID string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	switch gameID {
	case config.GamePlatformer:
		platformer.SetConfigPath(flagConfig)
		platformer.SetDifficultyPreset(preset)
		platformer.SetLevel(flagLevel)
	case config.GameInvaders:
		if flagLevel != "" {
			return fmt.Errorf("--level is not supported by %s", gameID)
		}
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(preset)
	}
	return nil
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// exitOnErr prints err to stderr and exits 1.
func exitOnErr(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
