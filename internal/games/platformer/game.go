// Package platformer implements a side-scrolling tile platformer: run and
// jump across a tile map to reach the key.
package platformer

import (
	"fmt"
	"os"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/tilemap"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var levelOverride string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLevel selects a built-in level ID or a level file path, overriding
// the level named in the config.
func SetLevel(idOrPath string) {
	levelOverride = idOrPath
}

// LoadLevel resolves a level argument: an existing file is parsed by its
// extension, anything else is looked up among the built-in levels.
func LoadLevel(idOrPath string) (tilemap.Level, error) {
	if idOrPath == "" {
		idOrPath = tilemap.DefaultLevelID
	}
	if tilemap.IsSupported(idOrPath) {
		if _, err := os.Stat(idOrPath); err == nil {
			return tilemap.LoadFile(idOrPath)
		}
	}
	return tilemap.Builtin().LoadByID(idOrPath)
}

// Game implements the platformer on top of World.
type Game struct {
	world   *World
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	paused  bool
	pause   core.Edge
	loadErr error
	level   string // Per-instance level choice, wins over SetLevel
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.GamePlatformer
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tile Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultPlatformerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	levelArg := cfg.Level
	switch {
	case g.level != "":
		levelArg = g.level
	case levelOverride != "":
		levelArg = levelOverride
	}
	lvl, err := LoadLevel(levelArg)
	if err != nil {
		g.loadErr = err
		lvl, err = LoadLevel(tilemap.DefaultLevelID)
		if err != nil {
			panic(fmt.Sprintf("platformer: built-in level: %v", err))
		}
	}

	w, err := NewWorld(lvl, cfg, runtime.Debug)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultPlatformerConfig()
		w, err = NewWorld(lvl, cfg, runtime.Debug)
		if err != nil {
			panic(fmt.Sprintf("platformer: default world: %v", err))
		}
	}
	g.world = w
	g.paused = false
	g.pause.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.pause.Pressed(in, core.ActionPause) && !g.world.GameOver && !g.world.Won {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	Tick(g.world, in, g.runtime.DT())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	if w == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    w.Score,
		Lives:    w.Lives,
		GameOver: w.GameOver || w.Won,
		Won:      w.Won,
		Paused:   g.paused,
	}
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// LevelID returns the ID of the loaded level.
func (g *Game) LevelID() string {
	if g.world == nil {
		return ""
	}
	return g.world.Level.ID
}

// UseLevel selects a built-in level ID or level file for this instance.
func (g *Game) UseLevel(idOrPath string) {
	g.level = idOrPath
}

// LoadErr returns the config or level error from the last Reset, if the
// game fell back to defaults.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// WatchPaths returns the config and level files the game was built from.
func (g *Game) WatchPaths() []string {
	var paths []string
	if p := config.ResolvePath(config.GamePlatformer, configPath); p != "" {
		paths = append(paths, p)
	}
	if g.world != nil && g.world.Level.FilePath != "" {
		if _, err := os.Stat(g.world.Level.FilePath); err == nil {
			paths = append(paths, g.world.Level.FilePath)
		}
	}
	return paths
}

// Register the game with the registry
func init() {
	registry.Register(config.GamePlatformer, func() registry.Game {
		return New()
	})
}
