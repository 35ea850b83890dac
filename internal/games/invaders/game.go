// Package invaders implements a small Space Invaders clone: a marching
// formation, a ship on the bottom row and a fixed pool of bullets.
package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerSprite = "/^\\"
	EnemySprite0 = "{@}"
	EnemySprite1 = "/O\\"
	BulletChar   = '|'
	ShotChar     = '!'
	GroundChar   = '─'
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements Invaders on top of World.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	paused  bool
	pause   core.Edge
	loadErr error
}

// New creates a new Invaders instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return config.GameInvaders
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadErr = nil

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}

	g.world = NewWorld(cfg, runtime.Seed)
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

// LoadErr returns the config error from the last Reset, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// WatchPaths returns the config file the game was built from.
func (g *Game) WatchPaths() []string {
	if p := config.ResolvePath(config.GameInvaders, configPath); p != "" {
		return []string{p}
	}
	return nil
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	if w == nil {
		return
	}

	// Field is centered below a one-row HUD
	offX := (dst.Width() - int(w.Cfg.Field.Width)) / 2
	offY := 1
	if offX < 0 {
		offX = 0
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.State != Alive {
			continue
		}
		sprite, color := EnemySprite0, core.ColorBrightMagenta
		if e.Row%2 == 1 {
			sprite, color = EnemySprite1, core.ColorBrightGreen
		}
		drawSprite(dst, e.Box, sprite, color, offX, offY)
	}

	w.Bullets.Each(func(b *Bullet) {
		dst.SetColor(offX+int(b.Box.X), offY+row(top(b.Box)), BulletChar, core.ColorBrightYellow)
	})
	w.EnemyShots.Each(func(b *Bullet) {
		dst.SetColor(offX+int(b.Box.X), offY+row(top(b.Box)), ShotChar, core.ColorRed)
	})

	drawSprite(dst, w.Player, PlayerSprite, core.ColorBrightCyan, offX, offY)
	dst.DrawHLine(offX, offY+int(w.Cfg.Field.Height)-1, int(w.Cfg.Field.Width), GroundChar)

	scoreText := fmt.Sprintf(" Score: %d ", w.Score)
	dst.DrawText(2, 0, scoreText)
	livesText := " Lives: " + strings.Repeat("♥", w.Lives) + " "
	dst.DrawTextColor(dst.Width()-len([]rune(livesText))-2, 0, livesText, core.ColorRed)

	switch {
	case w.Won:
		dst.DrawMessage("YOU WIN", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score))
	case w.GameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// drawSprite writes a one-row sprite on the box's top row.
func drawSprite(dst *core.Screen, b core.Box, sprite string, c core.Color, offX, offY int) {
	dst.DrawTextColor(offX+int(b.Left()+0.5), offY+row(top(b)), sprite, c)
}

// row maps a field Y to its screen row.
func row(y float64) int { return int(math.Floor(y)) }

// Register the game with the registry
func init() {
	registry.Register(config.GameInvaders, func() registry.Game {
		return New()
	})
}
