// Package registry maps game IDs to factories. Each game package registers
// itself from init, so importing a game is enough to make it playable from
// the CLI, the menu and the SSH server.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Game is a fixed-tick simulation the platform can drive.
// It never sees terminals or wall-clock time: the platform owns the Clock,
// turns keys into InputFrames and draws whatever Render leaves on screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new run. The seed in cfg makes runs reproducible.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the game clears itself.
	Render(dst *core.Screen)

	State() core.GameState
}

// Reloadable is implemented by games built from files on disk.
// The platform watches WatchPaths and reports LoadErr when a game fell
// back to its defaults.
type Reloadable interface {
	WatchPaths() []string
	LoadErr() error
}

// Leveled is implemented by games that play a named level.
// UseLevel selects the level for the next Reset.
type Leveled interface {
	LevelID() string
	UseLevel(idOrPath string)
}

// GameInfo describes a registered game and the optional interfaces its
// instances implement.
type GameInfo struct {
	ID         string
	Title      string
	Leveled    bool
	Reloadable bool
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game. It panics on an empty ID, a nil factory or a
// duplicate, since all of those are programming errors caught at startup.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	_, leveled := g.(Leveled)
	_, reloadable := g.(Reloadable)
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Leveled: leveled, Reloadable: reloadable}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Info returns the description of one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	info, ok := infos[id]
	return info, ok
}

// Create returns a new instance of game id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
