package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/physics"
	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store  *storage.Store // Optional; nil disables score saving
	Logger *log.Logger    // Optional; defaults to log.Default()
	Watch  bool           // Reload the game when its config or level file changes
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    *KeyMapper
	clock   *physics.Clock
	watcher *config.Watcher

	gameState   core.GameState
	fixedSeed   bool
	ticks       int    // Ticks simulated since the last reset
	lastDropped uint64 // Clock drops already reported
	quitting    bool
	backToMenu  bool
	scoreSaved  bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("game", game.ID())

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keys:      NewKeyMapper(),
		clock:     physics.NewClock(cfg.TickRate, cfg.MaxSteps),
		fixedSeed: fixed,
	}
	m.reset()

	if opts.Watch {
		m.watcher = m.startWatcher()
	}
	return m
}

// startWatcher watches the files the game was loaded from.
// Returns nil if the game has nothing on disk to watch.
func (m *Model) startWatcher() *config.Watcher {
	r, ok := m.game.(registry.Reloadable)
	if !ok {
		return nil
	}
	paths := r.WatchPaths()
	if len(paths) == 0 {
		m.logger.Info("nothing to watch, using built-in config and level")
		return nil
	}
	w, err := config.NewWatcher(paths...)
	if err != nil {
		m.logger.Warn("cannot watch files", "err", err)
		return nil
	}
	m.logger.Info("watching for changes", "paths", paths)
	return w
}

// reset restarts the game and all per-run counters.
func (m *Model) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.clock.Reset()
	m.keys.Release()
	m.ticks = 0
	m.scoreSaved = false
	if r, ok := m.game.(registry.Reloadable); ok && r.LoadErr() != nil {
		m.logger.Warn("using defaults", "err", r.LoadErr())
	}
}

// Init starts the frame loop and, if enabled, the file watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case ReloadMsg:
		return m.handleReload(msg)

	case watchErrMsg:
		m.logger.Warn("watch error", "err", msg.err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.stop()
		return m, tea.Quit
	}

	for _, a := range actions {
		switch a {
		case core.ActionRestart:
			if m.gameState.GameOver {
				if !m.fixedSeed {
					m.config.Seed = time.Now().UnixNano()
				}
				m.reset()
			}
		case core.ActionBack:
			if m.gameState.GameOver || m.gameState.Paused {
				m.backToMenu = true
				m.stop()
				return m, tea.Quit
			}
		default:
			m.keys.Press(a, now)
		}
	}
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; only the view changes size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs the ticks the clock releases for this frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.clock.Advance(now)
	if steps > 0 {
		in := m.keys.Frame(now)
		for i := 0; i < steps && !m.gameState.GameOver; i++ {
			m.gameState = m.game.Step(in).State
			m.ticks++
		}
	}

	if d := m.clock.Dropped(); d > m.lastDropped {
		m.logger.Debug("clock dropped ticks", "dropped", d-m.lastDropped, "total", d)
		m.lastDropped = d
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	return m, frameCmd(m.config.TickRate)
}

// handleReload rebuilds the game from the changed files.
func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	m.logger.Info("file changed, reloading", "path", msg.Path)
	m.reset()
	return m, waitForReload(m.watcher)
}

// recordRun stores the finished run. Failures are logged, the game continues.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("run finished", "score", st.Score, "won", st.Won, "ticks", m.ticks)
	if m.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}

	run := storage.Run{
		GameID:       m.game.ID(),
		Score:        st.Score,
		Won:          st.Won,
		Ticks:        m.ticks,
		DroppedTicks: m.clock.Dropped(),
		Seed:         m.config.Seed,
	}
	if l, ok := m.game.(registry.Leveled); ok {
		run.LevelID = l.LevelID()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// stop releases the watcher.
func (m *Model) stop() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticks returns the number of ticks simulated since the last reset.
func (m Model) Ticks() int {
	return m.ticks
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the game with Back.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	model.stop()
	return err
}
