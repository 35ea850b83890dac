package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// fakeGame counts calls and records every input frame it is stepped with.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.inputs = nil
	g.state = core.GameState{Lives: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(g, cfg, Options{Logger: log.New(io.Discard)})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

// stepOnce anchors the clock and runs one tick.
func stepOnce(t *testing.T, m Model) Model {
	t.Helper()
	t0 := time.Now()
	m = update(t, m, FrameMsg(t0))
	return update(t, m, FrameMsg(t0.Add(20*time.Millisecond)))
}

func TestModelFramesDriveClock(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	t0 := time.Now()

	m = update(t, m, FrameMsg(t0))
	if len(g.inputs) != 0 {
		t.Fatalf("First frame only anchors the clock, got %d steps", len(g.inputs))
	}

	m = update(t, m, FrameMsg(t0.Add(50*time.Millisecond)))
	if len(g.inputs) != 3 {
		t.Errorf("Expected 3 ticks for 50ms at 60Hz, got %d", len(g.inputs))
	}

	// A long stall is capped at MaxSteps
	m = update(t, m, FrameMsg(t0.Add(50*time.Millisecond+time.Second)))
	if len(g.inputs) != 3+6 {
		t.Errorf("Expected the stall to be capped at 6 ticks, got %d", len(g.inputs)-3)
	}
	if m.Ticks() != 9 {
		t.Errorf("Ticks() = %d, want 9", m.Ticks())
	}
}

func TestModelHeldKeyReachesEveryTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	t0 := time.Now()

	m = update(t, m, FrameMsg(t0))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, FrameMsg(t0.Add(40*time.Millisecond)))

	if len(g.inputs) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(g.inputs))
	}
	for i, in := range g.inputs {
		if !in.Has(core.ActionRight) {
			t.Errorf("Tick %d missing held Right", i)
		}
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey("r"))
	if g.resets != 1 {
		t.Errorf("Restart must be ignored while playing, resets = %d", g.resets)
	}

	g.state.GameOver = true
	m = stepOnce(t, m)
	m = update(t, m, runeKey("r"))
	if g.resets != 2 {
		t.Errorf("Expected restart after game over, resets = %d", g.resets)
	}
	if m.State().GameOver {
		t.Error("State should be fresh after restart")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("Back must be ignored while playing")
	}

	g.state.GameOver = true
	m = stepOnce(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Expected back to menu after game over")
	}
	if m.View() != "" {
		t.Error("View should be empty once leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() {
		t.Error("Expected quitting after q")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("Resize must not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
}
