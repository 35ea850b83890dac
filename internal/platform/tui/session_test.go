package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), log.New(io.Discard))
	if m.on != stageMenu {
		t.Fatal("Session should start at the menu")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.on != stageScores {
		t.Fatal("Tab should open the scoreboard")
	}
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.on != stageMenu || m.quitting {
		t.Fatal("Esc on the scoreboard should return to the menu")
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.on != stageGame {
		t.Fatal("Enter should start the highlighted game")
	}
	if m.game.game.ID() != m.menu.items[0].GameID {
		t.Errorf("Started %q, want %q", m.game.game.ID(), m.menu.items[0].GameID)
	}

	// Back is ignored while the game is running
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.on != stageGame {
		t.Fatal("Back during play should not leave the game")
	}

	t0 := time.Now()
	m = sessionSend(t, m, runeKey("p"))
	m = sessionSend(t, m, FrameMsg(t0))
	m = sessionSend(t, m, FrameMsg(t0.Add(20*time.Millisecond)))
	if !m.game.State().Paused {
		t.Fatal("p should pause the game")
	}
	m = sessionSend(t, m, runeKey("b"))
	if m.on != stageMenu || m.quitting {
		t.Fatal("Back while paused should return to the menu")
	}

	next, cmd := m.Update(runeKey("q"))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil || m.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionIgnoresStaleFrames(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)
	before := m.menu.View()
	m = sessionSend(t, m, FrameMsg{})
	if m.on != stageMenu || m.menu.View() != before {
		t.Error("Frame messages should not disturb the menu")
	}
}
