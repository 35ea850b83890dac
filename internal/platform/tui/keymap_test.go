package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   []core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}, false},
		{"a", runeKey("a"), []core.Action{core.ActionLeft}, false},
		{"d", runeKey("d"), []core.Action{core.ActionRight}, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump, core.ActionFire}, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump}, false},
		{"f", runeKey("f"), []core.Action{core.ActionFire}, false},
		{"p", runeKey("p"), []core.Action{core.ActionPause}, false},
		{"r", runeKey("r"), []core.Action{core.ActionRestart}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack}, false},
		{"q", runeKey("q"), []core.Action{core.ActionQuit}, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}, true},
		{"unbound", runeKey("z"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.msg.String(), isQuit, tt.isQuit)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MapKey(%q)[%d] = %v, want %v", tt.msg.String(), i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHeldActionExpires(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, t0)

	if f := km.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("Right should be held inside the hold window")
	}
	if f := km.Frame(t0.Add(150 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("Reading a frame must not consume a held action")
	}
	if f := km.Frame(t0.Add(DefaultHoldWindow)); f.Has(core.ActionRight) {
		t.Error("Right should be released once the hold window passes")
	}
}

func TestAutoRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	// key repeat every 50ms for half a second
	for i := 0; i <= 10; i++ {
		km.HandleKey(runeKey("a"), t0.Add(time.Duration(i)*50*time.Millisecond))
	}

	if f := km.Frame(t0.Add(600 * time.Millisecond)); !f.Has(core.ActionLeft) {
		t.Error("Left should still be held 100ms after the last repeat")
	}
	if f := km.Frame(t0.Add(800 * time.Millisecond)); f.Has(core.ActionLeft) {
		t.Error("Left should be released after repeats stop")
	}
}

func TestControlActionsDeliveredOnce(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.HandleKey(runeKey("p"), t0)

	if f := km.Frame(t0); !f.Has(core.ActionPause) {
		t.Fatal("Pause should be in the next frame")
	}
	if f := km.Frame(t0); f.Has(core.ActionPause) {
		t.Error("Pause should be delivered only once")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper()
	t0 := time.Unix(1000, 0)

	km.HandleKey(runeKey("d"), t0)
	km.HandleKey(runeKey("p"), t0)
	km.Release()

	f := km.Frame(t0)
	if f.Has(core.ActionRight) || f.Has(core.ActionPause) {
		t.Errorf("Expected empty frame after Release, got %v", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey("l"), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
