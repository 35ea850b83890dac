package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last key event. Terminals report presses and auto-repeats but never
// releases, so holding is inferred from the repeat stream.
const DefaultHoldWindow = 200 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions and builds
// the per-tick input snapshot.
//
// Movement actions (Left, Right, Jump, Fire) stay held until the hold
// window expires. Control actions (Pause, Restart, Back, Confirm) are
// delivered in exactly one snapshot.
type KeyMapper struct {
	Hold time.Duration

	lastSeen map[core.Action]time.Time
	pending  map[core.Action]bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Hold:     DefaultHoldWindow,
		lastSeen: make(map[core.Action]time.Time),
		pending:  make(map[core.Action]bool),
	}
}

// MapKey translates a key message to actions.
// Returns the actions (possibly none) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	case "a", "left", "h":
		return []core.Action{core.ActionLeft}, false
	case "d", "right", "l":
		return []core.Action{core.ActionRight}, false
	case " ": // jumps in the platformer, fires in invaders
		return []core.Action{core.ActionJump, core.ActionFire}, false
	case "w", "up", "k":
		return []core.Action{core.ActionJump}, false
	case "f":
		return []core.Action{core.ActionFire}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}
	return nil, false
}

// HandleKey records a key event seen at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg, now time.Time) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		km.Press(a, now)
	}
	return isQuit
}

// Press records action a at now.
func (km *KeyMapper) Press(a core.Action, now time.Time) {
	if isHeldAction(a) {
		km.lastSeen[a] = now
		return
	}
	km.pending[a] = true
}

// Frame builds the input snapshot for ticks simulated at now. Pending
// control actions are consumed by this call.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, seen := range km.lastSeen {
		if now.Sub(seen) < km.Hold {
			frame.Set(a)
		} else {
			delete(km.lastSeen, a)
		}
	}
	for a := range km.pending {
		frame.Set(a)
		delete(km.pending, a)
	}
	return frame
}

// Release drops every held and pending action.
func (km *KeyMapper) Release() {
	clear(km.lastSeen)
	clear(km.pending)
}

func isHeldAction(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionFire:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
