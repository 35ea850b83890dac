package core

import (
	"testing"
	"time"
)

func TestInputFrameSetHas(t *testing.T) {
	f := FrameOf(ActionLeft, ActionJump)

	if !f.Has(ActionLeft) || !f.Has(ActionJump) {
		t.Fatal("FrameOf should mark all given actions held")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as held")
	}

	var lazy InputFrame
	lazy.Set(ActionFire)
	if !lazy.Has(ActionFire) {
		t.Error("Set on a zero frame should allocate and hold the action")
	}

	var zero InputFrame
	if zero.Has(ActionJump) {
		t.Error("zero frame should hold nothing")
	}
}

func TestEdgePressed(t *testing.T) {
	var e Edge
	held := FrameOf(ActionJump)
	idle := NewInputFrame()

	sequence := []struct {
		frame    InputFrame
		expected bool
	}{
		{held, true},  // press
		{held, false}, // still held
		{idle, false}, // released
		{held, true},  // pressed again
	}

	for i, step := range sequence {
		if got := e.Pressed(step.frame, ActionJump); got != step.expected {
			t.Errorf("tick %d: Pressed = %v, expected %v", i, got, step.expected)
		}
	}

	e.Reset()
	if !e.Pressed(held, ActionJump) {
		t.Error("after Reset a held action counts as a fresh press")
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionLeft; a <= ActionPause; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Dance"); ok {
		t.Error("unknown name should not parse")
	}
}

func TestRuntimeConfigStep(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("TickDuration = %v", cfg.TickDuration())
	}

	cfg.TickRate = 0
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60, got %v", cfg.TickDuration())
	}
}
