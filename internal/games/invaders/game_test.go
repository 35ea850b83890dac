package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	cfg := core.DefaultConfig()
	cfg.Seed = 12345

	// Sweep left and right while firing
	inputSequence := make([]core.InputFrame, 900)
	for i := range inputSequence {
		inputSequence[i] = core.FrameOf(core.ActionFire)
		if (i/90)%2 == 0 {
			inputSequence[i].Set(core.ActionLeft)
		} else {
			inputSequence[i].Set(core.ActionRight)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	for _, in := range inputSequence {
		g1.Step(in)
		g2.Step(in)
	}

	if g1.State() != g2.State() {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", g1.State(), g2.State())
	}
	if g1.World().Ticks != g2.World().Ticks {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.World().Ticks, g2.World().Ticks)
	}
	for i := range g1.World().Enemies {
		if g1.World().Enemies[i] != g2.World().Enemies[i] {
			t.Fatalf("Determinism failed: enemy %d differs", i)
		}
	}
	if g1.State().Score == 0 {
		t.Error("Expected some kills while sweeping and firing")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	for i := 0; i < 60; i++ {
		g.Step(core.FrameOf(core.ActionFire))
	}

	g.Reset(core.DefaultConfig())
	state := g.State()
	if state.Score != 0 || state.GameOver || state.Lives != 3 {
		t.Errorf("Expected fresh state after reset, got %+v", state)
	}
	if g.World().Bullets.Live() != 0 {
		t.Error("Expected no bullets after reset")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected game to be paused")
	}
	x := g.World().Enemies[0].Box.X
	g.Step(core.NewInputFrame())
	if g.World().Enemies[0].Box.X != x {
		t.Error("Formation moved while paused")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if strings.Count(out, EnemySprite0) != 5 || strings.Count(out, EnemySprite1) != 5 {
		t.Errorf("Expected 5 enemies per row, got:\n%s", out)
	}
	// HUD row, then the field: ship on field row 20, ground on row 21
	if !strings.Contains(screen.Row(21), PlayerSprite) {
		t.Errorf("Player not rendered above the ground, row 21 = %q", screen.Row(21))
	}
	if !strings.Contains(screen.Row(22), string(GroundChar)) {
		t.Errorf("Ground missing, row 22 = %q", screen.Row(22))
	}
	if !strings.Contains(screen.Row(3), EnemySprite0) {
		t.Errorf("Front row of the formation should start at field row 2, got %q", screen.Row(3))
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("invaders") {
		t.Fatal("invaders not registered")
	}
}
