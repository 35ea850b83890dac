package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestDampShrinksTowardZero(t *testing.T) {
	const dt = 1.0 / 60

	tests := []struct {
		name     string
		v        float64
		friction float64
	}{
		{"positive slow", 3.0, 0.7},
		{"negative", -5.0, 0.7},
		{"strong friction", 10.0, 40.0},
		{"friction beyond one step", -2.0, 500.0},
		{"tiny velocity", 1e-9, 0.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.v
			for i := 0; i < 2000; i++ {
				next := Damp(v, dt, tc.friction)
				assert.LessOrEqual(t, math.Abs(next), math.Abs(v), "tick %d grew |v|", i)
				assert.False(t, next != 0 && math.Signbit(next) != math.Signbit(tc.v), "tick %d crossed zero: %v", i, next)
				v = next
			}
		})
	}
}

func TestDampWithoutFriction(t *testing.T) {
	assert.Equal(t, 4.0, Damp(4.0, 1.0/60, 0))
}

func TestIntegrateOrder(t *testing.T) {
	const dt = 0.5
	b := Body{
		Vel:      cp.Vector{X: 2, Y: 4},
		Acc:      cp.Vector{X: 0, Y: -10},
		Friction: cp.Vector{X: 1, Y: 1},
	}

	Integrate(&b, dt)

	// Damp first: v = 4 * (1 - 0.5) = 2; then add -10*0.5 = -5 => -3.
	assert.InDelta(t, -3.0, b.Vel.Y, 1e-12)
	assert.InDelta(t, 1.0, b.Vel.X, 1e-12)
	// Position moves by the post-acceleration velocity.
	assert.InDelta(t, -1.5, b.Pos.Y, 1e-12)
	assert.InDelta(t, 0.5, b.Pos.X, 1e-12)
}

func TestIntegrateGravityNotDampedSameTick(t *testing.T) {
	const dt = 1.0 / 60
	b := Body{Acc: cp.Vector{Y: -20}, Friction: cp.Vector{Y: 0.7}}

	Integrate(&b, dt)

	assert.InDelta(t, -20*dt, b.Vel.Y, 1e-12, "gravity added this tick is undamped")
}

func TestIntegrateMaxFall(t *testing.T) {
	b := Body{Vel: cp.Vector{Y: -5}, Acc: cp.Vector{Y: -100}, MaxFall: 5.5}

	Integrate(&b, 1.0/60)

	assert.Equal(t, -5.5, b.Vel.Y)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}
