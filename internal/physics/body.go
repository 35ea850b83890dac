package physics

import "github.com/jakecoffman/cp"

// Body is the kinematic state of one actor in world units.
type Body struct {
	Pos cp.Vector
	Vel cp.Vector
	Acc cp.Vector

	// Friction is the per-axis damping coefficient. Zero disables damping.
	Friction cp.Vector

	// MaxFall limits downward speed when positive.
	MaxFall float64
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Damp moves v toward zero by the factor dt*friction. The factor is clamped
// to [0, 1] so a large step never overshoots past zero.
func Damp(v, dt, friction float64) float64 {
	t := dt * friction
	if t <= 0 {
		return v
	}
	if t > 1 {
		t = 1
	}
	return Lerp(v, 0, t)
}

// Integrate advances b by one fixed tick of dt seconds.
//
// Per axis: damp velocity, add acceleration, then move. Damping runs before
// acceleration, so the acceleration added this tick is not damped until the
// next one. Jump arcs depend on this order.
func Integrate(b *Body, dt float64) {
	b.Vel.X = Damp(b.Vel.X, dt, b.Friction.X)
	b.Vel.Y = Damp(b.Vel.Y, dt, b.Friction.Y)

	b.Vel = b.Vel.Add(b.Acc.Mult(dt))
	if b.MaxFall > 0 && b.Vel.Y < -b.MaxFall {
		b.Vel.Y = -b.MaxFall
	}

	b.Pos = b.Pos.Add(b.Vel.Mult(dt))
}
