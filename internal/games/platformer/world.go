package platformer

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tile-arcade/internal/collision"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/physics"
	"github.com/vovakirdan/tile-arcade/internal/tilemap"
)

// DefaultSpawn is used when a level has no player entity.
var DefaultSpawn = cp.Vector{X: 0.5, Y: -1.5}

// jumpBuffer is how long a jump press waits for the actor to touch ground.
const jumpBuffer = 0.1

// Event flags what happened during one tick.
type Event uint8

const (
	EventJump Event = 1 << iota
	EventLand
	EventKey
	EventFall
)

// Has reports whether e includes flag.
func (e Event) Has(flag Event) bool { return e&flag != 0 }

// Actor is the player: a body plus its box size and contact state.
type Actor struct {
	Body     physics.Body
	W, H     float64
	Grounded bool
	Contact  collision.Contact
}

// Box returns the actor's bounding box.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.Body.Pos.X, a.Body.Pos.Y, a.W, a.H)
}

// World is the complete platformer simulation state. It has no rendering
// or timing dependencies and is advanced one fixed tick at a time by Tick.
type World struct {
	Level    tilemap.Level
	Grid     *tilemap.Grid
	Actor    Actor
	Key      *collision.Pickup // nil when the level has no key
	Spawn    cp.Vector
	Resolver *collision.Resolver
	Physics  config.PlatformerPhysics

	Lives     int
	Score     int
	KeyPoints int
	Ticks     int
	Won       bool
	GameOver  bool

	jump       core.Edge
	jumpBuffer float64 // seconds left on a pending press
}

// NewWorld places the actor and key from the level's entities.
func NewWorld(lvl tilemap.Level, cfg config.PlatformerConfig, strict bool) (*World, error) {
	if lvl.Grid == nil {
		return nil, fmt.Errorf("platformer: level %q has no grid", lvl.ID)
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		return nil, fmt.Errorf("platformer: player size must be positive, got %vx%v", cfg.Player.Width, cfg.Player.Height)
	}

	w := &World{
		Level: lvl,
		Grid:  lvl.Grid,
		Actor: Actor{W: cfg.Player.Width, H: cfg.Player.Height},
		Spawn: DefaultSpawn,
		Resolver: &collision.Resolver{
			Epsilon:         cfg.Collision.Epsilon,
			SingleDirection: cfg.Collision.SingleDirection,
			Strict:          strict,
		},
		Physics:   cfg.Physics,
		Lives:     max(cfg.Gameplay.Lives, 1),
		KeyPoints: cfg.Gameplay.KeyPoints,
	}
	if w.Resolver.Epsilon <= 0 {
		w.Resolver.Epsilon = collision.DefaultEpsilon
	}

	if e, ok := lvl.Entity(tilemap.EntityPlayer); ok {
		x, y := lvl.EntityCenter(e)
		w.Spawn = cp.Vector{X: x, Y: y}
	}
	if e, ok := lvl.Entity(tilemap.EntityKey); ok {
		x, y := lvl.EntityCenter(e)
		ts := w.Grid.TileSize()
		w.Key = collision.NewPickup(tilemap.EntityKey, core.NewBox(x, y, float64(e.W)*ts, float64(e.H)*ts))
	}

	w.respawn()
	return w, nil
}

func (w *World) respawn() {
	a := &w.Actor
	a.Body = physics.Body{
		Pos:      w.Spawn,
		Friction: cp.Vector{X: w.Physics.FrictionX, Y: w.Physics.FrictionY},
		MaxFall:  w.Physics.MaxFall,
	}
	a.Grounded = false
	a.Contact = collision.Contact{}
	w.jumpBuffer = 0
}

// Tick advances the world by one fixed step of dt seconds:
// input -> acceleration -> jump -> integrate -> bounds -> resolve -> pickup.
func Tick(w *World, in core.InputFrame, dt float64) Event {
	if w.GameOver || w.Won {
		return 0
	}
	w.Ticks++

	var ev Event
	a := &w.Actor
	p := w.Physics

	ax := 0.0
	if in.Has(core.ActionLeft) {
		ax -= p.MoveAccel
	}
	if in.Has(core.ActionRight) {
		ax += p.MoveAccel
	}
	ay := p.Gravity
	if in.Has(core.ActionJump) && a.Body.Vel.Y > 0 {
		ay += p.JumpHold
	}
	if w.jump.Pressed(in, core.ActionJump) {
		w.jumpBuffer = jumpBuffer
	}
	if w.jumpBuffer > 0 && a.Grounded {
		a.Body.Vel.Y = p.JumpImpulse
		a.Grounded = false
		w.jumpBuffer = 0
		ev |= EventJump
	}
	w.jumpBuffer = max(w.jumpBuffer-dt, 0)
	a.Body.Acc = cp.Vector{X: ax, Y: ay}

	physics.Integrate(&a.Body, dt)

	if w.fellOut() {
		w.Lives--
		ev |= EventFall
		if w.Lives <= 0 {
			w.GameOver = true
			return ev
		}
		w.respawn()
		return ev
	}
	w.keepInside()

	wasGrounded := a.Grounded
	a.Contact = w.Resolver.Resolve(&a.Body, a.W, a.H, w.Grid)
	a.Grounded = a.Contact.Grounded() || w.standing()
	if a.Grounded && !wasGrounded {
		ev |= EventLand
	}

	if w.Key != nil && w.Key.TryCollect(a.Box()) {
		w.Score += w.KeyPoints
		w.Won = true
		ev |= EventKey
	}
	return ev
}

// standing reports whether the actor rests on a tile it was lifted above
// earlier. The resolver leaves an epsilon gap, and at high tick rates
// gravity takes several ticks to close it.
func (w *World) standing() bool {
	a := &w.Actor
	if a.Body.Vel.Y > 0 {
		return false
	}
	row, col := w.Grid.Cell(a.Body.Pos.X, a.Body.Pos.Y-a.H/2-2*w.Resolver.Epsilon)
	return w.Grid.Solid(row, col)
}

// fellOut reports whether the actor's bottom edge has left the grid.
func (w *World) fellOut() bool {
	a := &w.Actor
	row, _ := w.Grid.Cell(a.Body.Pos.X, a.Body.Pos.Y-a.H/2)
	return row >= w.Grid.Height()
}

// keepInside holds the actor between the grid's side edges and below its
// top edge, so every resolver probe lands on a grid cell.
func (w *World) keepInside() {
	a := &w.Actor
	bounds := w.Grid.WorldBounds()
	eps := w.Resolver.Epsilon

	if a.Body.Pos.X-a.W/2 < bounds.L {
		a.Body.Pos.X = bounds.L + a.W/2
		a.Body.Vel.X = 0
	}
	if _, col := w.Grid.Cell(a.Body.Pos.X+a.W/2, a.Body.Pos.Y); col >= w.Grid.Width() {
		a.Body.Pos.X = bounds.R - a.W/2 - eps
		a.Body.Vel.X = 0
	}
	if a.Body.Pos.Y+a.H/2 > bounds.T {
		a.Body.Pos.Y = bounds.T - a.H/2
		if a.Body.Vel.Y > 0 {
			a.Body.Vel.Y = 0
		}
	}
}
