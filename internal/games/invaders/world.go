package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/collision"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Field coordinates: X grows right, Y grows down, one unit per screen cell.

const bulletW, bulletH = 0.5, 1.0

// top and bottom are a box's edges in field space. core.Box names its
// edges for a Y-up world, so they are not used here.
func top(b core.Box) float64 { return b.Y - b.H/2 }
func bottom(b core.Box) float64 { return b.Y + b.H/2 }

// EnemyState is the lifecycle of one invader.
type EnemyState uint8

const (
	Alive EnemyState = iota
	Destroyed
)

// Enemy is one member of the formation.
type Enemy struct {
	Box   core.Box
	Row   int
	State EnemyState
}

// Event flags what happened during one tick.
type Event uint8

const (
	EventFire Event = 1 << iota
	EventKill
	EventHit
	EventDrop
)

// Has reports whether e includes flag.
func (e Event) Has(flag Event) bool { return e&flag != 0 }

// World is the complete Invaders simulation state.
type World struct {
	Cfg        config.InvadersConfig
	Player     core.Box
	Enemies    []Enemy
	Bullets    *BulletRing // player fire
	EnemyShots *BulletRing

	Score    int
	Lives    int
	Ticks    int
	Won      bool
	GameOver bool

	dir        float64 // formation march direction, +1 right
	cooldown   float64
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewWorld lays out the formation and the player ship.
func NewWorld(cfg config.InvadersConfig, seed int64) *World {
	w := &World{
		Cfg:        cfg,
		Bullets:    NewBulletRing(cfg.Bullets.Capacity),
		EnemyShots: NewBulletRing(cfg.Bullets.Capacity),
		Lives:      max(cfg.Gameplay.Lives, 1),
		dir:        1,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}

	f := cfg.Formation
	span := float64(f.Cols-1)*f.SpacingX + f.EnemyWidth
	left := (cfg.Field.Width - span) / 2
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			w.Enemies = append(w.Enemies, Enemy{
				Box: core.NewBox(
					left+float64(c)*f.SpacingX+f.EnemyWidth/2,
					f.Top+float64(r)*f.SpacingY+f.EnemyHeight/2,
					f.EnemyWidth, f.EnemyHeight,
				),
				Row: r,
			})
		}
	}

	p := cfg.Player
	w.Player = core.NewBox(cfg.Field.Width/2, cfg.Field.Height-1-p.Height/2, p.Width, p.Height)
	return w
}

// AliveCount returns the number of enemies still alive.
func (w *World) AliveCount() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].State == Alive {
			n++
		}
	}
	return n
}

// MarchSpeed returns the current formation speed after difficulty scaling.
func (w *World) MarchSpeed() float64 {
	return w.difficulty.Speed(w.Cfg.Formation.MarchSpeed, w.Score, w.Ticks)
}

// Tick advances the world by one fixed step of dt seconds.
func Tick(w *World, in core.InputFrame, dt float64) Event {
	if w.GameOver || w.Won {
		return 0
	}
	w.Ticks++

	var ev Event
	ev |= w.movePlayer(in, dt)
	moveBullets(w.Bullets, w.Cfg.Field.Height, dt)
	moveBullets(w.EnemyShots, w.Cfg.Field.Height, dt)
	ev |= w.march(dt)
	ev |= w.enemyFire(dt)
	ev |= w.collide()

	if w.AliveCount() == 0 {
		w.Won = true
	} else if w.formationLanded() {
		w.GameOver = true
	}
	return ev
}

func (w *World) movePlayer(in core.InputFrame, dt float64) Event {
	p := w.Cfg.Player
	vx := 0.0
	if in.Has(core.ActionLeft) {
		vx -= p.Speed
	}
	if in.Has(core.ActionRight) {
		vx += p.Speed
	}
	w.Player.X = core.ClampF(w.Player.X+vx*dt, p.Width/2, w.Cfg.Field.Width-p.Width/2)

	if w.cooldown > 0 {
		w.cooldown -= dt
	}
	if !in.Has(core.ActionFire) || w.cooldown > 0 {
		return 0
	}
	w.cooldown = w.Cfg.Bullets.Cooldown
	w.Bullets.Fire(Bullet{
		Box:  core.NewBox(w.Player.X, top(w.Player)-bulletH/2, bulletW, bulletH),
		VelY: -w.Cfg.Bullets.Speed,
	})
	return EventFire
}

func moveBullets(r *BulletRing, fieldH, dt float64) {
	r.Each(func(b *Bullet) {
		b.Box.Y += b.VelY * dt
		if bottom(b.Box) < 0 || top(b.Box) > fieldH {
			b.Live = false
		}
	})
}

// march moves the formation sideways and steps it down when any live
// enemy reaches a field edge.
func (w *World) march(dt float64) Event {
	dx := w.dir * w.MarchSpeed() * dt
	minL, maxR := w.Cfg.Field.Width, 0.0
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.Box.X += dx
		if e.State == Alive {
			minL = min(minL, e.Box.Left())
			maxR = max(maxR, e.Box.Right())
		}
	}

	var over float64
	switch {
	case w.dir > 0 && maxR > w.Cfg.Field.Width:
		over = w.Cfg.Field.Width - maxR
	case w.dir < 0 && minL < 0:
		over = -minL
	default:
		return 0
	}
	for i := range w.Enemies {
		w.Enemies[i].Box.X += over
		w.Enemies[i].Box.Y += w.Cfg.Formation.DropY
	}
	w.dir = -w.dir
	return EventDrop
}

func (w *World) enemyFire(dt float64) Event {
	rate := w.difficulty.Rate(w.Cfg.Bullets.EnemyFireRate, w.Score, w.Ticks)
	if w.rng.Float64() >= rate*dt {
		return 0
	}
	alive := make([]int, 0, len(w.Enemies))
	for i := range w.Enemies {
		if w.Enemies[i].State == Alive {
			alive = append(alive, i)
		}
	}
	if len(alive) == 0 {
		return 0
	}
	e := w.Enemies[alive[w.rng.Intn(len(alive))]]
	w.EnemyShots.Fire(Bullet{
		Box:  core.NewBox(e.Box.X, bottom(e.Box)+bulletH/2, bulletW, bulletH),
		VelY: w.Cfg.Bullets.EnemySpeed,
	})
	return 0
}

// collide checks every live bullet against every live enemy, and every
// enemy shot against the player.
func (w *World) collide() Event {
	var ev Event
	w.Bullets.Each(func(b *Bullet) {
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if e.State != Alive || !collision.Overlaps(b.Box, e.Box) {
				continue
			}
			e.State = Destroyed
			b.Live = false
			w.Score += w.Cfg.Gameplay.EnemyPoints
			ev |= EventKill
			return
		}
	})

	w.EnemyShots.Each(func(b *Bullet) {
		if w.GameOver || !collision.Overlaps(b.Box, w.Player) {
			return
		}
		b.Live = false
		w.Lives--
		ev |= EventHit
		if w.Lives <= 0 {
			w.GameOver = true
		}
	})
	if ev.Has(EventHit) {
		// A hit gives the player a clean field to recover on.
		w.EnemyShots.Clear()
	}
	return ev
}

// formationLanded reports whether a live enemy reached the player's row.
func (w *World) formationLanded() bool {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.State == Alive && bottom(e.Box) > top(w.Player) {
			return true
		}
	}
	return false
}
