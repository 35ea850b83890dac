package invaders

import "github.com/vovakirdan/tile-arcade/internal/core"

// Bullet is one projectile slot.
type Bullet struct {
	Box  core.Box
	VelY float64 // cells per second, positive is down
	Live bool
}

// BulletRing is a fixed pool of bullets. Firing always takes the next slot
// in order, overwriting it even if that bullet is still in flight.
type BulletRing struct {
	slots []Bullet
	next  int
}

// NewBulletRing creates a ring with n slots (at least one).
func NewBulletRing(n int) *BulletRing {
	return &BulletRing{slots: make([]Bullet, max(n, 1))}
}

// Fire places b in the next slot and returns that slot's index.
func (r *BulletRing) Fire(b Bullet) int {
	i := r.next
	b.Live = true
	r.slots[i] = b
	r.next = (r.next + 1) % len(r.slots)
	return i
}

// Cap returns the number of slots.
func (r *BulletRing) Cap() int { return len(r.slots) }

// Live returns the number of bullets in flight.
func (r *BulletRing) Live() int {
	n := 0
	for i := range r.slots {
		if r.slots[i].Live {
			n++
		}
	}
	return n
}

// Slot returns a pointer to slot i.
func (r *BulletRing) Slot(i int) *Bullet { return &r.slots[i] }

// Each calls fn for every live bullet.
func (r *BulletRing) Each(fn func(b *Bullet)) {
	for i := range r.slots {
		if r.slots[i].Live {
			fn(&r.slots[i])
		}
	}
}

// Clear kills every bullet and rewinds the ring.
func (r *BulletRing) Clear() {
	for i := range r.slots {
		r.slots[i] = Bullet{}
	}
	r.next = 0
}
