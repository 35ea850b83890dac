package collision

import "github.com/vovakirdan/tile-arcade/internal/core"

// PickupState is the lifecycle of a pickup.
type PickupState uint8

const (
	Active PickupState = iota
	Collected
)

func (s PickupState) String() string {
	if s == Collected {
		return "collected"
	}
	return "active"
}

// Pickup is a static item collected on first overlap with the actor.
type Pickup struct {
	Kind  string
	Box   core.Box
	State PickupState
}

// NewPickup creates an active pickup.
func NewPickup(kind string, box core.Box) *Pickup {
	return &Pickup{Kind: kind, Box: box}
}

// Active reports whether the pickup can still be collected.
func (p *Pickup) Active() bool { return p.State == Active }

// TryCollect marks the pickup collected if it is active and overlaps actor.
// It reports whether the pickup was collected by this call.
func (p *Pickup) TryCollect(actor core.Box) bool {
	if p.State != Active || !Overlaps(actor, p.Box) {
		return false
	}
	p.State = Collected
	return true
}

// Reset makes the pickup active again.
func (p *Pickup) Reset() { p.State = Active }

// Overlaps is the strict AABB test: boxes that only touch do not overlap.
func Overlaps(a, b core.Box) bool {
	return a.Overlaps(b)
}
