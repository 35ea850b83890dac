// Package collision resolves an actor's axis-aligned box against a tile grid
// and tests pickups for overlap.
//
// Each edge of the box is probed at its own candidate cell: the bottom and
// top midpoints for the vertical axis, the left and right midpoints for the
// horizontal axis. Vertical contacts are resolved before horizontal ones.
// Corner overlaps that touch two directions at once are not deconflicted;
// the resolver is a simple penetration push-out, not a general solver.
package collision

import (
	"github.com/vovakirdan/tile-arcade/internal/physics"
	"github.com/vovakirdan/tile-arcade/internal/tilemap"
)

// DefaultEpsilon is the extra push applied past the tile boundary so the
// next tick does not re-detect the same contact on float equality.
const DefaultEpsilon = 0.005

// Direction identifies the box edge that touched a solid tile.
type Direction uint8

const (
	Bottom Direction = 1 << iota
	Top
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Contact is the set of edges resolved in one call.
type Contact struct {
	Dirs Direction

	// Row and Col of the last resolved tile.
	Row, Col int
}

// Has reports whether the edge d was resolved.
func (c Contact) Has(d Direction) bool { return c.Dirs&d != 0 }

// Grounded reports whether the actor was pushed up onto a tile.
func (c Contact) Grounded() bool { return c.Has(Bottom) }

// Any reports whether anything was resolved.
func (c Contact) Any() bool { return c.Dirs != 0 }

// Resolver pushes an actor out of solid tiles.
type Resolver struct {
	Epsilon float64

	// SingleDirection stops after the first resolved edge. Otherwise at
	// most one vertical and one horizontal edge are resolved per call.
	SingleDirection bool

	// Strict panics with *tilemap.OutOfBoundsError when a probe lands
	// outside the grid. Otherwise out-of-grid cells count as empty.
	Strict bool
}

// NewResolver returns a resolver with the default epsilon.
func NewResolver() *Resolver {
	return &Resolver{Epsilon: DefaultEpsilon}
}

// Resolve corrects b, a box of size w x h centered on b.Pos, against g.
func Resolve(b *physics.Body, w, h float64, g *tilemap.Grid) Contact {
	return NewResolver().Resolve(b, w, h, g)
}

// Resolve corrects b, a box of size w x h centered on b.Pos, against g.
// Position and velocity are only modified on the axis of a resolved edge.
func (r *Resolver) Resolve(b *physics.Body, w, h float64, g *tilemap.Grid) Contact {
	var c Contact
	ts := g.TileSize()
	eps := r.Epsilon

	// vertical
	bottomY := b.Pos.Y - h/2
	if row, col, hit := r.probe(g, b.Pos.X, bottomY); hit {
		pen := (-ts * float64(row)) - bottomY
		b.Pos.Y += pen + eps
		b.Vel.Y = 0
		c.Dirs |= Bottom
		c.Row, c.Col = row, col
	} else {
		topY := b.Pos.Y + h/2
		if row, col, hit := r.probe(g, b.Pos.X, topY); hit {
			pen := topY - (-ts * float64(row+1))
			b.Pos.Y -= pen + eps
			if b.Vel.Y > 0 {
				b.Vel.Y = 0
			}
			c.Dirs |= Top
			c.Row, c.Col = row, col
		}
	}
	if r.SingleDirection && c.Any() {
		return c
	}

	// horizontal
	leftX := b.Pos.X - w/2
	if row, col, hit := r.probe(g, leftX, b.Pos.Y); hit {
		pen := (ts*float64(col) + ts) - leftX
		b.Pos.X += pen + eps
		b.Vel.X = 0
		c.Dirs |= Left
		c.Row, c.Col = row, col
		return c
	}
	rightX := b.Pos.X + w/2
	if row, col, hit := r.probe(g, rightX, b.Pos.Y); hit {
		pen := rightX - ts*float64(col)
		b.Pos.X -= pen + eps
		b.Vel.X = 0
		c.Dirs |= Right
		c.Row, c.Col = row, col
	}
	return c
}

// probe converts one edge point to its own cell and reports whether that
// cell is solid.
func (r *Resolver) probe(g *tilemap.Grid, x, y float64) (row, col int, hit bool) {
	row, col = g.Cell(x, y)
	if r.Strict {
		return row, col, g.MustAt(row, col) != tilemap.Empty
	}
	return row, col, g.Solid(row, col)
}
