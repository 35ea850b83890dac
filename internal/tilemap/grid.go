// Package tilemap provides the immutable tile occupancy grid, the conversion
// between world and grid coordinates, and level file loading.
//
// World space has Y growing upward with the grid's top-left corner at the
// origin; grid rows grow downward. A cell (row, col) covers
// x in [col*size, (col+1)*size) and y in (-(row+1)*size, -row*size].
package tilemap

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
)

// Tile is a tile index. Zero is empty, anything else is solid.
type Tile int

// Empty is the tile index of an unoccupied cell.
const Empty Tile = 0

// OutOfBoundsError reports a grid lookup outside [0,width) x [0,height).
type OutOfBoundsError struct {
	Row, Col      int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tilemap: cell (%d, %d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
}

// Grid is a fixed-size sparse occupancy grid. Only solid cells are stored.
type Grid struct {
	width    int
	height   int
	tileSize float64
	solid    *intmap.Map[int, Tile]
}

// NewGrid builds a grid from rows of tile indices. Every row must have the
// same length. The grid cannot be modified afterwards.
func NewGrid(rows [][]Tile, tileSize float64) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %v", ErrBadFormat, tileSize)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrBadFormat)
	}

	g := &Grid{
		width:    len(rows[0]),
		height:   len(rows),
		tileSize: tileSize,
		solid:    intmap.New[int, Tile](64),
	}
	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrBadFormat, r, len(row), g.width)
		}
		for c, t := range row {
			if t < 0 {
				return nil, fmt.Errorf("%w: negative tile %d at (%d, %d)", ErrBadFormat, t, r, c)
			}
			if t != Empty {
				g.solid.Put(g.key(r, c), t)
			}
		}
	}
	return g, nil
}

func (g *Grid) key(row, col int) int {
	return row*g.width + col
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TileSize returns the world size of one cell.
func (g *Grid) TileSize() float64 { return g.tileSize }

// SolidCount returns the number of occupied cells.
func (g *Grid) SolidCount() int { return g.solid.Len() }

// InBounds reports whether (row, col) is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the tile at (row, col). ok is false when the cell is outside
// the grid; storage is never consulted in that case.
func (g *Grid) At(row, col int) (t Tile, ok bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	t, _ = g.solid.Get(g.key(row, col))
	return t, true
}

// MustAt returns the tile at (row, col) and panics with *OutOfBoundsError
// when the cell is outside the grid.
func (g *Grid) MustAt(row, col int) Tile {
	t, ok := g.At(row, col)
	if !ok {
		panic(g.outOfBounds(row, col))
	}
	return t
}

// Solid reports whether (row, col) is inside the grid and occupied.
func (g *Grid) Solid(row, col int) bool {
	t, ok := g.At(row, col)
	return ok && t != Empty
}

// Clamp restricts (row, col) to the nearest valid cell.
func (g *Grid) Clamp(row, col int) (int, int) {
	return clampInt(row, 0, g.height-1), clampInt(col, 0, g.width-1)
}

func (g *Grid) outOfBounds(row, col int) *OutOfBoundsError {
	return &OutOfBoundsError{Row: row, Col: col, Width: g.width, Height: g.height}
}

// Cell converts a world point to the grid cell containing it.
func (g *Grid) Cell(x, y float64) (row, col int) {
	return WorldToGrid(x, y, g.tileSize)
}

// CellCenter returns the world position of the center of (row, col).
func (g *Grid) CellCenter(row, col int) (x, y float64) {
	return GridToWorld(row, col, g.tileSize)
}

// CellBounds returns the world-space bounds of (row, col).
func (g *Grid) CellBounds(row, col int) cp.BB {
	s := g.tileSize
	left := float64(col) * s
	top := -float64(row) * s
	return cp.BB{L: left, B: top - s, R: left + s, T: top}
}

// WorldBounds returns the world-space bounds of the whole grid.
func (g *Grid) WorldBounds() cp.BB {
	return cp.BB{
		L: 0,
		B: -float64(g.height) * g.tileSize,
		R: float64(g.width) * g.tileSize,
		T: 0,
	}
}

// EachSolid calls fn for every occupied cell in row-major order until fn
// returns false.
func (g *Grid) EachSolid(fn func(row, col int, t Tile) bool) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if t, ok := g.solid.Get(g.key(r, c)); ok {
				if !fn(r, c, t) {
					return
				}
			}
		}
	}
}

// WorldToGrid converts a world point to grid indices:
// col = floor(x / size), row = floor(-y / size).
// A point on a cell edge that float64 cannot represent exactly, such as
// x=0.3 with size 0.1, may floor into the previous cell.
func WorldToGrid(x, y, tileSize float64) (row, col int) {
	col = int(math.Floor(x / tileSize))
	row = int(math.Floor(-y / tileSize))
	return row, col
}

// GridToWorld returns the world-space center of cell (row, col).
func GridToWorld(row, col int, tileSize float64) (x, y float64) {
	x = (float64(col) + 0.5) * tileSize
	y = -(float64(row) + 0.5) * tileSize
	return x, y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
