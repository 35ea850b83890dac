package tilemap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridFromStrings(t *testing.T, size float64, lines ...string) *Grid {
	t.Helper()
	rows := make([][]Tile, len(lines))
	for r, line := range lines {
		rows[r] = make([]Tile, len(line))
		for c, ch := range line {
			if ch != '.' {
				rows[r][c] = 1
			}
		}
	}
	g, err := NewGrid(rows, size)
	require.NoError(t, err)
	return g
}

func TestWorldToGridIsLeftInverseOfGridToWorld(t *testing.T) {
	for _, size := range []float64{0.1, 0.25, 1, 16} {
		for row := 0; row < 30; row++ {
			for col := 0; col < 30; col++ {
				x, y := GridToWorld(row, col, size)
				r, c := WorldToGrid(x, y, size)
				if r != row || c != col {
					t.Fatalf("size %v: (%d,%d) -> (%v,%v) -> (%d,%d)", size, row, col, x, y, r, c)
				}
			}
		}
	}
}

func TestWorldToGridFloors(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		ts       float64
		row, col int
	}{
		{"origin", 0, 0, 0.1, 0, 0},
		{"inside first cell", 0.05, -0.05, 0.1, 0, 0},
		{"left edge belongs to cell", 0.375, -0.1875, 0.125, 1, 3},
		// 0.3/0.1 is 2.9999999999999996 in float64
		{"inexact decimal edge", 0.3, -0.15, 0.1, 1, 2},
		{"negative x", -0.05, -0.05, 0.1, 0, -1},
		{"above the grid", 0.05, 0.05, 0.1, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := WorldToGrid(tt.x, tt.y, tt.ts)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestNewGridValidates(t *testing.T) {
	_, err := NewGrid(nil, 0.1)
	assert.True(t, errors.Is(err, ErrBadFormat))

	_, err = NewGrid([][]Tile{{0, 1}, {0}}, 0.1)
	assert.True(t, errors.Is(err, ErrBadFormat))

	_, err = NewGrid([][]Tile{{0, 1}}, 0)
	assert.True(t, errors.Is(err, ErrBadFormat))

	_, err = NewGrid([][]Tile{{0, -1}}, 0.1)
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestGridLookups(t *testing.T) {
	g := gridFromStrings(t, 0.1,
		"....",
		"..#.",
		"####",
	)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.SolidCount())

	assert.True(t, g.Solid(1, 2))
	assert.False(t, g.Solid(1, 1))
	assert.True(t, g.Solid(2, 0))

	tile, ok := g.At(1, 2)
	assert.True(t, ok)
	assert.Equal(t, Tile(1), tile)

	tile, ok = g.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, Empty, tile)
}

func TestGridOutOfBounds(t *testing.T) {
	g := gridFromStrings(t, 0.1, "##", "##")

	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		tile, ok := g.At(cell[0], cell[1])
		assert.False(t, ok, "cell %v", cell)
		assert.Equal(t, Empty, tile)
		assert.False(t, g.Solid(cell[0], cell[1]))
	}
}

func TestGridMustAtPanics(t *testing.T) {
	g := gridFromStrings(t, 0.1, "#.")

	assert.Equal(t, Tile(1), g.MustAt(0, 0))

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		oob, ok := r.(*OutOfBoundsError)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, 3, oob.Row)
		assert.Equal(t, 0, oob.Col)
		assert.Contains(t, oob.Error(), "outside 2x1 grid")
	}()
	g.MustAt(3, 0)
}

func TestGridClamp(t *testing.T) {
	g := gridFromStrings(t, 0.1, "...", "...")

	row, col := g.Clamp(-4, 10)
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)

	row, col = g.Clamp(1, 1)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestGridBounds(t *testing.T) {
	g := gridFromStrings(t, 0.1, "....", "....", "..#.")

	bb := g.CellBounds(2, 3)
	assert.InDelta(t, 0.3, bb.L, 1e-9)
	assert.InDelta(t, 0.4, bb.R, 1e-9)
	assert.InDelta(t, -0.2, bb.T, 1e-9)
	assert.InDelta(t, -0.3, bb.B, 1e-9)

	world := g.WorldBounds()
	assert.InDelta(t, 0.4, world.R, 1e-9)
	assert.InDelta(t, -0.3, world.B, 1e-9)

	x, y := g.CellCenter(2, 3)
	assert.True(t, x > bb.L && x < bb.R)
	assert.True(t, y > bb.B && y < bb.T)
}

func TestGridEachSolid(t *testing.T) {
	g := gridFromStrings(t, 0.1, "#.#", ".#.")

	var cells [][2]int
	g.EachSolid(func(row, col int, _ Tile) bool {
		cells = append(cells, [2]int{row, col})
		return true
	})
	assert.Equal(t, [][2]int{{0, 0}, {0, 2}, {1, 1}}, cells)

	count := 0
	g.EachSolid(func(int, int, Tile) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
