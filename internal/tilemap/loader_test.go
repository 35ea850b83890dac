package tilemap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallFlare = `[header]
width=4
height=3
name=Small

[layer]
data=
0,0,0,0,
0,0,0,2,
1,1,1,1

[start]
type=player
location=0,1,1,1

[goal]
type=key
location=2,1
`

func TestParseFlare(t *testing.T) {
	lvl, err := ParseFlare([]byte(smallFlare))
	require.NoError(t, err)

	assert.Equal(t, "Small", lvl.Name)
	assert.Equal(t, 4, lvl.Grid.Width())
	assert.Equal(t, 3, lvl.Grid.Height())
	assert.Equal(t, 5, lvl.Grid.SolidCount())
	assert.InDelta(t, DefaultTileSize, lvl.Grid.TileSize(), 1e-12)

	tile, _ := lvl.Grid.At(1, 3)
	assert.Equal(t, Tile(2), tile)

	require.Len(t, lvl.Entities, 2)
	player, ok := lvl.Entity(EntityPlayer)
	require.True(t, ok)
	assert.Equal(t, Entity{Type: "player", Col: 0, Row: 1, W: 1, H: 1}, player)

	key, ok := lvl.Entity("KEY")
	require.True(t, ok)
	assert.Equal(t, 2, key.Col)
	assert.Equal(t, 1, key.W)

	x, y := lvl.EntityCenter(key)
	assert.InDelta(t, 0.25, x, 1e-9)
	assert.InDelta(t, -0.15, y, 1e-9)
}

func TestParseFlareErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing header", "[layer]\ndata=\n0,1\n"},
		{"height mismatch", "[header]\nwidth=2\nheight=2\n\n[layer]\ndata=\n0,1\n"},
		{"width mismatch", "[header]\nwidth=3\nheight=1\n\n[layer]\ndata=\n0,1\n"},
		{"bad number", "[header]\nwidth=2\nheight=1\n\n[layer]\ndata=\n0,x\n"},
		{"bad location", "[header]\nwidth=1\nheight=1\n\n[layer]\ndata=\n0\n\n[e]\ntype=key\nlocation=1\n"},
		{"entity without type", "[header]\nwidth=1\nheight=1\n\n[layer]\ndata=\n0\n\n[e]\nlocation=0,0\n"},
		{"not key value", "[header]\nwidth\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlare([]byte(tt.data))
			assert.True(t, errors.Is(err, ErrBadFormat), "got %v", err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny
tile_size: 0.5
rows:
  - "P..K"
  - "..=."
  - "####"
entities:
  - type: Coin
    col: 1
    row: 0
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "tiny", lvl.ID)
	assert.Equal(t, 0.5, lvl.Grid.TileSize())
	assert.Equal(t, 5, lvl.Grid.SolidCount())
	assert.False(t, lvl.Grid.Solid(0, 0), "markers must leave the cell empty")

	tile, _ := lvl.Grid.At(1, 2)
	assert.Equal(t, Tile(2), tile)

	require.Len(t, lvl.Entities, 3)
	_, ok := lvl.Entity(EntityPlayer)
	assert.True(t, ok)
	key, ok := lvl.Entity(EntityKey)
	require.True(t, ok)
	assert.Equal(t, 3, key.Col)
	_, ok = lvl.Entity("coin")
	assert.True(t, ok)
}

func TestParseYAMLLegend(t *testing.T) {
	data := []byte(`
legend:
  "x": 7
rows:
  - "x."
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	tile, _ := lvl.Grid.At(0, 0)
	assert.Equal(t, Tile(7), tile)

	_, err = ParseYAML([]byte("rows:\n  - \"#?\"\n"))
	assert.True(t, errors.Is(err, ErrBadFormat))

	_, err = ParseYAML([]byte("rows:\n  - \"##\"\n  - \"#\"\n"))
	assert.True(t, errors.Is(err, ErrBadFormat))

	_, err = ParseYAML([]byte("name: empty\n"))
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestParseUnknownExtension(t *testing.T) {
	_, err := Parse([]byte("{}"), ".json")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte(smallFlare), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("rows:\n  - \"P.#\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("rows: [\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	l := NewLoader(dir)
	levels, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].ID, "ID falls back to file name")
	assert.Equal(t, "b", levels[1].ID)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), levels[0].FilePath)

	ids, err := l.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	lvl, err := l.LoadByID("b")
	require.NoError(t, err)
	assert.Equal(t, "Small", lvl.Name)

	_, err = l.LoadByID("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "one.flare")
	require.NoError(t, os.WriteFile(p, []byte(smallFlare), 0o644))

	lvl, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "one", lvl.ID)
	assert.Equal(t, p, lvl.FilePath)

	_, err = LoadFile(filepath.Join(dir, "absent.txt"))
	assert.Error(t, err)
}

func TestBuiltinLevels(t *testing.T) {
	ids, err := Builtin().ListIDs()
	require.NoError(t, err)
	assert.Contains(t, ids, DefaultLevelID)
	assert.Contains(t, ids, "cavern")

	lvl, err := Builtin().LoadByID(DefaultLevelID)
	require.NoError(t, err)
	assert.Equal(t, 96, lvl.Grid.Width())
	assert.Equal(t, 20, lvl.Grid.Height())

	player, ok := lvl.Entity(EntityPlayer)
	require.True(t, ok)
	assert.False(t, lvl.Grid.Solid(player.Row, player.Col))

	key, ok := lvl.Entity(EntityKey)
	require.True(t, ok)
	assert.Equal(t, 88, key.Col)
	assert.Equal(t, 3, key.Row)
	assert.True(t, lvl.Grid.Solid(key.Row+1, key.Col), "key rests on a platform")
}
