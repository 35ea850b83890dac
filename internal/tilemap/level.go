package tilemap

import (
	"errors"
	"strings"
)

// Errors returned by the level parsers and loader.
var (
	ErrBadFormat     = errors.New("tilemap: malformed level")
	ErrUnknownFormat = errors.New("tilemap: unsupported level format")
	ErrNotFound      = errors.New("tilemap: level not found")
)

// DefaultTileSize is the world size of one tile when a level does not say.
const DefaultTileSize = 0.1

// Well-known entity types placed by level files.
const (
	EntityPlayer = "player"
	EntityKey    = "key"
)

// Entity is a placement record from a level file, in grid cells.
type Entity struct {
	Type string
	Col  int
	Row  int
	W    int
	H    int
}

// Level is a parsed level: the tile grid plus entity placements.
type Level struct {
	ID       string
	Name     string
	Grid     *Grid
	Entities []Entity
	Metadata map[string]string
	FilePath string
}

// Entity returns the first entity of the given type (case-insensitive).
func (l *Level) Entity(typ string) (Entity, bool) {
	for _, e := range l.Entities {
		if strings.EqualFold(e.Type, typ) {
			return e, true
		}
	}
	return Entity{}, false
}

// EntityCenter returns the world-space center of an entity's footprint.
func (l *Level) EntityCenter(e Entity) (x, y float64) {
	s := l.Grid.TileSize()
	w, h := max(e.W, 1), max(e.H, 1)
	x = (float64(e.Col) + float64(w)/2) * s
	y = -(float64(e.Row) + float64(h)/2) * s
	return x, y
}
