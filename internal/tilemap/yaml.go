package tilemap

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk structure of a YAML level file.
//
// Rows are strings with one rune per cell. '.' and ' ' are empty, the
// legend maps other runes to tile indices, and the markers 'P' (player
// spawn) and 'K' (key) place entities on an empty cell.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	TileSize float64           `yaml:"tile_size,omitempty"`
	Legend   map[string]int    `yaml:"legend,omitempty"`
	Rows     []string          `yaml:"rows"`
	Entities []YAMLEntity      `yaml:"entities,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLEntity is an explicit entity placement.
type YAMLEntity struct {
	Type string `yaml:"type"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	W    int    `yaml:"w,omitempty"`
	H    int    `yaml:"h,omitempty"`
}

// DefaultLegend maps row runes to tile indices when a level has no legend.
var DefaultLegend = map[rune]Tile{
	'#': 1, // ground
	'=': 2, // platform
	'%': 3, // brick
}

var markers = map[rune]string{
	'P': EntityPlayer,
	'K': EntityKey,
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("%w: yaml: %v", ErrBadFormat, err)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("%w: no rows", ErrBadFormat)
	}

	legend := DefaultLegend
	if len(yl.Legend) > 0 {
		legend = make(map[rune]Tile, len(yl.Legend))
		for k, v := range yl.Legend {
			r := []rune(k)
			if len(r) != 1 {
				return Level{}, fmt.Errorf("%w: legend key %q must be one character", ErrBadFormat, k)
			}
			legend[r[0]] = Tile(v)
		}
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Metadata: yl.Metadata,
	}

	width := len([]rune(yl.Rows[0]))
	rows := make([][]Tile, len(yl.Rows))
	for r, line := range yl.Rows {
		runes := []rune(line)
		if len(runes) != width {
			return Level{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrBadFormat, r, len(runes), width)
		}
		rows[r] = make([]Tile, width)
		for c, ch := range runes {
			switch {
			case ch == '.' || ch == ' ':
			case markers[ch] != "":
				lvl.Entities = append(lvl.Entities, Entity{Type: markers[ch], Col: c, Row: r, W: 1, H: 1})
			default:
				t, ok := legend[ch]
				if !ok {
					return Level{}, fmt.Errorf("%w: row %d col %d: unknown tile %q", ErrBadFormat, r, c, ch)
				}
				rows[r][c] = t
			}
		}
	}

	for _, e := range yl.Entities {
		lvl.Entities = append(lvl.Entities, Entity{
			Type: strings.ToLower(e.Type),
			Col:  e.Col,
			Row:  e.Row,
			W:    max(e.W, 1),
			H:    max(e.H, 1),
		})
	}

	tileSize := yl.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}
	grid, err := NewGrid(rows, tileSize)
	if err != nil {
		return Level{}, err
	}
	lvl.Grid = grid
	return lvl, nil
}
