package tilemap

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseFlare parses the Flare text map format:
//
//	[header]
//	width=22
//	height=2
//
//	[layer]
//	data=
//	0,0,1,1,
//	1,1,1,1
//
//	[objects]
//	type=key
//	location=3,0,1,1
//
// Tile indices are kept as written; 0 is empty. Entity locations are
// col,row,w,h in cells. Header keys other than width/height are kept as
// metadata (name and tile_size are recognised).
func ParseFlare(data []byte) (Level, error) {
	var (
		lvl     = Level{Metadata: make(map[string]string)}
		width   = -1
		height  = -1
		section string
		rows    [][]Tile
		inData  bool
		entity  *Entity
	)

	flushEntity := func() error {
		if entity == nil {
			return nil
		}
		if entity.Type == "" {
			return fmt.Errorf("%w: entity without type", ErrBadFormat)
		}
		lvl.Entities = append(lvl.Entities, *entity)
		entity = nil
		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			if line == "" {
				inData = false
			}
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			if err := flushEntity(); err != nil {
				return Level{}, err
			}
			section = strings.ToLower(strings.Trim(line, "[]"))
			inData = false
			if section != "header" && section != "layer" {
				entity = &Entity{W: 1, H: 1}
			}
			continue
		}

		if inData {
			row, err := parseFlareRow(line)
			if err != nil {
				return Level{}, fmt.Errorf("%w: line %d: %v", ErrBadFormat, lineNo, err)
			}
			rows = append(rows, row)
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Level{}, fmt.Errorf("%w: line %d: expected key=value", ErrBadFormat, lineNo)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch section {
		case "header":
			var err error
			switch key {
			case "width":
				width, err = strconv.Atoi(value)
			case "height":
				height, err = strconv.Atoi(value)
			default:
				lvl.Metadata[key] = value
			}
			if err != nil {
				return Level{}, fmt.Errorf("%w: line %d: %s: %v", ErrBadFormat, lineNo, key, err)
			}
		case "layer":
			if key == "data" {
				inData = true
				rows = rows[:0]
			}
		default:
			if entity == nil {
				continue
			}
			switch key {
			case "type":
				entity.Type = strings.ToLower(value)
			case "location":
				if err := parseLocation(value, entity); err != nil {
					return Level{}, fmt.Errorf("%w: line %d: %v", ErrBadFormat, lineNo, err)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("tilemap: reading flare map: %w", err)
	}
	if err := flushEntity(); err != nil {
		return Level{}, err
	}

	if width <= 0 || height <= 0 {
		return Level{}, fmt.Errorf("%w: header must set positive width and height", ErrBadFormat)
	}
	if len(rows) != height {
		return Level{}, fmt.Errorf("%w: header height %d but %d data rows", ErrBadFormat, height, len(rows))
	}
	if len(rows[0]) != width {
		return Level{}, fmt.Errorf("%w: header width %d but %d data columns", ErrBadFormat, width, len(rows[0]))
	}

	tileSize := DefaultTileSize
	if v, ok := lvl.Metadata["tile_size"]; ok {
		ts, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Level{}, fmt.Errorf("%w: tile_size: %v", ErrBadFormat, err)
		}
		tileSize = ts
	}

	grid, err := NewGrid(rows, tileSize)
	if err != nil {
		return Level{}, err
	}
	lvl.Grid = grid
	lvl.ID = lvl.Metadata["id"]
	lvl.Name = lvl.Metadata["name"]
	return lvl, nil
}

func parseFlareRow(line string) ([]Tile, error) {
	fields := strings.Split(strings.TrimSuffix(line, ","), ",")
	row := make([]Tile, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		row = append(row, Tile(v))
	}
	return row, nil
}

func parseLocation(value string, e *Entity) error {
	parts := strings.Split(value, ",")
	if len(parts) < 2 {
		return fmt.Errorf("location %q needs at least col,row", value)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("location %q: %v", value, err)
		}
		nums[i] = n
	}
	e.Col, e.Row = nums[0], nums[1]
	if len(nums) >= 4 {
		e.W, e.H = nums[2], nums[3]
	}
	return nil
}
