package tilemap

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed levels/*
var builtinFS embed.FS

// DefaultLevelID is the built-in level used when none is selected.
const DefaultLevelID = "meadow"

// Loader loads levels from a file system rooted at a directory.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader reading levels from a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "levels")
	if err != nil {
		panic(err) // embed path is fixed at compile time
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll loads every supported level file under the root.
// Invalid files are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSupported(p) {
			return nil
		}
		lvl, err := l.load(p)
		if err != nil {
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tilemap: walking %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads the level with the given ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s in %s", ErrNotFound, id, l.root)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("tilemap: reading %s: %w", p, err)
	}
	lvl, err := Parse(data, path.Ext(p))
	if err != nil {
		return Level{}, fmt.Errorf("tilemap: parsing %s: %w", p, err)
	}
	if lvl.ID == "" {
		lvl.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	lvl.FilePath = path.Join(l.root, p)
	return lvl, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	dir, name := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	lvl, err := NewLoader(dir).load(name)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = p
	return lvl, nil
}

// Parse routes level data to the parser for the given file extension.
func Parse(data []byte, ext string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt", ".flare", ".map":
		return ParseFlare(data)
	default:
		return Level{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// IsSupported reports whether the file extension has a parser.
func IsSupported(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml", ".txt", ".flare", ".map":
		return true
	}
	return false
}
