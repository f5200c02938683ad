package isocoins

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/games/isocoins/tilemap"
)

//go:embed maps/*.txt
var builtinMaps embed.FS

// DefaultMapName is the built-in map used when nothing else loads.
const DefaultMapName = "classic"

// MapInfo describes a playable map.
type MapInfo struct {
	Name    string // catalog name, without extension
	Path    string // file path; empty for built-in maps
	Builtin bool
}

// Catalog lists the built-in maps followed by the *.txt maps found in dir.
// A missing or unreadable dir only yields the built-ins.
func Catalog(dir string) []MapInfo {
	var infos []MapInfo

	entries, _ := builtinMaps.ReadDir("maps")
	for _, e := range entries {
		infos = append(infos, MapInfo{Name: strings.TrimSuffix(e.Name(), ".txt"), Builtin: true})
	}

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
		if err == nil {
			sort.Strings(files)
			for _, f := range files {
				name := strings.TrimSuffix(filepath.Base(f), ".txt")
				if isBuiltin(name) {
					continue
				}
				infos = append(infos, MapInfo{Name: name, Path: f})
			}
		}
	}
	return infos
}

// LoadMap resolves ref to a map and parses it. ref is a built-in name,
// the name of a *.txt file in dir, or a file path.
// It returns the map together with its display name.
func LoadMap(ref, dir string, opts tilemap.Options) (*tilemap.Map, string, error) {
	if ref == "" {
		ref = DefaultMapName
	}

	if isBuiltin(ref) {
		m, err := loadBuiltin(ref, opts)
		return m, ref, err
	}

	if dir != "" && !strings.ContainsAny(ref, `/\`) {
		candidate := filepath.Join(dir, ref+".txt")
		if _, err := os.Stat(candidate); err == nil {
			m, err := tilemap.ParseFile(candidate, opts)
			return m, ref, err
		}
	}

	m, err := tilemap.ParseFile(ref, opts)
	return m, strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)), err
}

func isBuiltin(name string) bool {
	_, err := builtinMaps.Open(path.Join("maps", name+".txt"))
	return err == nil
}

func loadBuiltin(name string, opts tilemap.Options) (*tilemap.Map, error) {
	f, err := builtinMaps.Open(path.Join("maps", name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("isocoins: unknown built-in map %q: %w", name, err)
	}
	defer f.Close()

	m, err := tilemap.Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("isocoins: built-in map %s: %w", name, err)
	}
	return m, nil
}
