package walldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and returns its seed layout. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS / fstest.MapFS (tests).
func Load(fsys fs.FS, tmxPath string) (*WallData, error) {
	wallMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("walldata: load TMX %s: %w", tmxPath, err)
	}
	return FromMap(wallMap, tmxPath)
}

// FromMap extracts the seed layout from an already parsed map.
func FromMap(wallMap *tiled.Map, tmxPath string) (*WallData, error) {
	data := &WallData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  wallMap.Width * wallMap.TileWidth,
		MapHeight: wallMap.Height * wallMap.TileHeight,
	}

	for _, og := range wallMap.ObjectGroups {
		if og.Name != SeedGroup {
			continue
		}
		for _, o := range og.Objects {
			data.Seed = append(data.Seed, SeedHold{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("index"),
			})
		}
	}

	// Grab order comes from the index property, not from object order
	sort.SliceStable(data.Seed, func(i, j int) bool {
		return data.Seed[i].Index < data.Seed[j].Index
	})

	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("walldata: %s: %w", tmxPath, err)
	}
	return data, nil
}

func (w *WallData) validate() error {
	if len(w.Seed) == 0 {
		return fmt.Errorf("no objects in %q group", SeedGroup)
	}
	for i, h := range w.Seed {
		if h.Index != i {
			return fmt.Errorf("seed indices must run 0..%d, found %d at position %d", len(w.Seed)-1, h.Index, i)
		}
		if h.X < 0 || h.Y < 0 || h.X > float64(w.MapWidth) || h.Y > float64(w.MapHeight) {
			return fmt.Errorf("seed hold %d at (%v, %v) lies outside the %dx%d map", i, h.X, h.Y, w.MapWidth, w.MapHeight)
		}
	}
	return nil
}
