// Package walldata parses Tiled wall maps into seed hold layouts.
// It has no dependencies on ebitengine or donburi's ECS, pure data only.
package walldata

import "github.com/automoto/rockclimber/climb"

// SeedGroup is the object group holding the first holds of every run.
const SeedGroup = "SeedHolds"

// WallData holds everything the game reads from a wall map.
type WallData struct {
	Name      string
	MapWidth  int
	MapHeight int
	Seed      []SeedHold // ordered by Index
}

// SeedHold is one point object from the SeedHolds group.
type SeedHold struct {
	X, Y  float64
	Index int
}

// SeedPoints returns the seed positions in grab order.
func (w *WallData) SeedPoints() []climb.Vec2 {
	pts := make([]climb.Vec2, len(w.Seed))
	for i, h := range w.Seed {
		pts[i] = climb.Pt(h.X, h.Y)
	}
	return pts
}
