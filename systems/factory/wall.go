package factory

import (
	"github.com/automoto/rockclimber/archetypes"
	"github.com/automoto/rockclimber/assets"
	"github.com/automoto/rockclimber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall stores the loaded wall's backdrop. wall may be nil when the map
// failed to load; the renderer then falls back to a flat fill.
func CreateWall(ecs *ecs.ECS, wall *assets.Wall) *donburi.Entry {
	entry := archetypes.Wall.Spawn(ecs)
	if wall != nil {
		components.Wall.SetValue(entry, components.WallData{
			Name:       wall.Name,
			Background: wall.Background,
		})
	}
	return entry
}
