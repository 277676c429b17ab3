package systems

import (
	"github.com/automoto/rockclimber/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// TearDown removes every entity and collision object the climb created and
// restores the default cursor.
func TearDown(ecs *ecs.ECS) {
	query := donburi.NewQuery(filter.Or(
		filter.Contains(components.Object),
		filter.Contains(components.Session),
		filter.Contains(components.Wall),
		filter.Contains(components.Marker),
		filter.Contains(components.Ring),
		filter.Contains(components.Input),
		filter.Contains(components.Settings),
		filter.Contains(components.Space),
	))

	var entities []donburi.Entity
	query.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		entities = append(entities, e.Entity())
	})
	for _, entity := range entities {
		ecs.World.Remove(entity)
	}

	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
