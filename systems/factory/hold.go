package factory

import (
	"github.com/automoto/rockclimber/archetypes"
	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	"github.com/automoto/rockclimber/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHold spawns the entity for hold index centred on pos. The collision
// box is the square around the drawn circle.
func CreateHold(ecs *ecs.ECS, index int, pos climb.Vec2, radius float64) *donburi.Entry {
	hold := archetypes.Hold.Spawn(ecs)

	size := radius * 2
	obj := resolv.NewObject(pos.X-radius, pos.Y-radius, size, size, tags.ResolvHold)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = hold // Link for O(1) lookup

	components.Object.SetValue(hold, components.ObjectData{Object: obj})
	components.Hold.SetValue(hold, components.HoldData{Index: index})

	addToSpace(ecs, obj)
	return hold
}
