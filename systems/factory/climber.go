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

func CreateClimber(ecs *ecs.ECS, pos climb.Vec2, size float64) *donburi.Entry {
	climber := archetypes.Climber.Spawn(ecs)

	obj := resolv.NewObject(pos.X-size/2, pos.Y-size/2, size, size, tags.ResolvClimber)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = climber

	components.Object.SetValue(climber, components.ObjectData{Object: obj})
	components.Climber.SetValue(climber, components.ClimberData{})

	addToSpace(ecs, obj)
	return climber
}

// CreateCursor spawns the 1x1 probe that follows the pointer for hover checks.
func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)

	obj := resolv.NewObject(-10, -10, 1, 1, tags.ResolvCursor)
	obj.Data = cursor
	components.Object.SetValue(cursor, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return cursor
}
