package systems

import (
	"github.com/automoto/rockclimber/components"
	"github.com/automoto/rockclimber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every hold's collision box to the hold's scrolled
// position. Must run AFTER UpdateClimb.
func UpdateObjects(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	holds := data.Session.Holds()

	tags.Hold.Each(ecs.World, func(e *donburi.Entry) {
		hold, ok := holds.Get(components.Hold.Get(e).Index)
		if !ok {
			return
		}
		components.Object.Get(e).MoveCenter(hold.Pos)
	})
}

// UpdateCursor shows the pointer cursor while hovering a hold.
func UpdateCursor(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	shape := ebiten.CursorShapeDefault
	if cursor, ok := cursorEntry(ecs); ok && input.HasHover {
		obj := components.Object.Get(cursor)
		obj.MoveCenter(input.Hover)
		if obj.Check(0, 0, tags.ResolvHold) != nil {
			shape = ebiten.CursorShapePointer
		}
	}

	if shape != input.Cursor {
		ebiten.SetCursorShape(shape)
		input.Cursor = shape
	}
}

func cursorEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Cursor.First(ecs.World)
}
