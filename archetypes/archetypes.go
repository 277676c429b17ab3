package archetypes

import (
	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		components.Wall,
	)
	Hold = newArchetype(
		tags.Hold,
		components.Hold,
		components.Object,
	)
	Climber = newArchetype(
		tags.Climber,
		components.Climber,
		components.Object,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Object,
	)
	ClickMarker = newArchetype(
		tags.ClickMarker,
		components.Marker,
	)
	TargetRing = newArchetype(
		tags.TargetRing,
		components.Ring,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
