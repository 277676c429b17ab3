package factory

import (
	"github.com/automoto/rockclimber/archetypes"
	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClickMarker drops a marker at pos that fades out over
// cfg.Debug.MarkerFadeSecs. Only one marker exists at a time.
func CreateClickMarker(ecs *ecs.ECS, pos climb.Vec2) *donburi.Entry {
	var stale []donburi.Entity
	tags.ClickMarker.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, entity := range stale {
		ecs.World.Remove(entity)
	}

	marker := archetypes.ClickMarker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{
		Pos:   pos,
		Alpha: 1,
		Fade:  gween.New(1, 0, cfg.Debug.MarkerFadeSecs, ease.OutQuad),
	})
	return marker
}

// CreateTargetRing spawns the pulsing ring drawn around the target hold.
func CreateTargetRing(ecs *ecs.ECS) *donburi.Entry {
	ring := archetypes.TargetRing.Spawn(ecs)

	half := cfg.Debug.RingPulseSecs / 2
	pulse := gween.NewSequence()
	pulse.Add(
		gween.New(1, 1.12, half, ease.InOutSine),
		gween.New(1.12, 1, half, ease.InOutSine),
	)
	components.Ring.SetValue(ring, components.RingData{Scale: 1, Pulse: pulse})
	return ring
}
