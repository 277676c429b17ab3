package systems

import (
	"github.com/automoto/rockclimber/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances marker fades and the target ring pulse.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(frameSeconds())

	var faded []donburi.Entity
	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Marker.Get(e)
		alpha, finished := marker.Fade.Update(dt)
		marker.Alpha = alpha
		if finished {
			faded = append(faded, e.Entity())
		}
	})
	for _, entity := range faded {
		ecs.World.Remove(entity)
	}

	components.Ring.Each(ecs.World, func(e *donburi.Entry) {
		ring := components.Ring.Get(e)
		scale, _, complete := ring.Pulse.Update(dt)
		ring.Scale = scale
		if complete {
			ring.Pulse.Reset()
		}
	})
}
