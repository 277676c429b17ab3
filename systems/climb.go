package systems

import (
	"log"

	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	"github.com/automoto/rockclimber/systems/factory"
	"github.com/automoto/rockclimber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton. ok is false in the no-game view.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	data := components.Session.Get(entry)
	return data, data.Session != nil
}

// WithSessionCheck skips system when there is no session to drive.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if _, ok := GetSession(ecs); !ok {
			return
		}
		system(ecs)
	}
}

// BeginClimb lays out the first run. Call once after factory.CreateSession.
func BeginClimb(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	applyCommands(ecs, data, data.Session.Begin())
}

// UpdateClimb feeds this frame's taps through the input gate, then advances
// the session by one tick. Must run AFTER UpdateInput.
func UpdateClimb(ecs *ecs.ECS) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}

	input := GetOrCreateInput(ecs)
	for _, p := range input.Taps {
		applyCommands(ecs, data, data.Session.OnInput(p, data.Clock()))
	}

	applyCommands(ecs, data, data.Session.OnFrame(frameSeconds()))
}

// ApplyTuning swaps the session's constants, keeping the current run.
func ApplyTuning(ecs *ecs.ECS, t climb.Tuning) error {
	data, ok := GetSession(ecs)
	if !ok {
		return nil
	}
	return data.Session.SetTuning(t)
}

func frameSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// applyCommands mirrors session side effects onto entities.
func applyCommands(ecs *ecs.ECS, data *components.SessionData, cmds []climb.Command) {
	if len(cmds) == 0 {
		return
	}
	data.Log.Record(cmds)
	verbose := GetOrCreateSettings(ecs).Debug

	for _, c := range cmds {
		switch c.Kind {
		case climb.SpawnHold:
			hold := factory.CreateHold(ecs, c.Hold, c.Pos, data.Session.Tuning().HoldRadius)
			data.Holds[c.Hold] = hold.Entity()
		case climb.DestroyHold:
			if entity, ok := data.Holds[c.Hold]; ok {
				if ecs.World.Valid(entity) {
					factory.Destroy(ecs, ecs.World.Entry(entity))
				}
				delete(data.Holds, c.Hold)
			}
		case climb.MoveClimber:
			if e, ok := climberEntry(ecs); ok {
				components.Object.Get(e).MoveCenter(c.Pos)
			}
		case climb.Fell:
			setClimberState(ecs, true, false)
		case climb.Landed:
			setClimberState(ecs, false, true)
		case climb.Tapped:
			data.LastClick, data.HasClick = c.Pos, true
			factory.CreateClickMarker(ecs, c.Pos)
		case climb.Started, climb.RunReset:
			setClimberState(ecs, false, false)
		case climb.Trace:
			if verbose {
				log.Printf("climb: %s", c.Text)
			}
		}
	}
}

func climberEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Climber.First(ecs.World)
}

func setClimberState(ecs *ecs.ECS, falling, resting bool) {
	e, ok := climberEntry(ecs)
	if !ok {
		return
	}
	climber := components.Climber.Get(e)
	climber.Falling = falling
	climber.Resting = resting
}
