package systems

import (
	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateClimb in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.Taps = input.Taps[:0]
	cx, cy := ebiten.CursorPosition()
	for _, btn := range cfg.Input.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			addTap(input, cx, cy)
			break
		}
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		addTap(input, tx, ty)
	}

	input.Hover, input.HasHover = toWall(cx, cy)
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func addTap(input *components.InputData, x, y int) {
	if p, ok := toWall(x, y); ok {
		input.Taps = append(input.Taps, p)
	}
}

// toWall converts screen coordinates to wall coordinates. Points over the
// control panel are not on the wall.
func toWall(x, y int) (climb.Vec2, bool) {
	p := climb.Pt(float64(x), float64(y-cfg.UI.PanelHeight))
	return p, p.Y >= 0
}
