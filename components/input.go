package components

import (
	"github.com/automoto/rockclimber/climb"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions,
// plus the pointer activity of the current frame in wall coordinates.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Taps     []climb.Vec2 // pointer presses this frame, in arrival order
	Hover    climb.Vec2
	HasHover bool
	Cursor   ebiten.CursorShapeType // shape last applied to the window
}

var Input = donburi.NewComponentType[InputData]()

// SettingsData holds runtime toggles.
type SettingsData struct {
	Debug bool
	Quit  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
