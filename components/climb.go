package components

import (
	"time"

	"github.com/automoto/rockclimber/climb"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton binding the climb session to the world.
type SessionData struct {
	Session *climb.Session
	Log     *climb.Log

	// Hold entities by spawn index
	Holds map[int]donburi.Entity

	LastClick climb.Vec2
	HasClick  bool

	// Clock stamps pointer input for the debounce gate
	Clock func() time.Time
}

var Session = donburi.NewComponentType[SessionData]()

// HoldData links a hold entity to its spawn index in the session.
type HoldData struct {
	Index int
}

var Hold = donburi.NewComponentType[HoldData]()

// ClimberData mirrors the climber's state for rendering.
type ClimberData struct {
	Falling bool
	Resting bool // landed, waiting for restart
}

var Climber = donburi.NewComponentType[ClimberData]()

// WallData is the pre-rendered backdrop of the loaded wall map.
type WallData struct {
	Name       string
	Background *ebiten.Image
}

var Wall = donburi.NewComponentType[WallData]()
