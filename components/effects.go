package components

import (
	"github.com/automoto/rockclimber/climb"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MarkerData is a fading dot at the last pointer input.
type MarkerData struct {
	Pos   climb.Vec2
	Alpha float32
	Fade  *gween.Tween
}

var Marker = donburi.NewComponentType[MarkerData]()

// RingData pulses the click-radius ring drawn around the target hold.
type RingData struct {
	Scale float32
	Pulse *gween.Sequence
}

var Ring = donburi.NewComponentType[RingData]()
