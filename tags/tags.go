package tags

import "github.com/yohamta/donburi"

var (
	Hold        = donburi.NewTag().SetName("Hold")
	Climber     = donburi.NewTag().SetName("Climber")
	ClickMarker = donburi.NewTag().SetName("ClickMarker")
	TargetRing  = donburi.NewTag().SetName("TargetRing")
	Cursor      = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for collision queries
const (
	ResolvHold    = "hold"
	ResolvClimber = "climber"
	ResolvCursor  = "cursor"
)
