package components

import (
	"github.com/automoto/rockclimber/climb"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o ObjectData) Center() climb.Vec2 {
	return climb.Pt(o.X+o.W/2, o.Y+o.H/2)
}

// MoveCenter places the box so its middle sits on p and refreshes its cells.
func (o ObjectData) MoveCenter(p climb.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space every object is added to.
var Space = donburi.NewComponentType[resolv.Space]()
