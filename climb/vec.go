package climb

import "github.com/yohamta/donburi/features/math"

// Vec2 is a point in scene coordinates (origin top-left, Y grows downward).
type Vec2 = math.Vec2

// Pt is shorthand for building a Vec2.
func Pt(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
