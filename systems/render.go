package systems

import (
	"image/color"

	"github.com/automoto/rockclimber/climb"
	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var wallDrawOp = &ebiten.DrawImageOptions{}

// DrawWall fills the view and draws the wall map backdrop when one loaded.
func DrawWall(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	entry, ok := components.Wall.First(ecs.World)
	if !ok {
		return
	}
	wall := components.Wall.Get(entry)
	if wall.Background == nil {
		return
	}
	wallDrawOp.GeoM.Reset()
	screen.DrawImage(wall.Background, wallDrawOp)
}

// DrawHolds renders every live hold, highlighting the one to grab next.
func DrawHolds(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok {
		return
	}
	s := data.Session
	radius := float32(s.Tuning().HoldRadius)
	showTarget := s.Phase() == climb.Idle || s.Phase() == climb.Active

	tags.Hold.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Object.Get(e).Center()
		fill := cfg.UI.HoldColor
		if showTarget && components.Hold.Get(e).Index == s.TargetIndex() {
			fill = cfg.UI.TargetColor
		}
		vector.FillCircle(screen, float32(c.X), float32(c.Y), radius, fill, true)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), radius, 1.5, color.RGBA{A: 160}, true)
	})
}

// DrawClimber renders the climber as a square centred on its position.
func DrawClimber(ecs *ecs.ECS, screen *ebiten.Image) {
	e, ok := climberEntry(ecs)
	if !ok {
		return
	}
	obj := components.Object.Get(e)
	climber := components.Climber.Get(e)

	fill := cfg.UI.ClimberColor
	if climber.Falling || climber.Resting {
		fill = cfg.UI.ClimberFall
	}
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), fill, false)
}

// fade scales the opacity of a premultiplied color by a.
func fade(c color.RGBA, a float32) color.RGBA {
	a = max(0, min(1, a))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
