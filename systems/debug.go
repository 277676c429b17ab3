package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rockclimber/components"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/fonts"
	"github.com/automoto/rockclimber/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug renders the diagnostics overlay: collision outlines, the click
// marker, the click-radius ring, read-outs and the trace tail.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	data, ok := GetSession(ecs)
	if !ok {
		return
	}

	drawOutlines(ecs, screen)
	drawTargetRing(ecs, data, screen)

	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Marker.Get(e)
		vector.FillCircle(screen, float32(marker.Pos.X), float32(marker.Pos.Y),
			float32(cfg.Debug.MarkerRadius), fade(cfg.Debug.MarkerColor, marker.Alpha), true)
	})

	if fonts.Loaded(fonts.Debug) {
		drawReadouts(data, screen)
	}
}

func drawOutlines(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		// Cull objects outside the view
		if obj.X+obj.W < 0 || obj.X > width || obj.Y+obj.H < 0 || obj.Y > height {
			continue
		}
		c := cfg.Debug.OutlineColor
		if obj.HasTags(tags.ResolvClimber) {
			c = cfg.LightBlue
		} else if obj.HasTags(tags.ResolvCursor) {
			continue
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

func drawTargetRing(ecs *ecs.ECS, data *components.SessionData, screen *ebiten.Image) {
	target, ok := data.Session.Target()
	if !ok {
		return
	}
	scale := float32(1)
	if e, ok := tags.TargetRing.First(ecs.World); ok {
		scale = components.Ring.Get(e).Scale
	}
	r := float32(data.Session.Tuning().ClickRadius) * scale
	x, y := float32(target.Pos.X), float32(target.Pos.Y)
	vector.FillCircle(screen, x, y, r, fade(cfg.Debug.RingColor, 0.35), true)
	vector.StrokeCircle(screen, x, y, r, 1, cfg.Debug.RingColor, true)
}

func drawReadouts(data *components.SessionData, screen *ebiten.Image) {
	face := fonts.Debug.Get()
	lineH := face.Metrics().Height.Ceil()
	width := float64(screen.Bounds().Dx())
	s := data.Session

	var lines []string
	if data.HasClick {
		lines = append(lines, fmt.Sprintf("Last click: (%.1f, %.1f)", data.LastClick.X, data.LastClick.Y))
	}
	lines = append(lines,
		fmt.Sprintf("Click radius: %.0fpx", s.Tuning().ClickRadius),
		fmt.Sprintf("Falls this run: %d", s.FallCount()),
		fmt.Sprintf("Phase: %s  target: %d  speed: %.0f", s.Phase(), s.TargetIndex(), s.Speed()),
	)
	tail := data.Log.Tail(cfg.Debug.LogLines)

	// Panel anchored to the bottom-left, above the instruction line
	top := screen.Bounds().Dy() - int(cfg.UI.InstructionGap) - 2*lineH - lineH*(len(lines)+len(tail))
	vector.FillRect(screen, 0, float32(top-lineH), float32(width), float32(lineH*(len(lines)+len(tail)+1)), cfg.BlackOverlay, false)

	y := top
	for _, line := range tail {
		text.Draw(screen, line, face, 4, y, cfg.Debug.TextColor)
		y += lineH
	}
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, color.RGBA{R: 255, G: 255, B: 160, A: 255})
		y += lineH
	}

	if data.Log.FellLast() && fonts.Loaded(fonts.Banner) {
		banner := fonts.Banner.Get()
		x := centerTextX(cfg.Debug.FallBanner, banner, width)
		text.Draw(screen, cfg.Debug.FallBanner, banner, x, screen.Bounds().Dy()/3, cfg.Debug.BannerColor)
	}
}
