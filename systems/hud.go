package systems

import (
	"fmt"

	"github.com/automoto/rockclimber/climb"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the grab counter, the instructions and the restart hint.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSession(ecs)
	if !ok || !fonts.Loaded(fonts.HUD) {
		return
	}
	s := data.Session
	face := fonts.HUD.Get()
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	margin := cfg.UI.HUDMargin

	counter := fmt.Sprintf("Holds grabbed: %d", s.HoldCount())
	text.Draw(screen, counter, face, int(margin), int(margin)+face.Metrics().Ascent.Ceil(), cfg.UI.HUDTextColor)

	switch s.Phase() {
	case climb.Idle:
		drawBanner(screen, face, cfg.UI.Instructions, width, height-cfg.UI.InstructionGap)
	case climb.WaitingForRestart:
		drawBanner(screen, face, cfg.UI.RestartHint, width, height/2)
	}
}

// drawBanner draws s centred horizontally on a dark strip with its baseline at y.
func drawBanner(screen *ebiten.Image, face font.Face, s string, width, y float64) {
	bounds := text.BoundString(face, s)
	x := centerTextX(s, face, width)
	pad := 4
	vector.FillRect(screen,
		float32(x+bounds.Min.X-pad), float32(int(y)+bounds.Min.Y-pad),
		float32(bounds.Dx()+2*pad), float32(bounds.Dy()+2*pad),
		cfg.BlackOverlay, false)
	text.Draw(screen, s, face, x, int(y), cfg.UI.HUDTextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
