package scenes

import (
	"image/color"

	"github.com/automoto/rockclimber/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NoticeScene is the no-game view shown when the climb could not start.
type NoticeScene struct {
	err error
}

func NewNoticeScene(err error) *NoticeScene {
	return &NoticeScene{err: err}
}

func (ns *NoticeScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (ns *NoticeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 10, B: 10, A: 255})
	msg := "The climb could not start.\n\n" + ns.err.Error() + "\n\nPress Esc to quit."
	ebitenutil.DebugPrintAt(screen, msg, int(config.UI.HUDMargin), int(config.UI.HUDMargin))
}
