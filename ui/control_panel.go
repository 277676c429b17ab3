package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/rockclimber/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelState is what the control panel shows each frame.
type PanelState struct {
	Debug     bool
	HoldCount int
	FallCount int
}

// ControlPanel is the ebitenui strip above the wall: a debug toggle and the
// run read-outs.
type ControlPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnToggleDebug func()

	// Widget references for updates
	debugButton *widget.Button
	holdsLabel  *widget.Label
	fallsLabel  *widget.Label

	face text.Face
	last PanelState
	init bool
}

// NewControlPanel builds the panel. onToggleDebug runs when the debug button
// is clicked.
func NewControlPanel(onToggleDebug func()) (*ControlPanel, error) {
	cp := &ControlPanel{OnToggleDebug: onToggleDebug}
	if err := cp.loadFonts(); err != nil {
		return nil, err
	}
	cp.buildUI()
	return cp, nil
}

func (cp *ControlPanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui: load panel font: %w", err)
	}
	cp.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.PanelFontSize,
	}
	return nil
}

func (cp *ControlPanel) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.UI.PanelPadding)
	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(cfg.UI.PanelSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.UI.PanelHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	cp.debugButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, cfg.UI.PanelHeight-2*cfg.UI.PanelPadding),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(cp.buttonImage()),
		widget.ButtonOpts.Text(debugLabel(false), &cp.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cp.OnToggleDebug != nil {
				cp.OnToggleDebug()
			}
		}),
	)
	strip.AddChild(cp.debugButton)

	cp.holdsLabel = cp.readout(holdsText(0))
	strip.AddChild(cp.holdsLabel)
	cp.fallsLabel = cp.readout(fallsText(0))
	strip.AddChild(cp.fallsLabel)

	rootContainer.AddChild(strip)

	cp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (cp *ControlPanel) readout(initial string) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(initial, &cp.face, &widget.LabelColor{
			Idle: cfg.UI.HUDTextColor,
		}),
	)
}

func (cp *ControlPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Update runs the UI and refreshes widget text when state changed.
func (cp *ControlPanel) Update(state PanelState) {
	cp.UI.Update()
	// Widgets are only validated after the first UI update
	if cp.init && state == cp.last {
		return
	}
	cp.init = true
	cp.last = state
	cp.debugButton.Text().Label = debugLabel(state.Debug)
	cp.holdsLabel.Label = holdsText(state.HoldCount)
	cp.fallsLabel.Label = fallsText(state.FallCount)
}

func debugLabel(on bool) string {
	if on {
		return "Debug ON"
	}
	return "Debug OFF"
}

func holdsText(n int) string {
	return fmt.Sprintf("Holds grabbed: %d", n)
}

func fallsText(n int) string {
	return fmt.Sprintf("Falls: %d", n)
}
