package main

import (
	"errors"
	"flag"
	"image"
	"io"
	"log"

	"github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/fonts"
	"github.com/automoto/rockclimber/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene, closing the old one if it holds resources
func (g *Game) ChangeScene(scene interface{}) {
	if closer, ok := g.scene.(io.Closer); ok && g.scene != scene {
		if err := closer.Close(); err != nil {
			log.Printf("Warning: Closing scene: %v", err)
		}
	}
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Printf("Warning: HUD text disabled: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewClimbScene(g)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// Close releases the active scene.
func (g *Game) Close() error {
	if closer, ok := g.scene.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", config.Debug.Enabled, "show the diagnostics overlay and log the climb trace")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding the climb tuning")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload the -tuning file when it changes")
	flag.Uint64Var(&config.Debug.Seed, "seed", 0, "random seed for hold placement (0 = from clock)")
	flag.Parse()

	if config.Debug.Watch && config.Debug.TuningPath == "" {
		log.Printf("Warning: -watch has no effect without -tuning")
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Rock Climber")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame()
	err := ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("Warning: %v", cerr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
