package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/rockclimber/assets"
	"github.com/automoto/rockclimber/climb"
	cfg "github.com/automoto/rockclimber/config"
	"github.com/automoto/rockclimber/systems"
	"github.com/automoto/rockclimber/systems/factory"
	"github.com/automoto/rockclimber/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClimbScene hosts one climbing session below the control panel.
type ClimbScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	panel        *ui.ControlPanel
	watcher      *cfg.TuningWatcher
	view         *ebiten.Image
	viewOp       *ebiten.DrawImageOptions
	once         sync.Once
}

func NewClimbScene(sc SceneChanger) *ClimbScene {
	return &ClimbScene{sceneChanger: sc}
}

func (cs *ClimbScene) Update() error {
	cs.once.Do(cs.configure)
	if cs.ecs == nil {
		return nil
	}

	cs.pollTuning()
	if cs.panel != nil {
		cs.panel.Update(cs.panelState())
	}
	cs.ecs.Update()

	if systems.GetOrCreateSettings(cs.ecs).Quit {
		return ebiten.Termination
	}
	return nil
}

func (cs *ClimbScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.view.Clear()
	cs.ecs.Draw(cs.view)
	screen.DrawImage(cs.view, cs.viewOp)

	if cs.panel != nil {
		cs.panel.UI.Draw(screen)
	}
}

// Close stops the tuning watcher and clears the world.
func (cs *ClimbScene) Close() error {
	var err error
	if cs.watcher != nil {
		err = cs.watcher.Close()
		cs.watcher = nil
	}
	if cs.ecs != nil {
		systems.TearDown(cs.ecs)
		cs.ecs = nil
	}
	return err
}

func (cs *ClimbScene) configure() {
	tuning := cs.loadTuning()

	session, err := climb.NewSession(tuning, rand.New(newSource(cfg.Debug.Seed)))
	if err != nil {
		err = fmt.Errorf("scenes: build session: %w", err)
		log.Printf("Warning: %v", err)
		cs.Close()
		cs.sceneChanger.ChangeScene(NewNoticeScene(err))
		return
	}

	wall, err := assets.LoadWall(assets.StartWall)
	if err != nil {
		log.Printf("Warning: Using default seed holds: %v", err)
	} else {
		if wall.MapWidth != int(tuning.Width) || wall.MapHeight != int(tuning.Height) {
			log.Printf("Warning: wall %s is %dx%d, scene is %vx%v", wall.Name, wall.MapWidth, wall.MapHeight, tuning.Width, tuning.Height)
		}
		session.SetSeed(wall.SeedPoints())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and toggles
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateClimb))
	ecs.AddSystem(systems.WithSessionCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.UpdateCursor)
	ecs.AddSystem(systems.UpdateEffects)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWall)
	ecs.AddRenderer(cfg.Default, systems.DrawHolds)
	ecs.AddRenderer(cfg.Default, systems.DrawClimber)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = ecs

	// The space must exist before any object is created
	factory.CreateSpace(cs.ecs, int(tuning.Width), int(tuning.Height), 16, 16)
	factory.CreateWall(cs.ecs, wall)
	factory.CreateCursor(cs.ecs)
	factory.CreateClimber(cs.ecs, tuning.ClimberStart(), tuning.ClimberSize)
	factory.CreateTargetRing(cs.ecs)
	factory.CreateSession(cs.ecs, session, tuning.LogLimit)
	systems.BeginClimb(cs.ecs)

	cs.panel, err = ui.NewControlPanel(func() {
		systems.ToggleDebug(cs.ecs)
	})
	if err != nil {
		log.Printf("Warning: Control panel disabled: %v", err)
	}

	cs.view = ebiten.NewImage(int(tuning.Width), int(tuning.Height))
	cs.viewOp = &ebiten.DrawImageOptions{}
	cs.viewOp.GeoM.Translate(0, float64(cfg.UI.PanelHeight))
}

// loadTuning applies the optional tuning file over the built-in values and
// starts watching it when asked.
func (cs *ClimbScene) loadTuning() climb.Tuning {
	tuning := cfg.Climb
	path := cfg.Debug.TuningPath
	if path == "" {
		return tuning
	}

	loaded, err := cfg.LoadTuning(path, tuning)
	if err != nil {
		log.Printf("Warning: Using built-in tuning: %v", err)
	} else {
		tuning = loaded
	}

	if cfg.Debug.Watch {
		w, err := cfg.WatchTuning(path, cfg.Climb)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", path, err)
		} else {
			cs.watcher = w
		}
	}
	return tuning
}

// pollTuning applies at most one pending reload per frame.
func (cs *ClimbScene) pollTuning() {
	if cs.watcher == nil {
		return
	}
	select {
	case u, ok := <-cs.watcher.Updates:
		if !ok {
			cs.watcher = nil
			return
		}
		if u.Err != nil {
			log.Printf("Warning: Tuning reload failed: %v", u.Err)
			return
		}
		if err := systems.ApplyTuning(cs.ecs, u.Tuning); err != nil {
			log.Printf("Warning: Tuning rejected: %v", err)
			return
		}
		log.Printf("Tuning reloaded from %s", cfg.Debug.TuningPath)
	default:
	}
}

func (cs *ClimbScene) panelState() ui.PanelState {
	state := ui.PanelState{Debug: systems.GetOrCreateSettings(cs.ecs).Debug}
	if data, ok := systems.GetSession(cs.ecs); ok {
		state.HoldCount = data.Session.HoldCount()
		state.FallCount = data.Session.FallCount()
	}
	return state
}

// newSource seeds the hold spawner. Zero picks a seed from the clock.
func newSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
