package config

import (
	"image/color"

	"github.com/automoto/rockclimber/climb"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer is registered on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int // window width
	Height int // window height, control panel included
}

// UIConfig contains HUD and control panel configuration values
type UIConfig struct {
	PanelHeight  int // height of the control strip above the climbing area
	PanelPadding int
	PanelSpacing int

	HUDFontSize   float64
	DebugFontSize float64
	PanelFontSize float64

	HUDMargin      float64
	InstructionGap float64 // distance from the bottom edge to the instruction text
	Instructions   string
	RestartHint    string

	Background    color.RGBA
	PanelColor    color.RGBA
	HoldColor     color.RGBA
	TargetColor   color.RGBA
	ClimberColor  color.RGBA
	ClimberFall   color.RGBA
	HUDTextColor  color.RGBA
	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
}

// DebugConfig contains the diagnostics overlay settings and the CLI options
// that feed them.
type DebugConfig struct {
	Enabled    bool   // overlay visible on start
	TuningPath string // optional YAML file overriding Climb
	Watch      bool   // reload TuningPath on change
	Seed       uint64 // random seed for hold placement, 0 picks one from the clock

	LogLines       int     // trace lines drawn in the overlay
	MarkerRadius   float64 // red click marker
	MarkerFadeSecs float32
	RingPulseSecs  float32
	FallBanner     string

	MarkerColor  color.RGBA
	RingColor    color.RGBA
	TextColor    color.RGBA
	BannerColor  color.RGBA
	OutlineColor color.RGBA
}

// Global configuration instances
var C *Config
var Climb climb.Tuning
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightTarget = color.RGBA{R: 255, G: 220, B: 90, A: 255} // next hold to grab
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Climb = climb.DefaultTuning()

	UI = UIConfig{
		PanelHeight:  36,
		PanelPadding: 6,
		PanelSpacing: 10,

		HUDFontSize:   16,
		DebugFontSize: 10,
		PanelFontSize: 13,

		HUDMargin:      10,
		InstructionGap: 12,
		Instructions:   "Tap the next hold only. Skipping one makes you fall.",
		RestartHint:    "Tap anywhere to climb again",

		Background:    color.RGBA{R: 42, G: 38, B: 46, A: 255},
		PanelColor:    color.RGBA{R: 24, G: 22, B: 28, A: 255},
		HoldColor:     color.RGBA{R: 196, G: 142, B: 84, A: 255},
		TargetColor:   BrightTarget,
		ClimberColor:  LightBlue,
		ClimberFall:   LightRed,
		HUDTextColor:  White,
		ButtonIdle:    DarkBlue,
		ButtonHover:   color.RGBA{R: 80, G: 130, B: 200, A: 255},
		ButtonPressed: color.RGBA{R: 40, G: 70, B: 120, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled: false,

		LogLines:       8,
		MarkerRadius:   4,
		MarkerFadeSecs: 1,
		RingPulseSecs:  0.6,
		FallBanner:     "FALL OCCURRED!",

		MarkerColor:  Red,
		RingColor:    color.RGBA{R: 140, G: 0, B: 0, A: 140}, // premultiplied
		TextColor:    LightGreen,
		BannerColor:  Red,
		OutlineColor: Yellow,
	}

	C = &Config{
		Width:  int(Climb.Width),
		Height: int(Climb.Height) + UI.PanelHeight,
	}
}
