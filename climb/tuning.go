package climb

import (
	"errors"
	"fmt"
	"time"
)

// Tuning holds every constant the session reads. All distances are in scene
// pixels, speeds in pixels per second.
type Tuning struct {
	// Scene
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Holds
	HoldRadius       float64 `yaml:"hold_radius"`
	ClickRadius      float64 `yaml:"click_radius"`
	SpawnGap         float64 `yaml:"spawn_gap"`
	SafeXMargin      float64 `yaml:"safe_x_margin"`
	MinSeparation    float64 `yaml:"min_separation"`
	SeparationPush   float64 `yaml:"separation_push"`
	BufferCount      int     `yaml:"buffer_count"`
	CleanupMargin    float64 `yaml:"cleanup_margin"`
	FirstSpawnOffset float64 `yaml:"first_spawn_offset"` // distance above the bottom edge when the buffer is empty

	// Scroll ramp
	BaseSpeed float64 `yaml:"base_speed"`
	Accel     float64 `yaml:"accel"`
	MaxSpeed  float64 `yaml:"max_speed"`

	// Climber
	ClimberSize         float64 `yaml:"climber_size"`
	ClimberStartInset   float64 `yaml:"climber_start_inset"` // start Y = Height - inset
	InitialFallVelocity float64 `yaml:"initial_fall_velocity"`
	FallGravity         float64 `yaml:"fall_gravity"`
	BottomInset         float64 `yaml:"bottom_inset"` // resting Y after a fall = Height - inset
	TopY                float64 `yaml:"top_y"`

	// Input gate
	Debounce time.Duration `yaml:"debounce"`

	// Diagnostics
	LogLimit int `yaml:"log_limit"`
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Width:  360,
		Height: 480,

		HoldRadius:       11,
		ClickRadius:      30,
		SpawnGap:         90,
		SafeXMargin:      24,
		MinSeparation:    40,
		SeparationPush:   40,
		BufferCount:      12,
		CleanupMargin:    40,
		FirstSpawnOffset: 80,

		BaseSpeed: 35,
		Accel:     3,
		MaxSpeed:  160,

		ClimberSize:         22,
		ClimberStartInset:   30,
		InitialFallVelocity: 200,
		FallGravity:         600,
		BottomInset:         20,
		TopY:                -20,

		Debounce: 300 * time.Millisecond,

		LogLimit: 100,
	}
}

// BottomY is the Y a falling climber comes to rest at.
func (t Tuning) BottomY() float64 {
	return t.Height - t.BottomInset
}

// ClimberStart is where the climber is parked on every run reset.
func (t Tuning) ClimberStart() Vec2 {
	return Pt(t.Width/2, t.Height-t.ClimberStartInset)
}

// ScrollSpeed is the linear ramp capped at MaxSpeed.
func (t Tuning) ScrollSpeed(elapsed float64) float64 {
	return min(t.MaxSpeed, t.BaseSpeed+t.Accel*elapsed)
}

// DefaultSeed is the three-hold layout every run starts from when no wall
// map supplies one.
func (t Tuning) DefaultSeed() []Vec2 {
	startY := t.Height - 90
	return []Vec2{
		Pt(t.Width/2-80, startY),
		Pt(t.Width/2+40, startY-t.SpawnGap),
		Pt(t.Width/2-50, startY-t.SpawnGap*2),
	}
}

// Validate reports the first value that would break the session.
func (t Tuning) Validate() error {
	var errs []error
	if t.Width <= 0 || t.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene size %vx%v must be positive", t.Width, t.Height))
	}
	if t.Width-2*t.SafeXMargin < 1 {
		errs = append(errs, fmt.Errorf("safe_x_margin %v leaves no room in width %v", t.SafeXMargin, t.Width))
	}
	if t.SpawnGap <= 0 {
		errs = append(errs, errors.New("spawn_gap must be positive"))
	}
	if t.ClickRadius <= 0 {
		errs = append(errs, errors.New("click_radius must be positive"))
	}
	if t.BufferCount < 1 {
		errs = append(errs, errors.New("buffer_count must be at least 1"))
	}
	if t.MaxSpeed < t.BaseSpeed {
		errs = append(errs, fmt.Errorf("max_speed %v below base_speed %v", t.MaxSpeed, t.BaseSpeed))
	}
	if t.Debounce < 0 {
		errs = append(errs, errors.New("debounce must not be negative"))
	}
	if t.LogLimit < 1 {
		errs = append(errs, errors.New("log_limit must be at least 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("climb: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
