package climb

import (
	"strings"
	"testing"
)

func TestScrollSpeedRamp(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 35},
		{10, 65},
		{41.6, 159.8},
		{1000, 160},
	}
	for _, tt := range tests {
		if got := tun.ScrollSpeed(tt.elapsed); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Fatalf("ScrollSpeed(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestSeparate(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		name     string
		x, prevX float64
		want     float64
	}{
		{"far_enough", 100, 200, 100},
		{"left_pushed_left", 100, 110, 60},
		{"right_pushed_right", 250, 240, 290},
		{"clamped_to_right_margin", 320, 300, 336},
		{"clamped_to_left_margin", 30, 40, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tun.separate(tt.x, tt.prevX); got != tt.want {
				t.Fatalf("separate(%v, %v) = %v, want %v", tt.x, tt.prevX, got, tt.want)
			}
		})
	}
}

func TestDefaultGeometry(t *testing.T) {
	tun := DefaultTuning()
	if err := tun.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if got := tun.BottomY(); got != 460 {
		t.Fatalf("BottomY = %v, want 460", got)
	}
	if got := tun.ClimberStart(); got != Pt(180, 450) {
		t.Fatalf("ClimberStart = %v", got)
	}
	seed := tun.DefaultSeed()
	want := []Vec2{Pt(100, 390), Pt(220, 300), Pt(130, 210)}
	for i := range want {
		if seed[i] != want[i] {
			t.Fatalf("seed[%d] = %v, want %v", i, seed[i], want[i])
		}
	}
}

func TestValidateJoinsProblems(t *testing.T) {
	tun := DefaultTuning()
	tun.SpawnGap = 0
	tun.MaxSpeed = 1
	tun.LogLimit = 0

	err := tun.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, part := range []string{"spawn_gap", "max_speed", "log_limit"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("error %q does not mention %s", err, part)
		}
	}
}
