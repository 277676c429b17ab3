package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/rockclimber/climb"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "click_radius: 42\nbase_speed: 50\ndebounce: 150ms\n")

	got, err := LoadTuning(path, climb.DefaultTuning())
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if got.ClickRadius != 42 {
		t.Fatalf("ClickRadius = %v, want 42", got.ClickRadius)
	}
	if got.BaseSpeed != 50 {
		t.Fatalf("BaseSpeed = %v, want 50", got.BaseSpeed)
	}
	if got.Debounce != 150*time.Millisecond {
		t.Fatalf("Debounce = %v, want 150ms", got.Debounce)
	}
	if got.SpawnGap != climb.DefaultTuning().SpawnGap {
		t.Fatalf("SpawnGap = %v, want default", got.SpawnGap)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	dir := t.TempDir()
	base := climb.DefaultTuning()

	tests := []struct {
		name string
		body string
	}{
		{"malformed", "click_radius: [1, 2\n"},
		{"invalid", "buffer_count: 0\n"},
		{"wrong_type", "spawn_gap: wide\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			writeFile(t, path, tt.body)

			got, err := LoadTuning(path, base)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got != base {
				t.Fatalf("failed load returned %+v, want base", got)
			}
		})
	}

	_, err := LoadTuning(filepath.Join(dir, "missing.yaml"), base)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file error = %v, want fs.ErrNotExist", err)
	}
}

func TestWatchTuningReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "click_radius: 30\n")

	w, err := WatchTuning(path, climb.DefaultTuning())
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "click_radius: 55\n")

	select {
	case u := <-w.Updates:
		if u.Err != nil || u.Tuning.ClickRadius != 55 {
			t.Fatalf("first update = %+v, want click_radius 55", u)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatchTuningSettlesOnFinalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "click_radius: 30\n")

	w, err := WatchTuning(path, climb.DefaultTuning())
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	// each write truncates first, so a read mid-burst sees an empty file
	for i := 0; i < 20; i++ {
		writeFile(t, path, "click_radius: 55\n")
	}

	var (
		last climb.Tuning
		seen int
	)
	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-w.Updates:
			if u.Err != nil {
				t.Fatalf("reload error: %v", u.Err)
			}
			last = u.Tuning
			seen++
			continue
		case <-time.After(600 * time.Millisecond):
		case <-deadline:
		}
		break
	}

	if seen == 0 {
		t.Fatal("no reload after the writes settled")
	}
	if last.ClickRadius != 55 {
		t.Fatalf("settled on click_radius %v after %d updates, want 55", last.ClickRadius, seen)
	}
}

func TestTuningWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "")

	w, err := WatchTuning(path, climb.DefaultTuning())
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Updates; ok {
		t.Fatal("Updates still open after Close")
	}
}

func TestWindowFitsClimbArea(t *testing.T) {
	if C.Width != int(Climb.Width) {
		t.Fatalf("window width %d, want %v", C.Width, Climb.Width)
	}
	if C.Height != int(Climb.Height)+UI.PanelHeight {
		t.Fatalf("window height %d, want climb area plus panel", C.Height)
	}
}
