package climb

import (
	"fmt"
	"testing"
)

func TestLogDropsOldest(t *testing.T) {
	l := NewLog(100)
	for i := 0; i < 150; i++ {
		l.Add(fmt.Sprintf("line %d", i))
	}

	if l.Len() != 100 {
		t.Fatalf("len = %d, want 100", l.Len())
	}
	if got := l.Lines()[0]; got != "line 50" {
		t.Fatalf("oldest = %q, want %q", got, "line 50")
	}
	if got, _ := l.Last(); got != "line 149" {
		t.Fatalf("newest = %q, want %q", got, "line 149")
	}

	tail := l.Tail(3)
	if len(tail) != 3 || tail[0] != "line 147" {
		t.Fatalf("tail = %v", tail)
	}
	if got := len(l.Tail(500)); got != 100 {
		t.Fatalf("oversized tail returned %d lines", got)
	}
}

func TestLogRecordsTraceCommandsOnly(t *testing.T) {
	l := NewLog(10)
	l.Record([]Command{
		{Kind: SpawnHold, Hold: 1},
		trace("Input at (1.0, 2.0)"),
		{Kind: Fell, Cause: FallMissed},
		trace("FALL triggered."),
	})

	if l.Len() != 2 {
		t.Fatalf("recorded %d lines, want 2", l.Len())
	}
	if !l.FellLast() {
		t.Fatal("FellLast = false after a fall trace")
	}

	l.Add("Run reset")
	if l.FellLast() {
		t.Fatal("FellLast = true after reset")
	}

	if _, ok := NewLog(3).Last(); ok {
		t.Fatal("Last reported a line on an empty log")
	}
}

func TestSessionTraceMatchesGameplay(t *testing.T) {
	s := started(t)
	l := NewLog(s.Tuning().LogLimit)
	h1 := mustHold(t, s, 1)

	l.Record(s.OnInput(h1.Pos, at(1)))

	want := []string{
		fmt.Sprintf("Input at (%.1f, %.1f), nearest hold: idx=1, dist=0.0, targetIndex=0", h1.Pos.X, h1.Pos.Y),
		"Tried to grab idx=1, but target is idx=0. FALL!",
		"FALL triggered.",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("trace = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
