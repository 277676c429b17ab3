package climb

import "testing"

func holdsOf(pts ...Vec2) *Holds {
	h := &Holds{}
	for i, p := range pts {
		h.push(Hold{Index: i + 4, Pos: p})
	}
	return h
}

func TestHoldsGet(t *testing.T) {
	h := holdsOf(Pt(10, 10), Pt(20, 20), Pt(30, 30))

	for _, index := range []int{4, 5, 6} {
		got, ok := h.Get(index)
		if !ok || got.Index != index {
			t.Fatalf("Get(%d) = %+v,%v", index, got, ok)
		}
	}
	for _, index := range []int{0, 3, 7, -1} {
		if h.Has(index) {
			t.Fatalf("Has(%d) = true on holds 4..6", index)
		}
	}
}

func TestHoldsNearest(t *testing.T) {
	h := holdsOf(Pt(100, 100), Pt(150, 100), Pt(100, 40))

	tests := []struct {
		name   string
		p      Vec2
		radius float64
		want   int
		ok     bool
	}{
		{"on_hold", Pt(150, 100), 30, 5, true},
		{"closer_to_first", Pt(120, 100), 30, 4, true},
		{"exactly_radius", Pt(100, 70), 30, 4, true},
		{"beyond_radius", Pt(100, 131), 30, 0, false},
		{"nowhere_near", Pt(-400, 900), 30, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := h.Nearest(tt.p, tt.radius)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Index != tt.want {
				t.Fatalf("nearest = %d, want %d", got.Index, tt.want)
			}
		})
	}

	empty := &Holds{}
	if _, _, ok := empty.Nearest(Pt(0, 0), 1000); ok {
		t.Fatal("empty buffer returned a nearest hold")
	}
}

func TestHoldsPruneKeepsOrder(t *testing.T) {
	h := holdsOf(Pt(0, 600), Pt(0, 300), Pt(0, 521), Pt(0, 100))

	removed := h.prune(520)

	if len(removed) != 2 || removed[0] != 4 || removed[1] != 6 {
		t.Fatalf("removed = %v, want [4 6]", removed)
	}
	all := h.All()
	if len(all) != 2 || all[0].Index != 5 || all[1].Index != 7 {
		t.Fatalf("kept = %+v", all)
	}
	if top, _ := h.TopY(); top != 100 {
		t.Fatalf("top = %v, want 100", top)
	}
}

func TestHoldsScrollAndClear(t *testing.T) {
	h := holdsOf(Pt(5, 10), Pt(6, 20))
	h.scroll(2.5)
	if got, _ := h.Get(5); got.Pos != Pt(6, 22.5) {
		t.Fatalf("scrolled pos = %v", got.Pos)
	}

	removed := h.clear()
	if len(removed) != 2 || h.Len() != 0 {
		t.Fatalf("clear removed %v, %d left", removed, h.Len())
	}
	if _, ok := h.TopY(); ok {
		t.Fatal("TopY on empty buffer reported ok")
	}
}
