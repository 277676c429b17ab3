package climb

import (
	"math"
	"sort"
)

// Hold is a climbable target. Index is assigned at spawn and never reused
// within a run.
type Hold struct {
	Index int
	Pos   Vec2
}

// Holds is the live hold buffer, kept ordered by index so lookups are a
// binary search over stable integers rather than identity checks.
type Holds struct {
	items []Hold
}

func (h *Holds) Len() int {
	return len(h.items)
}

// All returns the live holds ordered by index. Callers must not modify it.
func (h *Holds) All() []Hold {
	return h.items
}

// Get looks a hold up by its spawn index.
func (h *Holds) Get(index int) (Hold, bool) {
	i := sort.Search(len(h.items), func(i int) bool { return h.items[i].Index >= index })
	if i < len(h.items) && h.items[i].Index == index {
		return h.items[i], true
	}
	return Hold{}, false
}

func (h *Holds) Has(index int) bool {
	_, ok := h.Get(index)
	return ok
}

// Last returns the most recently spawned hold.
func (h *Holds) Last() (Hold, bool) {
	if len(h.items) == 0 {
		return Hold{}, false
	}
	return h.items[len(h.items)-1], true
}

// TopY returns the smallest Y among live holds.
func (h *Holds) TopY() (float64, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	top := math.Inf(1)
	for _, hold := range h.items {
		top = math.Min(top, hold.Pos.Y)
	}
	return top, true
}

// Nearest returns the hold closest to p, provided it lies within radius.
func (h *Holds) Nearest(p Vec2, radius float64) (Hold, float64, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, hold := range h.items {
		d := math.Hypot(hold.Pos.X-p.X, hold.Pos.Y-p.Y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > radius {
		return Hold{}, 0, false
	}
	return h.items[best], bestDist, true
}

func (h *Holds) push(hold Hold) {
	h.items = append(h.items, hold)
}

func (h *Holds) scroll(dy float64) {
	for i := range h.items {
		h.items[i].Pos.Y += dy
	}
}

// prune drops every hold below limitY and returns their indices.
func (h *Holds) prune(limitY float64) []int {
	var removed []int
	kept := h.items[:0]
	for _, hold := range h.items {
		if hold.Pos.Y > limitY {
			removed = append(removed, hold.Index)
			continue
		}
		kept = append(kept, hold)
	}
	h.items = kept
	return removed
}

func (h *Holds) clear() []int {
	removed := make([]int, len(h.items))
	for i, hold := range h.items {
		removed[i] = hold.Index
	}
	h.items = h.items[:0]
	return removed
}
