package app

import "slices"

// levelHistory keeps the most recent smoothed levels for the sparkline,
// oldest first. It is display state only and never feeds the filter.
type levelHistory struct {
	levels []float64
	limit  int
}

func newLevelHistory(limit int) *levelHistory {
	return &levelHistory{limit: max(limit, 1)}
}

func (h *levelHistory) add(level float64) {
	if len(h.levels) == h.limit {
		h.levels = slices.Delete(h.levels, 0, 1)
	}
	h.levels = append(h.levels, level)
}

// snapshot copies the levels so the view never aliases the live slice.
func (h *levelHistory) snapshot() []float64 {
	return slices.Clone(h.levels)
}

func (h *levelHistory) size() int { return len(h.levels) }

func (h *levelHistory) reset() { h.levels = h.levels[:0] }
