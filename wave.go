package wfc

// Wave is the HxW grid of cells being solved. The pattern table, weights,
// and compatibility table are built once from the seed and are immutable
// for the lifetime of a Wave; only the cells mutate, monotonically, as
// propagation and collapse narrow their possibility sets.
type Wave[X Pixel] struct {
	H, W     int
	N        int
	Patterns []Pattern[X]
	Weights  []uint32
	Compat   *Compatibility

	cells []*Cell // row-major, length H*W
}

// NewWave allocates an HxW wave over the given pattern table, weights, and
// compatibility table, with every cell initialized to "all patterns
// possible".
func NewWave[X Pixel](patterns []Pattern[X], weights []uint32, compat *Compatibility, h, w int) *Wave[X] {
	if h < compat.N || w < compat.N {
		panic("wfc: output dimensions must be at least the pattern size")
	}
	cells := make([]*Cell, h*w)
	for i := range cells {
		cells[i] = NewCell(len(patterns))
	}
	return &Wave[X]{
		H:        h,
		W:        w,
		N:        compat.N,
		Patterns: patterns,
		Weights:  weights,
		Compat:   compat,
		cells:    cells,
	}
}

// Cell returns the cell at (y, x). Index-based access is intentional: the
// propagator holds a short-lived reference to one cell at a time rather
// than a long-lived exclusive reference to the whole wave, since it reads a
// source cell while writing neighboring target cells (spec.md §9).
func (wv *Wave[X]) Cell(y, x int) *Cell {
	return wv.cells[y*wv.W+x]
}

// InBounds reports whether (y, x) lies within the wave.
func (wv *Wave[X]) InBounds(y, x int) bool {
	return y >= 0 && y < wv.H && x >= 0 && x < wv.W
}

// AllDecided reports whether every cell has collapsed to a single pattern.
func (wv *Wave[X]) AllDecided() bool {
	for _, c := range wv.cells {
		if !c.Decided() {
			return false
		}
	}
	return true
}
