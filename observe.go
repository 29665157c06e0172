package wfc

// Observe collapses the cell at (y, x) — selected by Select — to a single
// surviving pattern via weighted random choice, per spec.md §4.5.
func Observe[X Pixel](wv *Wave[X], y, x int, rng Source) {
	wv.Cell(y, x).Collapse(wv.Weights, rng)
}
