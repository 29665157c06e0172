package wfc

import "github.com/kelindar/bitmap"

// firstSetBit returns the lowest set bit in bm. Panics if bm is empty
// (callers only use this on decided cells, which have exactly one bit set).
func firstSetBit(bm bitmap.Bitmap) uint32 {
	var result uint32
	found := false
	bm.Range(func(x uint32) {
		if !found {
			result = x
			found = true
		}
	})
	if !found {
		panic("wfc: firstSetBit called on an empty bitmap")
	}
	return result
}

// Render maps the wave to an HxW pixel grid: a decided cell renders as the
// top-left pixel of its single surviving pattern (spec.md §4.8's fixed
// convention); an undecided cell — only possible after a reported failure,
// since Solve only returns once the wave is done or contradicted — renders
// as the caller-supplied sentinel pixel.
func Render[X Pixel](wv *Wave[X], undecided X) [][]X {
	out := make([][]X, wv.H)
	for y := 0; y < wv.H; y++ {
		row := make([]X, wv.W)
		for x := 0; x < wv.W; x++ {
			cell := wv.Cell(y, x)
			if cell.Decided() {
				idx := firstSetBit(cell.Possible())
				row[x] = wv.Patterns[idx].At(0, 0)
			} else {
				row[x] = undecided
			}
		}
		out[y] = row
	}
	return out
}
