package wfc

import "math"

// Select scans every cell and returns the coordinates of the undecided cell
// with the lowest noised entropy, breaking ties (and mildly randomizing the
// scan order) via a fresh per-cell Uniform[0,1) sample added to the compared
// value. done is true when every cell is already decided. err is a
// *ContradictionError if any cell has no possible patterns, or a
// *UnexpectedNaNError if an entropy computation produced NaN (defensive;
// unreachable when every live pattern has weight >= 1).
func Select[X Pixel](wv *Wave[X], rng Source) (y, x int, done bool, err error) {
	const noiseLevel = 1.0

	found := false
	bestY, bestX := -1, -1
	best := math.MaxFloat64

	for row := 0; row < wv.H; row++ {
		for col := 0; col < wv.W; col++ {
			cell := wv.Cell(row, col)
			e, ok := cell.Entropy(wv.Weights)
			if !ok {
				return row, col, false, &ContradictionError{Y: row, X: col}
			}
			if e <= 0 {
				continue
			}
			if math.IsNaN(e) {
				return row, col, false, &UnexpectedNaNError{Y: row, X: col}
			}

			noised := e + rng.Float64()*noiseLevel
			if !found || noised < best {
				found = true
				best = noised
				bestY, bestX = row, col
			}
		}
	}

	if !found {
		return 0, 0, true, nil
	}
	return bestY, bestX, false, nil
}
