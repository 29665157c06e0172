package wfc

// Solve runs the full overlapping-WFC pipeline against seed: extract
// patterns, build the compatibility oracle, allocate an outH x outW wave,
// and drive the select/collapse/propagate loop of spec.md §4.7 to
// completion or contradiction. If pattern extraction fails, no wave is
// built and the output is nil. On a contradiction or a defensive NaN, the
// partial output — with undecided cells rendered as the sentinel pixel —
// is returned alongside the error, so callers can diagnose the failure;
// the core never retries or backtracks.
func Solve[X Pixel](seed *SeedImage[X], patternSize, outH, outW int, augment bool, rng Source, undecided X) ([][]X, error) {
	patterns, weights, err := ExtractPatterns(seed, patternSize, augment)
	if err != nil {
		return nil, err
	}

	compat := BuildCompatibility(patterns, patternSize)
	wv := NewWave(patterns, weights, compat, outH, outW)

	for {
		y, x, done, err := Select(wv, rng)
		if err != nil {
			return Render(wv, undecided), err
		}
		if done {
			break
		}

		Observe(wv, y, x, rng)
		if err := Propagate(wv, Coord{Y: y, X: x}); err != nil {
			return Render(wv, undecided), err
		}
	}

	return Render(wv, undecided), nil
}
