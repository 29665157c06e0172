package wfc

import "fmt"

// ContradictionError reports that propagation emptied a cell's possibility
// set, or that the selector found an empty cell directly: no completion of
// the wave exists from this point without backtracking.
type ContradictionError struct {
	Y, X int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("wfc: contradiction at (%d, %d)", e.Y, e.X)
}

// UnexpectedNaNError reports that the entropy computation produced NaN.
// Unreachable when every live pattern has weight >= 1; kept defensive
// because the selector must terminate rather than loop on a bad comparison.
type UnexpectedNaNError struct {
	Y, X int
}

func (e *UnexpectedNaNError) Error() string {
	return fmt.Sprintf("wfc: unexpected NaN entropy at (%d, %d)", e.Y, e.X)
}

// PatternExtractionEmptyError reports that no patterns could be extracted
// from the seed image, because the pattern size exceeds the seed's
// dimensions or the seed itself has a zero dimension.
type PatternExtractionEmptyError struct {
	SeedH, SeedW, PatternSize int
}

func (e *PatternExtractionEmptyError) Error() string {
	return fmt.Sprintf("wfc: no patterns extracted (seed %dx%d, pattern size %d)",
		e.SeedH, e.SeedW, e.PatternSize)
}
