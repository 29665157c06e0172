package wfc

import "github.com/kelindar/bitmap"

// Coord is a (y, x) grid coordinate.
type Coord struct {
	Y, X int
}

// allowedMask computes the allowed-by-source mask M = union of C[(i, Δ)]
// over every pattern i still possible at src, per spec.md §4.6 step 2.
func allowedMask[X Pixel](wv *Wave[X], src *Cell, delta Offset) bitmap.Bitmap {
	var out bitmap.Bitmap
	if len(wv.Patterns) > 0 {
		out.Grow(uint32(len(wv.Patterns) - 1))
	}
	src.Possible().Range(func(i uint32) {
		out.Or(wv.Compat.Row(int(i), delta))
	})
	return out
}

// Propagate drains a worklist seeded with the given coordinates: each dirty
// cell re-derives every neighbor within its (2N-1)x(2N-1) effect region from
// the compatibility oracle and intersects the result into the neighbor,
// enqueuing any neighbor that actually changed. The drain runs to full
// quiescence regardless of contradictions (intersecting into an already-
// empty cell is a no-op, and the total bit count across the wave strictly
// shrinks, so the loop always terminates). The first cell observed to empty
// out is returned as a *ContradictionError; nil if none did.
func Propagate[X Pixel](wv *Wave[X], seed ...Coord) error {
	inQueue := make(map[Coord]bool, len(seed))
	queue := make([]Coord, 0, len(seed))
	push := func(c Coord) {
		if !inQueue[c] {
			inQueue[c] = true
			queue = append(queue, c)
		}
	}
	for _, c := range seed {
		push(c)
	}

	var firstErr error
	offsets := Offsets(wv.N)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		inQueue[cur] = false

		src := wv.Cell(cur.Y, cur.X)
		for _, delta := range offsets {
			ty, tx, ok := defaultTopology.neighbor(cur.Y, cur.X, delta.DY, delta.DX, wv.H, wv.W)
			if !ok {
				continue
			}

			mask := allowedMask(wv, src, delta)
			target := wv.Cell(ty, tx)
			if !target.IntersectWith(mask) {
				continue
			}
			if firstErr == nil && target.Contradiction() {
				firstErr = &ContradictionError{Y: ty, X: tx}
			}
			push(Coord{Y: ty, X: tx})
		}
	}

	return firstErr
}
