package wfc

import "github.com/kelindar/bitmap"

// Offset is a signed (dy, dx) pair relating a source cell to a target cell
// during propagation, or a source pattern to a target pattern in the
// compatibility table.
type Offset struct {
	DY, DX int
}

// Neg returns the opposite offset.
func (o Offset) Neg() Offset {
	return Offset{DY: -o.DY, DX: -o.DX}
}

// Offsets returns every admissible offset for a pattern size n: all (dy, dx)
// pairs in (-n+1..n-1)^2, including the (0,0) self-offset.
func Offsets(n int) []Offset {
	offs := make([]Offset, 0, (2*n-1)*(2*n-1))
	for dy := -(n - 1); dy <= n-1; dy++ {
		for dx := -(n - 1); dx <= n-1; dx++ {
			offs = append(offs, Offset{DY: dy, DX: dx})
		}
	}
	return offs
}

// Compatibility is the precomputed oracle C[(i, Δ)] -> bitset over j: bit j
// is set iff pattern j may sit at offset Δ from pattern i (their overlap
// region agrees pixel-for-pixel). Immutable once built.
type Compatibility struct {
	N    int
	P    int
	rows map[Offset][]bitmap.Bitmap // rows[Δ][i] = bitmap over j
}

// Row returns the bitmap of patterns j compatible with pattern i at offset
// delta. Panics (programmer error) if i or delta are out of range.
func (c *Compatibility) Row(i int, delta Offset) bitmap.Bitmap {
	row, ok := c.rows[delta]
	if !ok {
		panic("wfc: offset out of range for this compatibility table")
	}
	if i < 0 || i >= len(row) {
		panic("wfc: pattern index out of range")
	}
	return row[i]
}

// overlap reports whether pi, placed at a local origin of (0, 0), agrees
// pixel-for-pixel with pj, placed at a local origin of (dy, dx), over the
// region where their NxN extents overlap. delta is an origin-to-origin
// offset (mirrored by the grid offset Propagate uses between a source cell
// and its target), not a direct pixel-index shift.
func overlap[X Pixel](pi, pj Pattern[X], dy, dx int) bool {
	n := pi.N
	yLo, yHi := 0, n
	if dy > yLo {
		yLo = dy
	}
	if n+dy < yHi {
		yHi = n + dy
	}
	xLo, xHi := 0, n
	if dx > xLo {
		xLo = dx
	}
	if n+dx < xHi {
		xHi = n + dx
	}

	for y := yLo; y < yHi; y++ {
		for x := xLo; x < xHi; x++ {
			if pi.At(y, x) != pj.At(y-dy, x-dx) {
				return false
			}
		}
	}
	return true
}

// BuildCompatibility precomputes the compatibility oracle for a pattern
// table of patterns all sharing size n. For every offset and every ordered
// pattern pair (i, j) it records whether j may be placed at that offset
// relative to i, per spec.md §4.2.
func BuildCompatibility[X Pixel](patterns []Pattern[X], n int) *Compatibility {
	p := len(patterns)
	rows := make(map[Offset][]bitmap.Bitmap, (2*n-1)*(2*n-1))

	for _, delta := range Offsets(n) {
		row := make([]bitmap.Bitmap, p)
		for i := 0; i < p; i++ {
			var bm bitmap.Bitmap
			if p > 0 {
				bm.Grow(uint32(p - 1))
			}
			for j := 0; j < p; j++ {
				if overlap(patterns[i], patterns[j], delta.DY, delta.DX) {
					bm.Set(uint32(j))
				}
			}
			row[i] = bm
		}
		rows[delta] = row
	}

	return &Compatibility{N: n, P: p, rows: rows}
}
