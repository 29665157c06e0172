package wfc

import (
	"math"

	"github.com/kelindar/bitmap"
)

// Cell is one grid site's superposition of possible patterns: a dense
// bitset over pattern indices, all set at construction and only ever
// narrowed (monotonically) by propagation until a single bit survives.
type Cell struct {
	possible bitmap.Bitmap
}

// NewCell returns a cell with all p pattern bits set.
func NewCell(p int) *Cell {
	var bm bitmap.Bitmap
	if p > 0 {
		bm.Grow(uint32(p - 1))
	}
	for i := 0; i < p; i++ {
		bm.Set(uint32(i))
	}
	return &Cell{possible: bm}
}

// Possible exposes the cell's bitmap for read-only inspection (propagation's
// allowed-by-source mask computation iterates it directly).
func (c *Cell) Possible() bitmap.Bitmap {
	return c.possible
}

// Decided reports whether exactly one pattern remains possible.
func (c *Cell) Decided() bool {
	return c.possible.Count() == 1
}

// Contradiction reports whether no pattern remains possible.
func (c *Cell) Contradiction() bool {
	return c.possible.Count() == 0
}

// Entropy computes the Shannon entropy of the cell's remaining patterns,
// weighted by their seed frequencies. ok is false iff the cell is in
// contradiction (popcount 0); a decided cell (popcount 1) reports entropy
// 0 with ok true.
func (c *Cell) Entropy(weights []uint32) (entropy float64, ok bool) {
	n := c.possible.Count()
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		return 0, true
	}

	var total uint64
	c.possible.Range(func(x uint32) {
		total += uint64(weights[x])
	})
	totalF := float64(total)

	var e float64
	c.possible.Range(func(x uint32) {
		p := float64(weights[x]) / totalF
		e -= p * math.Log(p)
	})
	return e, true
}

// Collapse draws a single surviving pattern by weighted random choice over
// the currently allowed patterns and clears every other bit. Panics if the
// cell is already in contradiction.
func (c *Cell) Collapse(weights []uint32, rng Source) {
	var total uint64
	c.possible.Range(func(x uint32) {
		total += uint64(weights[x])
	})
	if total == 0 {
		panic("wfc: collapse called on a cell with no possible patterns")
	}

	k := uint64(rng.IntN(int(total)))
	chosen := uint32(0)
	found := false
	c.possible.Range(func(x uint32) {
		if found {
			return
		}
		w := uint64(weights[x])
		if k < w {
			chosen = x
			found = true
			return
		}
		k -= w
	})

	c.possible.Clear()
	c.possible.Set(chosen)
}

// IntersectWith bitwise-ANDs mask into the cell's possibility set and
// reports whether any bit was cleared as a result.
func (c *Cell) IntersectWith(mask bitmap.Bitmap) bool {
	before := c.possible.Count()
	c.possible.And(mask)
	after := c.possible.Count()
	return after != before
}
