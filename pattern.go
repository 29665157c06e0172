package wfc

import (
	"fmt"
	"strings"
)

// SeedImage is a 2D array of pixels the pattern extractor slides its window
// over. Row-major storage: Pix[y*W+x] is the pixel at (y, x).
type SeedImage[X Pixel] struct {
	H, W int
	Pix  []X
}

// NewSeedImage builds a SeedImage from a row-major pixel slice of length
// h*w. Panics if the slice length does not match, a programmer error per
// spec.md §7.
func NewSeedImage[X Pixel](h, w int, pix []X) *SeedImage[X] {
	if len(pix) != h*w {
		panic(fmt.Sprintf("wfc: seed image pixel count %d does not match %dx%d", len(pix), h, w))
	}
	return &SeedImage[X]{H: h, W: w, Pix: pix}
}

// At returns the pixel at (y, x).
func (s *SeedImage[X]) At(y, x int) X {
	return s.Pix[y*s.W+x]
}

// Pattern is an NxN window of pixels, canonical: two patterns built from
// pixel-equal grids compare equal and are deduplicated to the same table
// entry by ExtractPatterns.
type Pattern[X Pixel] struct {
	N   int
	Pix []X // row-major, length N*N
}

// At returns the pixel at (y, x) within the pattern.
func (p Pattern[X]) At(y, x int) X {
	return p.Pix[y*p.N+x]
}

// key serializes the pattern's pixels into a string usable as a map key.
// Pixel values are formatted with %v, which is sufficient for the fixed-size
// comparable pixel types this library targets (RGB triples, palette
// indices) without requiring pixels to implement their own hashing.
func (p Pattern[X]) key() string {
	var b strings.Builder
	b.Grow(p.N * p.N * 4)
	for _, px := range p.Pix {
		fmt.Fprintf(&b, "%v|", px)
	}
	return b.String()
}

// transposeGrid returns the transpose of an NxN pixel grid.
func transposeGrid[X Pixel](n int, pix []X) []X {
	out := make([]X, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x*n+y] = pix[y*n+x]
		}
	}
	return out
}

// flipHGrid returns the horizontal (left-right) mirror of an NxN pixel grid.
func flipHGrid[X Pixel](n int, pix []X) []X {
	out := make([]X, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+(n-1-x)] = pix[y*n+x]
		}
	}
	return out
}

// rotate90CW rotates an NxN pixel grid 90 degrees clockwise: transpose
// followed by a horizontal flip, per spec.md §4.1.
func rotate90CW[X Pixel](n int, pix []X) []X {
	return flipHGrid(n, transposeGrid(n, pix))
}

// orientations returns the 8 orientations of an NxN pixel grid: identity,
// the three clockwise rotations, and the horizontal flip of each.
func orientations[X Pixel](n int, pix []X) [][]X {
	rot0 := pix
	rot90 := rotate90CW(n, rot0)
	rot180 := rotate90CW(n, rot90)
	rot270 := rotate90CW(n, rot180)
	return [][]X{
		rot0, rot90, rot180, rot270,
		flipHGrid(n, rot0), flipHGrid(n, rot90), flipHGrid(n, rot180), flipHGrid(n, rot270),
	}
}

// ExtractPatterns slides an NxN window over seed in row-major order and
// returns the distinct patterns together with their occurrence-weighted
// frequencies. When augment is true, every window additionally contributes
// its 7 non-identity symmetries (three rotations, four reflections),
// incrementing the weight of whichever canonical pattern each orientation
// lands on. Returns PatternExtractionEmptyError if n exceeds either seed
// dimension.
func ExtractPatterns[X Pixel](seed *SeedImage[X], n int, augment bool) ([]Pattern[X], []uint32, error) {
	if n <= 0 {
		panic("wfc: pattern size must be positive")
	}
	if n > seed.H || n > seed.W {
		return nil, nil, &PatternExtractionEmptyError{SeedH: seed.H, SeedW: seed.W, PatternSize: n}
	}

	index := make(map[string]int)
	var patterns []Pattern[X]
	var weights []uint32

	record := func(pix []X) {
		p := Pattern[X]{N: n, Pix: pix}
		k := p.key()
		if i, ok := index[k]; ok {
			weights[i]++
			return
		}
		index[k] = len(patterns)
		patterns = append(patterns, p)
		weights = append(weights, 1)
	}

	for y := 0; y+n <= seed.H; y++ {
		for x := 0; x+n <= seed.W; x++ {
			window := make([]X, n*n)
			for wy := 0; wy < n; wy++ {
				for wx := 0; wx < n; wx++ {
					window[wy*n+wx] = seed.At(y+wy, x+wx)
				}
			}

			if !augment {
				record(window)
				continue
			}
			for _, o := range orientations(n, window) {
				record(o)
			}
		}
	}

	if len(patterns) == 0 {
		return nil, nil, &PatternExtractionEmptyError{SeedH: seed.H, SeedW: seed.W, PatternSize: n}
	}
	return patterns, weights, nil
}
