package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/kelindar/bench"
	"github.com/kelindar/wfc"
)

var sizes = []int{16, 32, 64}

func main() {
	bench.Run(func(b *bench.B) {
		runExtract(b)
		runCompat(b)
		runSolve(b)
	}, bench.WithDuration(10*time.Millisecond), bench.WithSamples(100))
}

func runExtract(b *bench.B) {
	for _, size := range sizes {
		seed := checkerSeed(size, size)
		name := fmt.Sprintf("extract %dx%d n=3", size, size)
		b.Run(name, func(i int) {
			_, _, _ = wfc.ExtractPatterns(seed, 3, true)
		})
	}
}

func runCompat(b *bench.B) {
	for _, size := range sizes {
		seed := checkerSeed(size, size)
		patterns, _, _ := wfc.ExtractPatterns(seed, 3, true)
		name := fmt.Sprintf("compat %d patterns n=3", len(patterns))
		b.Run(name, func(i int) {
			_ = wfc.BuildCompatibility(patterns, 3)
		})
	}
}

func runSolve(b *bench.B) {
	seed := checkerSeed(8, 8)
	for _, size := range sizes {
		name := fmt.Sprintf("solve %dx%d", size, size)
		b.Run(name, func(i int) {
			rng := wfc.NewHashSource(uint64(i))
			_, _ = wfc.Solve(seed, 3, size, size, true, rng, color.RGBA{R: 255, G: 0, B: 128, A: 255})
		})
	}
}

func checkerSeed(h, w int) *wfc.SeedImage[color.RGBA] {
	a := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	b := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	pix := make([]color.RGBA, 0, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (y+x)%2 == 0 {
				pix = append(pix, a)
			} else {
				pix = append(pix, b)
			}
		}
	}
	return wfc.NewSeedImage(h, w, pix)
}
