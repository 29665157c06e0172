// Command wfc-gen synthesizes a new PNG that is locally indistinguishable
// from a seed PNG, using the overlapping Wave Function Collapse solver in
// github.com/kelindar/wfc. This binary is deliberately thin: it owns only
// the external collaborators spec.md marks out of scope for the core —
// image decode/encode, flag parsing, and wall-clock logging — and hands
// everything else to the library.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/kelindar/wfc"
)

func main() {
	var (
		input       = flag.String("in", "", "path to the seed PNG")
		output      = flag.String("out", "out.png", "path to write the synthesized PNG")
		patternSize = flag.Int("n", 3, "pattern (window) size")
		outW        = flag.Int("w", 48, "output width in pixels")
		outH        = flag.Int("h", 48, "output height in pixels")
		augment     = flag.Bool("augment", true, "augment the pattern table with rotations and reflections")
		seed        = flag.Uint64("seed", 1, "RNG seed for reproducible output")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("wfc-gen: -in is required")
	}

	seedImg, err := loadSeed(*input)
	if err != nil {
		log.Fatalf("wfc-gen: loading seed: %v", err)
	}

	start := time.Now()
	undecided := color.RGBA{R: 255, G: 0, B: 128, A: 255} // magenta sentinel, spec.md §4.8
	out, err := wfc.Solve(seedImg, *patternSize, *outH, *outW, *augment, wfc.NewHashSource(*seed), undecided)
	elapsed := time.Since(start)

	if out == nil {
		// No wave was ever built (e.g. PatternExtractionEmptyError) — there
		// is nothing to render, so report the solve error directly rather
		// than masking it behind saveOutput's own "empty output" error.
		log.Fatalf("wfc-gen: solve failed after %s: %v", elapsed, err)
	}

	if encErr := saveOutput(*output, out); encErr != nil {
		log.Fatalf("wfc-gen: writing output: %v", encErr)
	}

	if err != nil {
		log.Printf("wfc-gen: solve failed after %s: %v (partial output written to %s)", elapsed, err, *output)
		os.Exit(1)
	}
	log.Printf("wfc-gen: solved %dx%d in %s, wrote %s", *outW, *outH, elapsed, *output)
}

func loadSeed(path string) (*wfc.SeedImage[color.RGBA], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	pix := make([]color.RGBA, 0, h*w)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pix = append(pix, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		}
	}
	return wfc.NewSeedImage(h, w, pix), nil
}

func saveOutput(path string, pix [][]color.RGBA) error {
	if len(pix) == 0 {
		return fmt.Errorf("empty output")
	}
	h, w := len(pix), len(pix[0])
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, pix[y][x])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
