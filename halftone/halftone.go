// Halftone renders the classic halftone look: a dot field whose size and
// opacity fall away from the canvas center, with a little per-dot jitter.
package main

import (
	"flag"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/patgen"
)

const (
	width   = 800 // pixels
	height  = 800 // pixels
	spacing = 16
	minSize = 2
	maxSize = 13
)

var seedFlag = flag.String("seed", "", "Numeric seed; empty picks one from the clock")

func main() {
	flag.Parse()
	seed, err := patgen.InitSeed(*seedFlag)
	if err != nil {
		fmt.Printf("Unable to set the seed: %v\n", err)
		return
	}

	cfg := patgen.Config{
		Width:            width,
		Height:           height,
		Spacing:          spacing,
		MinSize:          minSize,
		MaxSize:          maxSize,
		Pattern:          patgen.Radial,
		BaseOpacity:      0.95,
		RandomizeOpacity: true,
		Seed:             seed.Value(),
		Shape:            patgen.Dots,
		Color:            "#111111",
		Background:       "#fafaf5",
	}

	img, err := patgen.RenderImage(patgen.Generate(cfg), cfg)
	if err != nil {
		fmt.Printf("Unable to render: %v\n", err)
		return
	}

	fname := seed.Filename("halftone-", ".png")
	if err := gg.SavePNG(fname, img); err != nil {
		fmt.Printf("Unable write image: %v\n", err)
		return
	}
	fmt.Printf("Saved to %s\n", fname)
}
