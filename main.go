package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nvr-ai/go-inpaint/images"
	"github.com/nvr-ai/go-inpaint/inpaint"
)

func main() {
	// Parse command line arguments
	var (
		radius   int
		quantize bool
		debug    bool
	)
	flag.IntVar(&radius, "radius", inpaint.DefaultRadius, "Neighborhood radius")
	flag.IntVar(&radius, "r", inpaint.DefaultRadius, "Neighborhood radius (shorthand)")
	flag.BoolVar(&quantize, "quantize", true, "Round synthesized values as they are written, like an 8-bit buffer")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <input_img> <mask_img> <output_img>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), inpaint.Options{
		Radius:   radius,
		Quantize: quantize,
		Debug:    debug,
	}); err != nil {
		log.Fatalf("Inpainting failed: %v", err)
	}
}

// run inpaints the image at inPath with the mask at maskPath and writes the
// result to outPath.
func run(inPath, maskPath, outPath string, opts inpaint.Options) error {
	src, err := images.ReadFile(inPath)
	if err != nil {
		return err
	}
	maskImg, err := images.ReadFile(maskPath)
	if err != nil {
		return err
	}

	grid := images.ToGrid(src)
	mask := images.MaskFromImage(maskImg)

	res, err := inpaint.Run(grid, mask, opts)
	if err != nil {
		return err
	}
	log.Printf("Filled %d pixels of %s in %v", res.Filled, inPath, res.Duration)

	return images.WriteFile(outPath, images.FromGrid(grid, src))
}
