package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/nvr-ai/go-inpaint/batch"
	"github.com/nvr-ai/go-inpaint/inpaint"
	"github.com/nvr-ai/go-inpaint/profiler"
	"github.com/nvr-ai/go-inpaint/util"
)

const (
	// DefaultSampleDir is the directory scanned for <name>_in.png / <name>_mask.png pairs.
	DefaultSampleDir = "samples"
	// DefaultSheetWidth is the thumbnail width of comparison sheets.
	DefaultSheetWidth = 320
)

func main() {
	var (
		dir        string
		radius     int
		workers    int
		reference  bool
		sheet      bool
		sheetWidth uint
		debug      bool
	)
	flag.StringVar(&dir, "dir", DefaultSampleDir, "Directory containing <name>_in.png and <name>_mask.png pairs")
	flag.IntVar(&radius, "radius", inpaint.DefaultRadius, "Neighborhood radius")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "Number of samples processed concurrently")
	flag.BoolVar(&reference, "opencv", true, "Also inpaint with OpenCV (Telea) and report the difference")
	flag.BoolVar(&sheet, "sheet", false, "Write a side-by-side comparison sheet per sample")
	flag.UintVar(&sheetWidth, "sheet-width", DefaultSheetWidth, "Thumbnail width in comparison sheets")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	samples, err := util.LoadSamplePairs(dir)
	if err != nil {
		log.Fatalf("Failed to load samples: %v", err)
	}
	if len(samples) == 0 {
		log.Printf("No samples found in %s", dir)
		return
	}

	opts := batch.Options{
		Inpaint: inpaint.Options{
			Radius:   radius,
			Quantize: true,
			Debug:    debug,
		},
		Workers:   workers,
		Reference: reference,
	}
	if sheet {
		opts.SheetWidth = sheetWidth
	}

	prof := profiler.New()
	reports, err := batch.Run(samples, opts, prof)
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}

	for _, r := range reports {
		if reference {
			log.Printf("%s: filled %d pixels, mean abs diff to opencv %.3f", r.Name, r.Filled, r.ReferenceDiff)
		} else {
			log.Printf("%s: filled %d pixels", r.Name, r.Filled)
		}
	}
	prof.Report(os.Stdout)
}
