// Package batch inpaints every sample of a directory, optionally alongside
// OpenCV's implementation for comparison.
package batch

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-inpaint/images"
	"github.com/nvr-ai/go-inpaint/inpaint"
	"github.com/nvr-ai/go-inpaint/profiler"
	"github.com/nvr-ai/go-inpaint/util"
)

// Options configures a batch run.
type Options struct {
	// Inpaint configures each engine call.
	Inpaint inpaint.Options
	// Workers is the number of samples processed concurrently (default 1).
	Workers int
	// Reference also runs OpenCV's Telea inpainting and writes <name>_opencv.png.
	Reference bool
	// SheetWidth, when non-zero, writes <name>_sheet.png with thumbnails of
	// this width: input, result and (with Reference) the OpenCV result.
	SheetWidth uint
}

// Report describes the outcome of one sample.
type Report struct {
	// Name is the sample name.
	Name string
	// Filled is the number of pixels synthesized.
	Filled int
	// Checksum is the MD5 of the written result.
	Checksum string
	// ReferenceDiff is the mean absolute difference to OpenCV over the mask,
	// set when Options.Reference is enabled.
	ReferenceDiff float64
}

// Run processes every sample and returns one report per sample in input
// order. Each sample gets its own engine call; calls never share state.
//
// Arguments:
// - samples: The samples to process.
// - opts: Batch options.
// - prof: Optional profiler receiving timings and metrics.
//
// Returns:
// - []Report: The per-sample reports.
// - error: The first sample error, if any.
func Run(samples []util.Sample, opts Options, prof *profiler.Profiler) ([]Report, error) {
	if prof == nil {
		prof = profiler.New()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	reports := make([]Report, len(samples))
	errs := make([]error, len(samples))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, s := range samples {
		wg.Add(1)
		go func(idx int, sample util.Sample) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			report, err := processSample(sample, opts, prof)
			if err != nil {
				errs[idx] = fmt.Errorf("failed to process sample %s: %w", sample.Name, err)
				return
			}
			reports[idx] = report
		}(i, s)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func processSample(s util.Sample, opts Options, prof *profiler.Profiler) (Report, error) {
	report := Report{Name: s.Name}

	done := prof.StartOperation("load")
	src, err := images.ReadFile(s.InputPath)
	if err != nil {
		return report, err
	}
	maskImg, err := images.ReadFile(s.MaskPath)
	if err != nil {
		return report, err
	}
	done()

	mask := images.MaskFromImage(maskImg)
	grid := images.ToGrid(src)

	res, err := inpaint.Run(grid, mask, opts.Inpaint)
	if err != nil {
		return report, errors.Wrap(err, "inpaint")
	}
	prof.RecordDuration("inpaint", res.Duration)
	prof.RecordMetric("filled_pixels", float64(res.Filled))
	report.Filled = res.Filled

	out := images.FromGrid(grid, src)
	report.Checksum = images.ComputeImageChecksum(out)
	if err := images.WriteFile(s.OutputPath(), out); err != nil {
		return report, err
	}

	var refImg image.Image
	if opts.Reference {
		done := prof.StartOperation("opencv")
		ref, err := images.ReferenceInpaint(src, mask, opts.Inpaint.Radius)
		done()
		if err != nil {
			return report, errors.Wrap(err, "opencv inpaint")
		}
		if err := images.WriteFile(s.ReferencePath(), ref); err != nil {
			return report, err
		}
		diff, err := images.MaskedMeanAbsDiff(out, ref, mask)
		if err != nil {
			return report, err
		}
		report.ReferenceDiff = diff
		prof.RecordMetric("opencv_diff", diff)
		refImg = ref
	}

	if opts.SheetWidth > 0 {
		sheet := images.ContactSheet(opts.SheetWidth, src, out, refImg)
		if err := images.WriteFile(s.SheetPath(), sheet); err != nil {
			return report, err
		}
	}

	if opts.Inpaint.Debug {
		log.Printf("[DEBUG] %s: filled %d pixels in %v, checksum %s", s.Name, res.Filled, res.Duration, report.Checksum)
	}
	return report, nil
}
