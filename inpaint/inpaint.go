package inpaint

import (
	"log"
	"time"

	"github.com/pkg/errors"
)

// DefaultRadius is the neighborhood radius used when none is given.
const DefaultRadius = 5

// Options configures an inpainting run.
type Options struct {
	// Radius is the neighborhood radius, in pixels, used to reconstruct each
	// pixel. Must be >= 1.
	Radius int
	// Quantize rounds every synthesized value to the nearest integer, reproducing the
	// behavior of an 8-bit pixel buffer being filled in place.
	Quantize bool
	// Debug enables [DEBUG] logging of the run's phases.
	Debug bool
}

// DefaultOptions returns the options used by Inpaint.
func DefaultOptions() Options {
	return Options{
		Radius: DefaultRadius,
	}
}

// Result summarizes a run.
type Result struct {
	// Filled is the number of pixels synthesized.
	Filled int
	// Extended is the number of known pixels that received a distance from
	// the boundary extension pass.
	Extended int
	// MaxDistance is the largest contour distance resolved inside the mask.
	MaxDistance float64
	// Duration is the wall time of the run.
	Duration time.Duration
}

// Inpaint fills every masked pixel of g in place using a neighborhood of the
// given radius. Pixels outside the mask are left untouched.
//
// Arguments:
//   - g: The pixel grid, mutated in place.
//   - m: The mask, same height and width as g.
//   - radius: The neighborhood radius (DefaultRadius is a good start).
//
// Returns:
//   - error: An error if the inputs are inconsistent.
func Inpaint(g *Grid, m *Mask, radius int) error {
	opts := DefaultOptions()
	opts.Radius = radius
	_, err := Run(g, m, opts)
	return err
}

// Run is Inpaint with options and run statistics.
func Run(g *Grid, m *Mask, opts Options) (*Result, error) {
	return run(g, m, opts, nil)
}

// resolveFunc observes pixels in the order they leave the band.
type resolveFunc func(y, x int, dist float64)

func run(g *Grid, m *Mask, opts Options, onResolve resolveFunc) (*Result, error) {
	start := time.Now()
	if err := validate(g, m, opts); err != nil {
		return nil, err
	}

	f := newField(m)
	nb := f.seedContour(m)
	if opts.Debug {
		log.Printf("[DEBUG] Inpainting %dx%d grid: %d masked pixels, %d contour pixels, radius %d",
			g.Width, g.Height, m.Count(), nb.Len(), opts.Radius)
	}

	res := &Result{}
	res.Extended = f.extendOutside(nb.clone(), opts.Radius)
	if opts.Debug {
		log.Printf("[DEBUG] Boundary extension resolved %d known pixels", res.Extended)
	}

	if err := f.propagate(g, nb, opts, res, onResolve); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	if opts.Debug {
		log.Printf("[DEBUG] Filled %d pixels, max distance %.3f, took %s",
			res.Filled, res.MaxDistance, res.Duration)
	}
	return res, nil
}

func validate(g *Grid, m *Mask, opts Options) error {
	if g == nil || m == nil {
		return ErrNilInput
	}
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "input validation failed")
	}
	if g.Height != m.Height || g.Width != m.Width || len(m.Bits) != m.Height*m.Width {
		return errors.Wrapf(ErrDimensionMismatch, "grid %dx%d, mask %dx%d",
			g.Width, g.Height, m.Width, m.Height)
	}
	if opts.Radius < 1 {
		return errors.Wrapf(ErrInvalidRadius, "got %d", opts.Radius)
	}
	return nil
}

// propagate runs the main fast marching loop: the closest band pixel becomes
// known and each of its unknown neighbors gets a distance and a color before
// joining the band.
func (f *field) propagate(g *Grid, nb narrowBand, opts Options, res *Result, onResolve resolveFunc) error {
	sums := make([]float64, g.Channels)

	for nb.Len() > 0 {
		item := nb.pop()
		f.flags[f.index(item.y, item.x)] = known
		if onResolve != nil {
			onResolve(item.y, item.x, item.dist)
		}

		for _, d := range neighbors4 {
			ny, nx := item.y+d[0], item.x+d[1]
			if !f.inBounds(ny, nx) || f.flag(ny, nx) != unknown {
				continue
			}

			dist := f.solveDistance(ny, nx, item.dist)
			i := f.index(ny, nx)
			f.dists[i] = dist.value

			if err := f.reconstruct(g, ny, nx, opts.Radius, sums, opts.Quantize); err != nil {
				return err
			}

			f.flags[i] = band
			nb.push(bandItem{dist: dist.value, y: ny, x: nx})

			res.Filled++
			if dist.value > res.MaxDistance {
				res.MaxDistance = dist.value
			}
		}
	}
	return nil
}
