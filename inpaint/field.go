package inpaint

import (
	"math"
)

// flag is the processing state of a pixel. Transitions are monotonic:
// unknown -> band -> known.
type flag uint8

const (
	known flag = iota
	band
	unknown
)

// field is the per-call working state shared by the solver, the gradient
// estimator and the reconstructor.
type field struct {
	height int
	width  int
	// dists is the signed distance to the initial mask contour, +Inf while unresolved.
	dists []float64
	flags []flag
}

func newField(m *Mask) *field {
	f := &field{
		height: m.Height,
		width:  m.Width,
		dists:  make([]float64, len(m.Bits)),
		flags:  make([]flag, len(m.Bits)),
	}
	for i, masked := range m.Bits {
		f.dists[i] = math.Inf(1)
		if masked {
			f.flags[i] = unknown
		}
	}
	return f
}

func (f *field) inBounds(y, x int) bool {
	return y >= 0 && y < f.height && x >= 0 && x < f.width
}

func (f *field) index(y, x int) int {
	return y*f.width + x
}

func (f *field) flag(y, x int) flag {
	return f.flags[y*f.width+x]
}

func (f *field) dist(y, x int) float64 {
	return f.dists[y*f.width+x]
}

// resolved reports whether (y, x) is known and carries a finite distance.
func (f *field) resolved(y, x int) bool {
	i := f.index(y, x)
	return f.flags[i] == known && !math.IsInf(f.dists[i], 0)
}

// inverted returns a copy with known and unknown swapped. Band pixels keep
// their flag and the distance slice is shared.
func (f *field) inverted() *field {
	inv := &field{
		height: f.height,
		width:  f.width,
		dists:  f.dists,
		flags:  make([]flag, len(f.flags)),
	}
	for i, fl := range f.flags {
		switch fl {
		case known:
			inv.flags[i] = unknown
		case unknown:
			inv.flags[i] = known
		default:
			inv.flags[i] = fl
		}
	}
	return inv
}

// neighbors4 lists the axis-adjacent offsets in the order pixels are expanded:
// top, left, bottom, right.
var neighbors4 = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
