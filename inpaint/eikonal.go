package inpaint

import (
	"math"
)

// distance is the outcome of one eikonal evaluation. ok is false when the
// neighbor pair could not produce a value.
type distance struct {
	value float64
	ok    bool
}

func solved(v float64) distance {
	return distance{value: v, ok: true}
}

var unsolvable = distance{}

// min returns the smaller of two results, ignoring unsolvable ones.
func (d distance) min(o distance) distance {
	if !o.ok {
		return d
	}
	if !d.ok || o.value < d.value {
		return o
	}
	return d
}

// solveEikonal estimates the distance of a pixel from two of its neighbors,
// (y1, x1) on one axis and (y2, x2) on the other, assuming a unit gradient.
func (f *field) solveEikonal(y1, x1, y2, x2 int) distance {
	if !f.inBounds(y1, x1) || !f.inBounds(y2, x2) {
		return unsolvable
	}

	known1 := f.resolved(y1, x1)
	known2 := f.resolved(y2, x2)

	if known1 && known2 {
		d1 := f.dist(y1, x1)
		d2 := f.dist(y2, x2)
		disc := 2.0 - (d1-d2)*(d1-d2)
		if disc > 0.0 {
			r := math.Sqrt(disc)
			s := (d1 + d2 - r) / 2.0
			if s >= d1 && s >= d2 {
				return solved(s)
			}
			s += r
			if s >= d1 && s >= d2 {
				return solved(s)
			}
			return unsolvable
		}
		// Too far apart for a two-sided solution: fall back to the first neighbor.
	}

	if known1 {
		return solved(1.0 + f.dist(y1, x1))
	}
	if known2 {
		return solved(1.0 + f.dist(y2, x2))
	}
	return unsolvable
}

// solveDistance returns the smallest distance over the four quadrants around
// (y, x). from is the distance of the neighbor that just left the band; when
// no quadrant is solvable the pixel is placed one step beyond it.
func (f *field) solveDistance(y, x int, from float64) distance {
	d := f.solveEikonal(y-1, x, y, x-1).
		min(f.solveEikonal(y+1, x, y, x+1)).
		min(f.solveEikonal(y-1, x, y, x+1)).
		min(f.solveEikonal(y+1, x, y, x-1))
	if !d.ok {
		return solved(1.0 + from)
	}
	return d
}
