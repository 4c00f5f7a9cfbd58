package inpaint

// extendOutside runs the fast marching pass outward from the initial contour
// into the known region so that known pixels near the mask carry a distance
// too. The pass works on inverted flags and colors nothing. Candidates beyond
// twice the radius are dropped, since the reconstructor never looks that far.
// Distances written by the pass are negated before returning. It returns the
// number of pixels that received a distance.
//
// nb is consumed; callers pass a copy of the initial band.
func (f *field) extendOutside(nb narrowBand, radius int) int {
	inv := f.inverted()
	limit := float64(2 * radius)

	var touched []int
	for nb.Len() > 0 {
		item := nb.pop()
		inv.flags[inv.index(item.y, item.x)] = known

		for _, d := range neighbors4 {
			ny, nx := item.y+d[0], item.x+d[1]
			if !inv.inBounds(ny, nx) || inv.flag(ny, nx) != unknown {
				continue
			}

			dist := inv.solveDistance(ny, nx, item.dist)
			if dist.value > limit {
				continue
			}

			i := inv.index(ny, nx)
			inv.dists[i] = dist.value
			inv.flags[i] = band
			touched = append(touched, i)
			nb.push(bandItem{dist: dist.value, y: ny, x: nx})
		}
	}

	// The pass travels against the real propagation direction.
	for _, i := range touched {
		f.dists[i] = -f.dists[i]
	}
	return len(touched)
}
