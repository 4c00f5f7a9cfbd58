package inpaint

import (
	"math"

	"github.com/pkg/errors"
)

// minDirectional replaces a zero directional factor so that neighbors
// orthogonal to the propagation direction still contribute.
const minDirectional = 1e-6

// reconstruct computes the color of (y, x) as the weighted average of the
// resolved pixels within radius, and stores it into g. The target must still
// be flagged unknown so that it does not weigh on itself.
//
// Arguments:
//   - g: The grid to read neighbor colors from and write the result into.
//   - y, x: The pixel to synthesize.
//   - radius: The neighborhood radius.
//   - sums: Scratch space of g.Channels values.
//   - quantize: Round the result to an integer, like an 8-bit buffer would.
//
// Returns:
//   - error: ErrDegenerateWeight if no neighbor carried any weight.
func (f *field) reconstruct(g *Grid, y, x, radius int, sums []float64, quantize bool) error {
	dist := f.dist(y, x)
	gradY, gradX := f.pixelGradient(y, x)

	for c := range sums {
		sums[c] = 0.0
	}
	weightSum := 0.0
	r2 := float64(radius * radius)

	for ny := y - radius; ny <= y+radius; ny++ {
		if ny < 0 || ny >= f.height {
			continue
		}
		for nx := x - radius; nx <= x+radius; nx++ {
			if nx < 0 || nx >= f.width {
				continue
			}
			i := f.index(ny, nx)
			if f.flags[i] == unknown {
				continue
			}
			nbDist := f.dists[i]
			if math.IsInf(nbDist, 0) {
				continue
			}

			dirY := float64(y - ny)
			dirX := float64(x - nx)
			lenSquare := dirY*dirY + dirX*dirX
			if lenSquare > r2 {
				continue
			}
			length := math.Sqrt(lenSquare)

			dirFactor := math.Abs(dirY*gradY + dirX*gradX)
			if dirFactor == 0.0 {
				dirFactor = minDirectional
			}
			levelFactor := 1.0 / (1.0 + math.Abs(nbDist-dist))
			distFactor := 1.0 / (length * lenSquare)

			weight := math.Abs(dirFactor * distFactor * levelFactor)
			for c, v := range g.At(ny, nx) {
				sums[c] += weight * v
			}
			weightSum += weight
		}
	}

	if !(weightSum > 0.0) || math.IsInf(weightSum, 0) {
		return errors.Wrapf(ErrDegenerateWeight, "pixel (%d, %d)", y, x)
	}

	out := g.At(y, x)
	for c := range out {
		v := sums[c] / weightSum
		if quantize {
			v = math.Round(v)
		}
		out[c] = v
	}
	return nil
}
