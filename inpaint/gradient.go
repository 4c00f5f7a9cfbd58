package inpaint

// unboundedGradient is the gradient component reported on the image border,
// where no two-sided difference exists. It only ever scales a weight.
const unboundedGradient = 1e6

// pixelGradient estimates the gradient of the distance field at (y, x),
// returned as (gradY, gradX).
func (f *field) pixelGradient(y, x int) (float64, float64) {
	val := f.dist(y, x)
	return f.axisGradient(y, x, 1, 0, val), f.axisGradient(y, x, 0, 1, val)
}

func (f *field) axisGradient(y, x, dy, dx int, val float64) float64 {
	py, px := y-dy, x-dx
	ny, nx := y+dy, x+dx
	if !f.inBounds(py, px) || !f.inBounds(ny, nx) {
		return unboundedGradient
	}

	prevOK := f.flag(py, px) != unknown
	nextOK := f.flag(ny, nx) != unknown
	switch {
	case prevOK && nextOK:
		return (f.dist(ny, nx) - f.dist(py, px)) / 2.0
	case prevOK:
		return val - f.dist(py, px)
	case nextOK:
		return f.dist(ny, nx) - val
	default:
		return 0.0
	}
}
