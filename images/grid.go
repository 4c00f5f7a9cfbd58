package images

import (
	"image"
	"image/color"
	"math"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

// ToGrid converts img into a 3-channel RGB grid with values in [0, 255].
// Colors are read un-premultiplied, as they are stored in the file.
func ToGrid(img image.Image) *inpaint.Grid {
	b := img.Bounds()
	g := inpaint.NewGrid(b.Dy(), b.Dx(), 3)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X)*4:]
			for x := 0; x < g.Width; x++ {
				p := row[x*4 : x*4+3 : x*4+3]
				g.Set(y, x, float64(p[0]), float64(p[1]), float64(p[2]))
			}
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Set(y, x, float64(c.R), float64(c.G), float64(c.B))
		}
	}
	return g
}

// FromGrid converts an RGB grid back into an image, rounding and clamping
// values to [0, 255]. Alpha is copied from template when it has the same
// size, otherwise the result is opaque.
func FromGrid(g *inpaint.Grid, template image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))

	var tb image.Rectangle
	if template != nil && template.Bounds().Dx() == g.Width && template.Bounds().Dy() == g.Height {
		tb = template.Bounds()
	} else {
		template = nil
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			v := g.At(y, x)
			c := color.NRGBA{A: 255}
			c.R = toUint8(v[0])
			if g.Channels >= 3 {
				c.G = toUint8(v[1])
				c.B = toUint8(v[2])
			} else {
				c.G, c.B = c.R, c.R
			}
			if template != nil {
				c.A = color.NRGBAModel.Convert(template.At(tb.Min.X+x, tb.Min.Y+y)).(color.NRGBA).A
			}
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

func toUint8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(Clamp(math.Round(v), 0, 255))
}

// Clamp restricts a value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// MaskFromImage builds a mask from the first channel of img: every pixel with
// a non-zero red (or gray) value is masked.
func MaskFromImage(img image.Image) *inpaint.Mask {
	b := img.Bounds()
	m := inpaint.NewMask(b.Dy(), b.Dx())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			m.Set(y, x, c.R != 0)
		}
	}
	return m
}

// MaskToImage renders a mask as a grayscale image, 255 where masked.
func MaskToImage(m *inpaint.Mask) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(y, x) {
				dst.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return dst
}
