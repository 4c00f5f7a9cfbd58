package images

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

// MaskedMeanAbsDiff returns the mean absolute RGB difference between a and b
// over the masked pixels, in 0..255 units.
func MaskedMeanAbsDiff(a, b image.Image, m *inpaint.Mask) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, errors.Errorf("image sizes differ: %v vs %v", ab.Size(), bb.Size())
	}
	if ab.Dx() != m.Width || ab.Dy() != m.Height {
		return 0, errors.Wrapf(inpaint.ErrDimensionMismatch, "image %v, mask %dx%d", ab.Size(), m.Width, m.Height)
	}

	var sum float64
	var n int
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(y, x) {
				continue
			}
			ca := color.NRGBAModel.Convert(a.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			cb := color.NRGBAModel.Convert(b.At(bb.Min.X+x, bb.Min.Y+y)).(color.NRGBA)
			sum += math.Abs(float64(ca.R)-float64(cb.R)) +
				math.Abs(float64(ca.G)-float64(cb.G)) +
				math.Abs(float64(ca.B)-float64(cb.B))
			n += 3
		}
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

// ContactSheet scales every image to thumbWidth (keeping aspect ratio) with
// Lanczos3 resampling and lays them out left to right. Nil images are skipped.
func ContactSheet(thumbWidth uint, imgs ...image.Image) *image.NRGBA {
	thumbs := make([]image.Image, 0, len(imgs))
	width, height := 0, 0
	for _, img := range imgs {
		if img == nil {
			continue
		}
		t := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
		thumbs = append(thumbs, t)
		width += t.Bounds().Dx()
		height = max(height, t.Bounds().Dy())
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, t := range thumbs {
		tb := t.Bounds()
		draw.Draw(sheet, image.Rect(x, 0, x+tb.Dx(), tb.Dy()), t, tb.Min, draw.Src)
		x += tb.Dx()
	}
	return sheet
}
