package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

func TestMaskedMeanAbsDiff(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	a.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	b.SetNRGBA(0, 0, color.NRGBA{R: 13, G: 7, B: 10, A: 255})
	a.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255}) // outside the mask

	m := inpaint.NewMask(2, 2)
	m.Set(0, 0, true)

	diff, err := MaskedMeanAbsDiff(a, b, m)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, diff, 1e-12)

	diff, err = MaskedMeanAbsDiff(a, b, inpaint.NewMask(2, 2))
	require.NoError(t, err)
	assert.Zero(t, diff)

	_, err = MaskedMeanAbsDiff(a, b, inpaint.NewMask(3, 2))
	assert.ErrorIs(t, err, inpaint.ErrDimensionMismatch)
}

func TestContactSheet(t *testing.T) {
	sheet := ContactSheet(20, newTestImage(40, 20), nil, newTestImage(40, 40))
	assert.Equal(t, 40, sheet.Bounds().Dx())
	assert.Equal(t, 20, sheet.Bounds().Dy())
}
