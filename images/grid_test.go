package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

// newTestImage returns an opaque NRGBA image with a deterministic pattern.
func newTestImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(8 * x),
				G: uint8(5 * y),
				B: uint8(x ^ y),
				A: 255,
			})
		}
	}
	return img
}

func TestGridRoundTrip(t *testing.T) {
	src := newTestImage(17, 9)
	g := ToGrid(src)
	require.Equal(t, 9, g.Height)
	require.Equal(t, 17, g.Width)
	require.Equal(t, 3, g.Channels)
	assert.Equal(t, []float64{8 * 3, 5 * 2, 3 ^ 2}, g.At(2, 3))

	out := FromGrid(g, src)
	assert.Equal(t, ComputeImageChecksum(src), ComputeImageChecksum(out))
}

func TestToGridGenericImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 4, 6, 6)) // non-zero Min
	src.SetRGBA(3, 4, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetRGBA(5, 5, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	g := ToGrid(src)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 3, g.Width)
	assert.Equal(t, []float64{1, 2, 3}, g.At(0, 0))
	assert.Equal(t, []float64{200, 100, 50}, g.At(1, 2))
}

func TestFromGridClampsAndRounds(t *testing.T) {
	g := inpaint.NewGrid(1, 3, 3)
	g.Set(0, 0, -4, 300, 12.5)
	g.Set(0, 1, 12.49, 254.7, 0)

	out := FromGrid(g, nil)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 13, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 12, G: 255, B: 0, A: 255}, out.NRGBAAt(1, 0))
}

func TestFromGridKeepsTemplateAlpha(t *testing.T) {
	tmpl := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tmpl.SetNRGBA(0, 0, color.NRGBA{A: 10})
	tmpl.SetNRGBA(1, 0, color.NRGBA{A: 200})

	out := FromGrid(ToGrid(tmpl), tmpl)
	assert.Equal(t, uint8(10), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(200), out.NRGBAAt(1, 0).A)
}

func TestMaskFromImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.SetGray(1, 2, color.Gray{Y: 255})
	src.SetGray(3, 0, color.Gray{Y: 1})

	m := MaskFromImage(src)
	require.Equal(t, 3, m.Height)
	require.Equal(t, 4, m.Width)
	assert.True(t, m.At(2, 1))
	assert.True(t, m.At(0, 3))
	assert.Equal(t, 2, m.Count())

	back := MaskFromImage(MaskToImage(m))
	assert.Equal(t, m.Bits, back.Bits)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 255))
	assert.Equal(t, 255.0, Clamp(256, 0, 255))
	assert.Equal(t, 42.0, Clamp(42, 0, 255))
}

func TestInpaintImageEndToEnd(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 90, G: 140, B: 210, A: 255})
		}
	}
	m := inpaint.NewMask(24, 32)
	m.SetRect(8, 10, 14, 22)
	for y := 8; y < 14; y++ {
		for x := 10; x < 22; x++ {
			src.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	run := func() *image.NRGBA {
		g := ToGrid(src)
		_, err := inpaint.Run(g, m, inpaint.Options{Radius: 5, Quantize: true})
		require.NoError(t, err)
		return FromGrid(g, src)
	}

	first := run()
	assert.Equal(t, ComputeImageChecksum(first), ComputeImageChecksum(run()))
	assert.Equal(t, color.NRGBA{R: 90, G: 140, B: 210, A: 255}, first.NRGBAAt(15, 10))

	diff, err := MaskedMeanAbsDiff(first, FromGrid(func() *inpaint.Grid {
		g := inpaint.NewGrid(24, 32, 3)
		g.Fill(90, 140, 210)
		return g
	}(), nil), m)
	require.NoError(t, err)
	assert.Zero(t, diff)
}
