package inpaint

import (
	"fmt"
)

// Grid is a Height x Width image with Channels float64 values per pixel,
// stored row-major with interleaved channels (HWC).
type Grid struct {
	// Height is the number of rows.
	Height int
	// Width is the number of columns.
	Width int
	// Channels is the number of values per pixel (3 for RGB).
	Channels int
	// Pix holds Height*Width*Channels values.
	Pix []float64
}

// NewGrid allocates a zeroed grid.
func NewGrid(height, width, channels int) *Grid {
	return &Grid{
		Height:   height,
		Width:    width,
		Channels: channels,
		Pix:      make([]float64, height*width*channels),
	}
}

// Offset returns the index of the first channel of (y, x) in Pix.
func (g *Grid) Offset(y, x int) int {
	return (y*g.Width + x) * g.Channels
}

// At returns the channel values of (y, x). The returned slice aliases Pix.
func (g *Grid) At(y, x int) []float64 {
	off := g.Offset(y, x)
	return g.Pix[off : off+g.Channels : off+g.Channels]
}

// Set copies values into the channels of (y, x).
func (g *Grid) Set(y, x int, values ...float64) {
	copy(g.At(y, x), values)
}

// Fill sets every pixel to the same values.
func (g *Grid) Fill(values ...float64) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(y, x, values...)
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.Pix = append([]float64(nil), g.Pix...)
	return &c
}

// Validate checks that the grid's dimensions agree with its backing slice.
func (g *Grid) Validate() error {
	if g.Height <= 0 || g.Width <= 0 || g.Channels <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%dx%d", g.Height, g.Width, g.Channels)
	}
	if len(g.Pix) != g.Height*g.Width*g.Channels {
		return fmt.Errorf("grid holds %d values, needs %d", len(g.Pix), g.Height*g.Width*g.Channels)
	}
	return nil
}

// Mask marks the pixels to synthesize with true.
type Mask struct {
	// Height is the number of rows.
	Height int
	// Width is the number of columns.
	Width int
	// Bits holds Height*Width flags, row-major.
	Bits []bool
}

// NewMask allocates an all-false mask.
func NewMask(height, width int) *Mask {
	return &Mask{
		Height: height,
		Width:  width,
		Bits:   make([]bool, height*width),
	}
}

// At reports whether (y, x) is masked.
func (m *Mask) At(y, x int) bool {
	return m.Bits[y*m.Width+x]
}

// Set marks or clears (y, x).
func (m *Mask) Set(y, x int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// SetRect marks every pixel of the half-open rectangle [y0,y1)x[x0,x1),
// clipped to the mask.
func (m *Mask) SetRect(y0, x0, y1, x1 int) {
	for y := max(y0, 0); y < min(y1, m.Height); y++ {
		for x := max(x0, 0); x < min(x1, m.Width); x++ {
			m.Set(y, x, true)
		}
	}
}

// Count returns the number of masked pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}
