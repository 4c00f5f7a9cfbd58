package images

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

// GridFromTensor wraps a contiguous float64 tensor of shape (H, W, C) as a
// grid without copying. Inpainting the grid writes through to the tensor.
//
// Arguments:
//   - t: The HWC tensor.
//
// Returns:
//   - *inpaint.Grid: A grid sharing t's backing slice.
//   - error: An error if the tensor has the wrong rank, type or layout.
func GridFromTensor(t *tensor.Dense) (*inpaint.Grid, error) {
	if t == nil {
		return nil, errors.New("tensor is nil")
	}
	shape := t.Shape()
	if len(shape) != 3 {
		return nil, errors.Errorf("expected an HWC tensor, got shape %v", shape)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, errors.Errorf("expected float64 data, got %v", t.Dtype())
	}
	data, ok := t.Data().([]float64)
	if !ok || len(data) != shape[0]*shape[1]*shape[2] {
		return nil, errors.Errorf("tensor data is not a contiguous HWC buffer of shape %v", shape)
	}

	g := &inpaint.Grid{
		Height:   shape[0],
		Width:    shape[1],
		Channels: shape[2],
		Pix:      data,
	}
	return g, g.Validate()
}

// GridToTensor returns an (H, W, C) tensor backed by the grid's values.
func GridToTensor(g *inpaint.Grid) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(g.Height, g.Width, g.Channels),
		tensor.WithBacking(g.Pix),
	)
}
