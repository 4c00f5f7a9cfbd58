package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

func TestGridFromTensorSharesBacking(t *testing.T) {
	backing := make([]float64, 4*5*3)
	for i := range backing {
		backing[i] = 50
	}
	dense := tensor.New(tensor.WithShape(4, 5, 3), tensor.WithBacking(backing))

	g, err := GridFromTensor(dense)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 3, g.Channels)

	m := inpaint.NewMask(4, 5)
	m.Set(2, 2, true)
	backing[g.Offset(2, 2)] = 0
	require.NoError(t, inpaint.Inpaint(g, m, 2))
	assert.InDelta(t, 50.0, backing[g.Offset(2, 2)], 1e-9)
}

func TestGridFromTensorRejects(t *testing.T) {
	_, err := GridFromTensor(tensor.New(tensor.WithShape(4, 5), tensor.WithBacking(make([]float64, 20))))
	assert.Error(t, err)

	_, err = GridFromTensor(tensor.New(tensor.WithShape(2, 2, 3), tensor.WithBacking(make([]float32, 12))))
	assert.Error(t, err)

	_, err = GridFromTensor(nil)
	assert.Error(t, err)
}

func TestGridToTensor(t *testing.T) {
	g := inpaint.NewGrid(2, 3, 3)
	g.Set(1, 2, 7, 8, 9)

	dense := GridToTensor(g)
	assert.Equal(t, tensor.Shape{2, 3, 3}, dense.Shape())

	v, err := dense.At(1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}
