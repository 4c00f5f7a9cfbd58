package inpaint

import (
	"github.com/pkg/errors"
)

var (
	// ErrNilInput is returned when the grid or the mask is nil.
	ErrNilInput = errors.New("grid and mask are required")
	// ErrDimensionMismatch is returned when the mask does not cover the grid exactly.
	ErrDimensionMismatch = errors.New("image and mask dimensions do not match")
	// ErrInvalidRadius is returned for a neighborhood radius below 1.
	ErrInvalidRadius = errors.New("radius must be at least 1")
	// ErrDegenerateWeight is returned when a pixel's neighborhood carries no weight.
	ErrDegenerateWeight = errors.New("neighborhood weights sum to zero")
)
