package images

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-inpaint/inpaint"
)

// ReferenceInpaint runs OpenCV's implementation of Telea's method on src, so
// that results of the native engine can be compared against it.
//
// Arguments:
//   - src: The image to inpaint.
//   - mask: The pixels to synthesize, same size as src.
//   - radius: The neighborhood radius.
//
// Returns:
//   - image.Image: The inpainted image.
//   - error: An error if the conversion to or from OpenCV fails.
func ReferenceInpaint(src image.Image, mask *inpaint.Mask, radius int) (image.Image, error) {
	b := src.Bounds()
	if b.Dx() != mask.Width || b.Dy() != mask.Height {
		return nil, fmt.Errorf("%w: image %dx%d, mask %dx%d",
			inpaint.ErrDimensionMismatch, b.Dx(), b.Dy(), mask.Width, mask.Height)
	}

	mat, err := gocv.ImageToMatRGB(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to Mat: %w", err)
	}
	defer mat.Close()

	maskMat := MaskToMat(mask)
	defer maskMat.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Inpaint(mat, maskMat, &dst, float32(radius), gocv.Telea)
	if dst.Empty() {
		return nil, fmt.Errorf("opencv returned an empty image")
	}

	out, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert Mat to image: %w", err)
	}
	return out, nil
}

// MaskToMat renders a mask as an 8-bit single channel Mat, 255 where masked.
// The caller must Close the returned Mat.
func MaskToMat(m *inpaint.Mask) gocv.Mat {
	mat := gocv.NewMatWithSize(m.Height, m.Width, gocv.MatTypeCV8U)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := uint8(0)
			if m.At(y, x) {
				v = 255
			}
			mat.SetUCharAt(y, x, v)
		}
	}
	return mat
}
