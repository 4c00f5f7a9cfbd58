package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"

	"gocv.io/x/gocv"
)

// ComputeMatChecksum generates a deterministic checksum for a Mat to verify idempotency.
//
// Arguments:
// - mat: The Mat to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := ComputeMatChecksum(mask)
//	fmt.Printf("Mask checksum: %s\n", checksum)
//
// ```
func ComputeMatChecksum(mat gocv.Mat) string {
	if mat.Empty() {
		return "empty"
	}

	data, _ := mat.DataPtrUint8()
	hash := md5.New()
	hash.Write(data)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// ComputeImageChecksum is ComputeMatChecksum for Go images: an MD5 over the
// NRGBA pixels, independent of the image's concrete type and bounds origin.
func ComputeImageChecksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)

	hash := md5.New()
	hash.Write(nrgba.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
