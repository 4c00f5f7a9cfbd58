package images

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"
)

// JPEGQuality is the quality used when writing JPEG output.
const JPEGQuality = 95

// Decode decodes an encoded image. PNG, JPEG and WebP are decoded natively;
// anything else goes through libvips.
//
// Arguments:
//   - img: The encoded image. Format may be empty, in which case it is sniffed.
//
// Returns:
//   - image.Image: The decoded image.
//   - error: An error if the image fails to decode.
func Decode(img *Image) (image.Image, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, errors.New("image data is empty")
	}

	format := img.Format
	if format == "" {
		format = DetectFormat(img.Data)
	}

	var (
		decoded image.Image
		err     error
	)
	switch format {
	case FormatPNG:
		decoded, err = png.Decode(bytes.NewReader(img.Data))
	case FormatJPEG:
		decoded, err = jpeg.Decode(bytes.NewReader(img.Data))
	case FormatWebP:
		decoded, err = webp.Decode(bytes.NewReader(img.Data))
	default:
		decoded, err = decodeWithVips(img.Data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	b := decoded.Bounds()
	img.Format = format
	img.Width = b.Dx()
	img.Height = b.Dy()
	return decoded, nil
}

// decodeWithVips loads any libvips-readable buffer and hands it back as PNG.
func decodeWithVips(data []byte) (image.Image, error) {
	img, err := vips.NewImageFromBuffer(data, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	defer img.Close()

	pngBytes, err := img.PngsaveBuffer(&vips.PngsaveBufferOptions{})
	if err != nil || len(pngBytes) == 0 {
		return nil, fmt.Errorf("failed to convert image to PNG")
	}

	return png.Decode(bytes.NewReader(pngBytes))
}

// Encode encodes img in the given format. WebP output is lossless so that
// inpainted pixels are stored exactly.
func Encode(img image.Image, format ImageFormat) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatWebP:
		err = webp.Encode(&buf, img, &webp.Options{Lossless: true})
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return buf.Bytes(), nil
}

// ReadFile loads and decodes the image at path.
func ReadFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	img, err := Decode(&Image{Data: data})
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

// WriteFile encodes img in the format implied by the path's extension.
func WriteFile(path string, img image.Image) error {
	data, err := Encode(img, FormatFromPath(path))
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
