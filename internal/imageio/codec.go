package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register the webp decoder.

	"github.com/born-ml/matkit/internal/mat"
)

// Decode reads an image in any registered format (png, jpeg, gif, bmp, tiff,
// webp) and returns it as a matrix along with the format name.
func Decode(r io.Reader) (*mat.Matrix, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img), format, nil
}

// Encode writes m to w in the named format: png, jpeg (or jpg), gif, bmp, or tiff.
func Encode(w io.Writer, m *mat.Matrix, format string) error {
	img, err := ToImage(m)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "gif":
		err = gif.Encode(w, img, nil)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// FormatFromPath returns the encoder format implied by a file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}
