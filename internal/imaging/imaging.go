package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cvat-tools/cvatkit/internal/mask"
)

// jpegQuality matches the encoder default of the usual CV tooling, so
// mask-on-photo JPEGs look the same as ones produced elsewhere.
const jpegQuality = 95

// Load decodes an image file into a canvas.
func Load(path string) (*mask.Canvas, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return mask.FromImage(img), nil
}

// Save encodes the canvas in the format implied by the file extension.
// JPEG, PNG, GIF, BMP and TIFF are supported.
func Save(path string, c *mask.Canvas) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	img := c.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality})
	case ".png":
		err = png.Encode(file, img)
	case ".gif":
		err = gif.Encode(file, img, nil)
	case ".bmp":
		err = bmp.Encode(file, img)
	case ".tif", ".tiff":
		err = tiff.Encode(file, img, nil)
	default:
		return fmt.Errorf("unsupported image format: %s", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}

	return nil
}

// ListImages returns the files in dir carrying the given extension, sorted
// by name.
func ListImages(dir, ext string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("failed to list images in %s: %w", dir, err)
	}
	return matches, nil
}
