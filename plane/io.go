package plane

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("plane: unsupported file format")
)

// Load decodes the image stored at path. PNG, JPEG, TIFF and BMP are
// recognised by content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("plane: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("plane: decode: %w", err)
	}
	return img, nil
}

// Save encodes img to path, choosing the encoder from the extension.
// quality applies to JPEG only and is clamped to 1..100.
func Save(path string, img image.Image, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("plane: create file: %w", err)
	}

	if err := Encode(f, img, filepath.Ext(path), quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes img to w in the container named by ext (".png", ".jpg",
// ".jpeg", ".tif", ".tiff", ".bmp").
func Encode(w io.Writer, img image.Image, ext string, quality int) error {
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		quality = min(max(quality, 1), 100)
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case ".bmp":
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("plane: encode %s: %w", ext, err)
	}
	return nil
}
