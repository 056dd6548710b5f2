package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

var encoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("render: empty image %v", img.Bounds())
	}
	return encoder.Encode(w, img)
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, img)
}
