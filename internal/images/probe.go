// Package images provides the raster-level helpers the assembly pipeline
// needs: dimension probes for classification and vertical band splitting
// for oversized disclaimer images.
package images

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Dimensions reads the pixel size of an image file without decoding the
// full raster. PNG, JPEG, GIF and BMP are recognised.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Decode loads and fully decodes an image file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
