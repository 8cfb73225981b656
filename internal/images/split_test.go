package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y % 256), G: uint8(x % 256), A: 255})
		}
	}
	return img
}

func TestSplitVerticalRoundTrip(t *testing.T) {
	src := testImage(80, 2500)
	bands := SplitVertical(src, 1000)
	require.Len(t, bands, 3)

	total := 0
	for _, b := range bands {
		require.Equal(t, 80, b.Bounds().Dx())
		require.LessOrEqual(t, b.Bounds().Dy(), 1000)
		total += b.Bounds().Dy()
	}
	require.Equal(t, 2500, total)

	// band pixels match the source rows they came from
	offset := 0
	for _, b := range bands {
		for y := 0; y < b.Bounds().Dy(); y += 97 {
			for x := 0; x < 80; x += 13 {
				require.Equal(t, src.At(x, offset+y), b.At(x, y))
			}
		}
		offset += b.Bounds().Dy()
	}
}

func TestSplitVerticalFitsInOneBand(t *testing.T) {
	src := testImage(10, 400)
	bands := SplitVertical(src, 1000)
	require.Len(t, bands, 1)
	require.Equal(t, src, bands[0].(image.Image))
}

func TestCropBottom(t *testing.T) {
	src := testImage(20, 900)
	cropped := CropBottom(src, 774)
	require.Equal(t, 774, cropped.Bounds().Dy())
	require.Equal(t, 20, cropped.Bounds().Dx())
	require.Equal(t, src.At(5, 100), cropped.At(5, 100))

	// already short enough: returned unchanged
	short := testImage(20, 500)
	require.Equal(t, image.Image(short), CropBottom(short, 774))
}

func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "probe.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, testImage(123, 45)))
	require.NoError(t, f.Close())

	w, h, err := Dimensions(path)
	require.NoError(t, err)
	require.Equal(t, 123, w)
	require.Equal(t, 45, h)

	_, _, err = Dimensions(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
}
