package images

import (
	"image"
	"image/draw"
)

// SplitVertical slices an image into horizontal bands of at most
// bandHeight pixels, top to bottom. The bands concatenated in order cover
// the source height exactly. A non-positive bandHeight or an image that
// already fits yields a single band.
func SplitVertical(src image.Image, bandHeight int) []image.Image {
	b := src.Bounds()
	if bandHeight <= 0 || b.Dy() <= bandHeight {
		return []image.Image{src}
	}

	var bands []image.Image
	for top := b.Min.Y; top < b.Max.Y; top += bandHeight {
		bottom := top + bandHeight
		if bottom > b.Max.Y {
			bottom = b.Max.Y
		}
		bands = append(bands, crop(src, image.Rect(b.Min.X, top, b.Max.X, bottom)))
	}
	return bands
}

// CropBottom keeps the top keepPx rows of the image, discarding the rest.
func CropBottom(src image.Image, keepPx int) image.Image {
	b := src.Bounds()
	if keepPx <= 0 || b.Dy() <= keepPx {
		return src
	}
	return crop(src, image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+keepPx))
}

func crop(src image.Image, r image.Rectangle) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}
