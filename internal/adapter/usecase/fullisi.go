package usecase

import (
	"github.com/sentivora/mlr-automation/internal/core/domain"
)

const (
	fullISITitle = "FULL ISI"

	// Disclaimer images taller than this are sliced into bands, one band
	// per slide.
	isiBandHeightPx = 1000

	// Display geometry for disclaimer placements.
	isiOriginXCm     = 0.51
	isiOriginYCm     = 2.0
	isiDisplayHCm    = 14.0
	isiSiblingGapCm  = 0.5
)

// isiBands slices a pixel height into bands of at most isiBandHeightPx.
func isiBands(height int) []domain.CropSpec {
	if height <= isiBandHeightPx {
		return []domain.CropSpec{{}}
	}
	var bands []domain.CropSpec
	for top := 0; top < height; top += isiBandHeightPx {
		bottom := top + isiBandHeightPx
		if bottom > height {
			bottom = height
		}
		bands = append(bands, domain.CropSpec{Top: top, Bottom: bottom})
	}
	return bands
}

// buildFullISISlides emits the closing Full ISI section from every
// disclaimer asset collected repo-wide. Short disclaimers share one slide
// left-to-right at a fixed display height; tall ones are split into
// bands, each band its own slide. With no disclaimers at all a single
// blank titled slide is emitted so the deck always closes on Full ISI.
func buildFullISISlides(disclaimers []domain.ImageAsset, withAnnos bool) []*domain.SlidePlan {
	var slides []*domain.SlidePlan
	title := func() string {
		if len(slides) == 0 {
			return fullISITitle
		}
		return fullISITitle + " (Contd.)"
	}

	var shared *domain.SlidePlan
	sharedX := isiOriginXCm

	for _, d := range disclaimers {
		if d.PixelHeight <= isiBandHeightPx {
			w := isiDisplayHCm * d.AspectRatio()
			if shared != nil && sharedX+w > domain.SlideWidthCm-isiOriginXCm {
				shared = nil
			}
			if shared == nil {
				shared = domain.NewSlidePlan(title())
				shared.IsContinuation = len(slides) > 0
				slides = append(slides, shared)
				sharedX = isiOriginXCm
			}
			shared.Place(domain.PlacedImage{
				Asset: d,
				X:     sharedX, Y: isiOriginYCm,
				Width: w, Height: isiDisplayHCm,
			})
			sharedX += w + isiSiblingGapCm
			continue
		}

		for _, band := range isiBands(d.PixelHeight) {
			bandPx := band.Bottom - band.Top
			h := isiDisplayHCm * float64(bandPx) / float64(isiBandHeightPx)
			w := 0.0
			if bandPx > 0 {
				w = h * float64(d.PixelWidth) / float64(bandPx)
			}
			s := domain.NewSlidePlan(title())
			s.IsContinuation = len(slides) > 0
			s.Place(domain.PlacedImage{
				Asset: d,
				X:     isiOriginXCm, Y: isiOriginYCm,
				Width: w, Height: h,
				Crop: band,
			})
			slides = append(slides, s)
		}
		shared = nil
	}

	if len(slides) == 0 {
		slides = append(slides, domain.NewSlidePlan(fullISITitle))
	}
	if withAnnos {
		addFullISIAnnotations(slides[0])
	}
	return slides
}
