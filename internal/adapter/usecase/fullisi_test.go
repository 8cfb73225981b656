package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

func disclaimer(path string, w, h int) domain.ImageAsset {
	return domain.ImageAsset{
		Path:        path,
		Role:        domain.RoleDisclaimer,
		PixelWidth:  w,
		PixelHeight: h,
	}
}

func TestFullISIBlankSlideWhenNoDisclaimers(t *testing.T) {
	slides := buildFullISISlides(nil, false)
	require.Len(t, slides, 1)
	require.Equal(t, "FULL ISI", slides[0].Title)
	require.Empty(t, slides[0].Images)
	require.True(t, slides[0].HasLogo)
}

func TestFullISITallImageSplitsIntoBands(t *testing.T) {
	slides := buildFullISISlides([]domain.ImageAsset{disclaimer("isi.png", 800, 2500)}, false)
	require.Len(t, slides, 3)

	require.Equal(t, "FULL ISI", slides[0].Title)
	require.Equal(t, "FULL ISI (Contd.)", slides[1].Title)
	require.Equal(t, "FULL ISI (Contd.)", slides[2].Title)

	wantBands := []domain.CropSpec{
		{Top: 0, Bottom: 1000},
		{Top: 1000, Bottom: 2000},
		{Top: 2000, Bottom: 2500},
	}
	covered := 0
	for i, s := range slides {
		require.Len(t, s.Images, 1)
		require.Equal(t, wantBands[i], s.Images[0].Crop)
		covered += s.Images[0].Crop.Bottom - s.Images[0].Crop.Top
	}
	require.Equal(t, 2500, covered)

	// the partial last band renders proportionally shorter
	require.InDelta(t, 14.0, slides[0].Images[0].Height, 0.001)
	require.InDelta(t, 7.0, slides[2].Images[0].Height, 0.001)
}

func TestFullISIShortImagesShareOneSlide(t *testing.T) {
	slides := buildFullISISlides([]domain.ImageAsset{
		disclaimer("a.png", 500, 900),
		disclaimer("b.png", 500, 800),
	}, false)
	require.Len(t, slides, 1)
	require.Len(t, slides[0].Images, 2)
	require.Empty(t, slides[0].Images[0].Crop)
	// siblings sit left to right
	require.Greater(t, slides[0].Images[1].X, slides[0].Images[0].X)
}

func TestFullISIAnnotationsOnFirstSlideOnly(t *testing.T) {
	slides := buildFullISISlides([]domain.ImageAsset{disclaimer("isi.png", 800, 2500)}, true)
	require.NotEmpty(t, slides[0].TextBoxes)
	require.Empty(t, slides[1].TextBoxes)
}
