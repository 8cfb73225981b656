package usecase

import (
	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

// gridDims maps an images-per-slide count to its cols x rows layout.
func gridDims(imagesPerSlide int) (cols, rows int) {
	switch imagesPerSlide {
	case 1:
		return 1, 1
	case 2:
		return 2, 1
	case 3:
		return 3, 1
	case 4:
		return 2, 2
	case 5, 6:
		return 3, 2
	default:
		return 2, 1
	}
}

// parseGridLayout honours an explicit "CxR" override such as "2x2";
// anything else (including "auto") falls back to the count mapping.
func parseGridLayout(layout string, imagesPerSlide int) (cols, rows int) {
	if len(layout) == 3 && layout[1] == 'x' {
		c, r := int(layout[0]-'0'), int(layout[2]-'0')
		if c >= 1 && c <= 3 && r >= 1 && r <= 2 && c*r >= imagesPerSlide {
			return c, r
		}
	}
	return gridDims(imagesPerSlide)
}

// gridCells computes cell origins for a cols x rows grid of cellW x cellH
// cells centered in the slide body below the title bar, with uniform
// spacing between cells on both axes.
func gridCells(cols, rows int, cellW, cellH, spacing float64) []port.SlotRect {
	totalW := float64(cols)*cellW + float64(cols-1)*spacing
	totalH := float64(rows)*cellH + float64(rows-1)*spacing
	x0 := (domain.SlideWidthCm - totalW) / 2
	y0 := domain.TitleBarCm + (domain.SlideHeightCm-domain.TitleBarCm-totalH)/2

	cells := make([]port.SlotRect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, port.SlotRect{
				X:      x0 + float64(c)*(cellW+spacing),
				Y:      y0 + float64(r)*(cellH+spacing),
				Width:  cellW,
				Height: cellH,
			})
		}
	}
	return cells
}

// videoFramePlacement is one composited cell: the base creative scaled to
// the cell plus the video preview overlaid at the configured offset.
type videoFramePlacement struct {
	Base    port.SlotRect
	Overlay port.SlotRect
}

// VideoFrameSlides distributes N video-preview images over ceil(N/perSlide)
// slides. Within each slide every occupied cell holds a copy of the base
// creative with one preview composited on top. Overlay offsets scale with
// the cell so shrunken grids keep the preview anchored to the player area.
func VideoFrameSlides(previewCount int, params port.VideoGridParams) [][]videoFramePlacement {
	perSlide := params.ImagesPerSlide
	if perSlide < 1 || perSlide > 6 {
		perSlide = 2
	}
	cols, rows := parseGridLayout(params.GridLayout, perSlide)

	scaleX := 1.0
	scaleY := 1.0
	cellW, cellH := params.Base.Width, params.Base.Height
	fitW := (domain.SlideWidthCm - float64(cols+1)*params.SpacingCm) / float64(cols)
	fitH := (domain.SlideHeightCm - domain.TitleBarCm - float64(rows+1)*params.SpacingCm) / float64(rows)
	if cellW > fitW {
		scaleX = fitW / cellW
		cellW = fitW
	}
	if cellH > fitH {
		scaleY = fitH / cellH
		cellH = fitH
	}

	cells := gridCells(cols, rows, cellW, cellH, params.SpacingCm)

	var slides [][]videoFramePlacement
	for i := 0; i < previewCount; i++ {
		slideIdx := i / perSlide
		if slideIdx == len(slides) {
			slides = append(slides, nil)
		}
		cell := cells[i%perSlide]
		slides[slideIdx] = append(slides[slideIdx], videoFramePlacement{
			Base: cell,
			Overlay: port.SlotRect{
				X:      cell.X + params.Overlay.XOffset*scaleX,
				Y:      cell.Y + params.Overlay.YOffset*scaleY,
				Width:  params.Overlay.Width * scaleX,
				Height: params.Overlay.Height * scaleY,
			},
		})
	}
	return slides
}
