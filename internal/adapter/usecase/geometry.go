package usecase

import (
	"fmt"

	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

// The format geometry catalog. Every placement rectangle the sections use
// comes from here; positions are centimeters from the slide's top-left
// corner. Desktop placements carry a 0.5pt black border, mobile and ISI
// placements do not.

type rect struct {
	x, y, w, h float64
}

type formatLayout struct {
	// capacity is the maximum images placed on one slide of this format.
	capacity int
	border   bool
	slots    []rect
}

const (
	// bodyTopCm is where content starts below the title bar.
	bodyTopCm = domain.TitleBarCm + 0.5
	// slotGapCm is the standard gutter between sibling slots.
	slotGapCm = 0.5
)

func cat(kind domain.Kind, size string) domain.Category {
	return domain.Category{Kind: kind, Size: size}
}

// evenRow lays out n equal cells left to right starting at x.
func evenRow(n int, x, y, w, h, gap float64) []rect {
	out := make([]rect, n)
	for i := range out {
		out[i] = rect{x + float64(i)*(w+gap), y, w, h}
	}
	return out
}

// centeredRow lays out n equal cells horizontally centered on the slide.
func centeredRow(n int, y, w, h, gap float64) []rect {
	total := float64(n)*w + float64(n-1)*gap
	return evenRow(n, (domain.SlideWidthCm-total)/2, y, w, h, gap)
}

// centeredGrid lays out cols*rows cells centered horizontally, rows stacked
// from y.
func centeredGrid(cols, rows int, y, w, h, gap float64) []rect {
	total := float64(cols)*w + float64(cols-1)*gap
	x0 := (domain.SlideWidthCm - total) / 2
	out := make([]rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		out = append(out, evenRow(cols, x0, y+float64(r)*(h+gap), w, h, gap)...)
	}
	return out
}

// inframe728Slots stacks five banner rows below the title bar. Height is
// derived from the available body height and clamped to the banner's
// readable range.
func inframe728Slots() []rect {
	const gap = 0.3
	avail := domain.SlideHeightCm - bodyTopCm - 0.5
	h := (avail - 4*gap) / 5
	if h > 3.0 {
		h = 3.0
	}
	if h < 2.68 {
		h = 2.68
	}
	out := make([]rect, 5)
	for i := range out {
		out[i] = rect{0.5, bodyTopCm + float64(i)*(h+gap), 24.21, h}
	}
	return out
}

// inframe300x600Slots splits the body into four full-height columns.
func inframe300x600Slots() []rect {
	w := (domain.SlideWidthCm - 1.0 - 3*slotGapCm) / 4
	h := domain.SlideHeightCm - bodyTopCm - 0.5
	return evenRow(4, 0.5, bodyTopCm, w, h, slotGapCm)
}

func inframe160x600Slots() []rect {
	xs := []float64{0.83, 5.58, 10.33, 15.01, 19.68, 24.36, 29.04}
	out := make([]rect, len(xs))
	for i, x := range xs {
		out[i] = rect{x, 2.3, 4.26, 15.98}
	}
	return out
}

// videoGridSlots is the fixed 3x2 frame grid with equal outer and inner
// horizontal gutters and rows pinned at 3.5cm and 11.3cm.
func videoGridSlots() []rect {
	const w, h = 10.33, 5.81
	gap := (domain.SlideWidthCm - 3*w) / 4
	out := make([]rect, 6)
	for i := range out {
		col := i % 3
		y := 3.5
		if i >= 3 {
			y = 11.30
		}
		out[i] = rect{gap + float64(col)*(w+gap), y, w, h}
	}
	return out
}

// genericPairSlots is the fallback 2-up layout used by OTT, CTV and
// unclassified folders.
func genericPairSlots() []rect {
	return evenRow(2, 1.27, 2.3, 15.34, 13.97, 0.64)
}

var formatCatalog = map[domain.Category]formatLayout{
	cat(domain.KindVideo, ""): {capacity: 6, border: true, slots: videoGridSlots()},

	cat(domain.KindDesktopInframe, domain.Size970x250): {capacity: 2, border: true, slots: []rect{
		{1, 2.41, 27.59, 7.12},
		{1, 10.94, 27.59, 7.12},
	}},
	cat(domain.KindDesktopInframe, domain.Size300x250): {capacity: 6, border: true,
		slots: centeredGrid(3, 2, bodyTopCm, 9.48, 7.9, slotGapCm)},
	cat(domain.KindDesktopInframe, domain.Size300x600): {capacity: 4, border: true,
		slots: inframe300x600Slots()},
	cat(domain.KindDesktopInframe, domain.Size160x600): {capacity: 7, border: true,
		slots: inframe160x600Slots()},
	cat(domain.KindDesktopInframe, domain.Size728x90): {capacity: 5, border: true,
		slots: inframe728Slots()},

	cat(domain.KindDesktopExpandableEngaged, ""): {capacity: 2, border: true, slots: []rect{
		{0.82, 3.62, 15.34, 8.64},
		{0.82 + 15.34 + slotGapCm, 3.62, 15.34, 8.64},
	}},
	cat(domain.KindDesktopExpandableTeaser, ""): {capacity: 2, border: true, slots: []rect{
		{0.82, 3.62, 15.34, 8.64},
		{0.82 + 15.34 + slotGapCm, 3.62, 15.34, 8.64},
	}},
	cat(domain.KindDesktopInstream, ""): {capacity: 2, border: true, slots: []rect{
		{0.82, 3.62, 15.34, 8.64},
		{0.82 + 15.34 + slotGapCm, 3.62, 15.34, 8.64},
	}},

	cat(domain.KindMobileInstream, ""): {capacity: 2, slots: []rect{
		{6.13, 4.0, 12.76, 11.28},
		{6.13 + 12.76 + slotGapCm, 4.0, 12.76, 11.28},
	}},
	cat(domain.KindMobileInframe, domain.Size300x250): {capacity: 2, slots: []rect{
		{5.02, 2, 8.23, 16.02},
		{18.7, 2, 8.23, 16.02},
	}},
	cat(domain.KindMobileInframe, domain.Size300x600): {capacity: 2, slots: []rect{
		{5.02, 2, 8.23, 16.02},
		{18.7, 2, 8.23, 16.02},
	}},
	// fallback for in-frame folders without a recognised size token
	cat(domain.KindMobileInframe, ""): {capacity: 2, slots: []rect{
		{5.02, 2, 8.23, 16.02},
		{18.7, 2, 8.23, 16.02},
	}},
	cat(domain.KindDesktopInframe, ""): {capacity: 2, border: true,
		slots: genericPairSlots()},
	cat(domain.KindMobileExpandableTeaser, ""): {capacity: 3, slots: []rect{
		{2.6, 2.17, 8.22, 16},
		{12.11, 2.17, 8.22, 16},
		{21.56, 2.17, 8.22, 16},
	}},
	cat(domain.KindMobileExpandableEngaged, ""): {capacity: 3, slots: []rect{
		{2.6, 2.17, 8.22, 16},
		{12.11, 2.17, 8.22, 16},
		{21.56, 2.17, 8.22, 16},
	}},

	cat(domain.KindOTT, ""):          {capacity: 2, slots: genericPairSlots()},
	cat(domain.KindCTV, ""):          {capacity: 2, slots: genericPairSlots()},
	cat(domain.KindUnclassified, ""): {capacity: 2, slots: genericPairSlots()},
}

// annotated970Slots is the shrunken variant used on the first Desktop
// In-frame 970x250 slide when annotations are on, leaving room for the
// callout boxes on the right.
var annotated970Slots = []rect{
	{1, 2.41, 23.7, 6.12},
	{1, 10.94, 23.7, 6.12},
}

// teaserWallSlots positions the consolidated all-teasers wall by size
// token. Each entry also gets a size label underneath.
var teaserWallSlots = map[string]rect{
	domain.Size970x250: {0.70, 2.13, 17.84, 4.60},
	domain.Size728x90:  {0.70, 7.95, 16.55, 2.05},
	domain.Size300x250: {0.70, 11.27, 7.35, 6.13},
	domain.Size300x600: {20.64, 2.17, 7.57, 15.13},
	domain.Size160x600: {28.99, 2.14, 4.04, 15.13},
}

// lookupLayout resolves a category to its layout, normalising sizes that
// the catalog does not key on.
func lookupLayout(c domain.Category) (formatLayout, bool) {
	if l, ok := formatCatalog[c]; ok {
		return l, true
	}
	// In-frame kinds with an unrecognised size fall back to the size-less
	// entry if one exists; everything else falls back to unclassified.
	if l, ok := formatCatalog[cat(c.Kind, "")]; ok {
		return l, true
	}
	return formatLayout{}, false
}

// geometry returns the slot at the given index for a category. Missing
// categories are a programming error surfaced as ErrUnregisteredCategory;
// the catalog is validated at startup so this is unreachable in practice.
func geometry(c domain.Category, slotIndex int) (domain.SlotSpec, error) {
	l, ok := lookupLayout(c)
	if !ok {
		return domain.SlotSpec{}, fmt.Errorf("%w: %s", port.ErrUnregisteredCategory, c)
	}
	if slotIndex < 0 || slotIndex >= len(l.slots) {
		return domain.SlotSpec{}, fmt.Errorf("%w: %s slot %d", port.ErrUnregisteredCategory, c, slotIndex)
	}
	s := l.slots[slotIndex]
	return domain.SlotSpec{
		Category:  c,
		SlotName:  fmt.Sprintf("slot-%d", slotIndex),
		X:         s.x,
		Y:         s.y,
		Width:     s.w,
		Height:    s.h,
		HasBorder: l.border,
	}, nil
}

// capacityFor returns the per-slide image capacity of a category.
// Unregistered categories get the default pair capacity.
func capacityFor(c domain.Category) int {
	if l, ok := lookupLayout(c); ok {
		return l.capacity
	}
	return 2
}

// ValidateCatalog checks that every registered layout is internally
// consistent: capacity covered by slots, rectangles inside the slide
// canvas, positive extents. Called once at startup; a failure is fatal.
func ValidateCatalog() error {
	for c, l := range formatCatalog {
		if l.capacity <= 0 {
			return fmt.Errorf("catalog %s: capacity must be positive", c)
		}
		if len(l.slots) < l.capacity {
			return fmt.Errorf("catalog %s: %d slots cannot cover capacity %d", c, len(l.slots), l.capacity)
		}
		for i, s := range l.slots {
			if s.w <= 0 || s.h <= 0 {
				return fmt.Errorf("catalog %s slot %d: non-positive extent", c, i)
			}
			if s.x < 0 || s.y < 0 || s.x+s.w > domain.SlideWidthCm+0.01 || s.y+s.h > domain.SlideHeightCm+0.01 {
				return fmt.Errorf("catalog %s slot %d: rectangle outside slide canvas", c, i)
			}
		}
	}
	return nil
}
