package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

// deckBuilder walks the fixed macro-section order once, appending each
// section's slides to the deck. Sections are pure over the folder group;
// the completed set guards against a section running twice even if the
// section table ever regresses to overlapping matchers.
type deckBuilder struct {
	group  *domain.FolderGroup
	cfg    port.AssemblyConfig
	deck   *domain.Deck
	logger *slog.Logger

	completed map[string]bool
}

// BuildDeck assembles the full slide sequence for a classified folder
// group, then runs the repair pass over the result.
func BuildDeck(group *domain.FolderGroup, cfg port.AssemblyConfig, outputName string, logger *slog.Logger) (*domain.Deck, error) {
	b := &deckBuilder{
		group:     group,
		cfg:       cfg.Normalized(),
		deck:      &domain.Deck{OutputName: outputName},
		logger:    logger,
		completed: make(map[string]bool),
	}

	sections := []struct {
		name string
		fn   func() error
	}{
		{"video", b.videoSection},
		{"desktop-inframe", b.desktopInframeSections},
		{"desktop-expandable-teasers", b.desktopTeaserWallSection},
		{"desktop-expandable-engaged", b.desktopEngagedSection},
		{"desktop-expandable-remaining", b.desktopExpandableRemainingSection},
		{"desktop-instream", b.desktopInstreamSection},
		{"mobile-instream", b.mobileInstreamSection},
		{"remaining-folders", b.remainingFoldersSection},
		{"mobile-expandable-teasers", b.mobileTeaserSection},
		{"mobile-expandable-engaged", b.mobileEngagedSection},
		{"ctv", b.ctvSection},
		{"ott", b.ottSection},
		{"full-isi", b.fullISISection},
	}
	for _, s := range sections {
		if b.completed[s.name] {
			continue
		}
		b.completed[s.name] = true
		if err := s.fn(); err != nil {
			return nil, fmt.Errorf("section %s: %w", s.name, err)
		}
	}

	if removed := Repair(b.deck); removed > 0 {
		logger.Warn("repair pass removed duplicate section slides",
			slog.Int("removed", removed))
	}
	return b.deck, nil
}

// content filters out disclaimer-role assets, which belong to Full ISI.
func content(assets []domain.ImageAsset) []domain.ImageAsset {
	out := assets[:0:0]
	for _, a := range assets {
		if a.Role != domain.RoleDisclaimer {
			out = append(out, a)
		}
	}
	return out
}

func (b *deckBuilder) withAnnos() bool {
	return b.cfg.Annotations == port.WithAnnotations
}

func (b *deckBuilder) videoPreviews() []domain.ImageAsset {
	return content(b.group.ByKind(domain.KindVideo))
}

// placeAt puts one image into a catalog slot.
func (b *deckBuilder) placeAt(plan *domain.SlidePlan, c domain.Category, slot int, a domain.ImageAsset) error {
	spec, err := geometry(c, slot)
	if err != nil {
		return err
	}
	plan.Place(domain.PlacedImage{
		Asset: a,
		X:     spec.X, Y: spec.Y,
		Width: spec.Width, Height: spec.Height,
		HasBorder: spec.HasBorder,
	})
	return nil
}

// emitPaginated runs the standard paginate-and-place flow for a category,
// titling the first slide with the base title and later ones per the
// category's continuation convention. decorate, when non-nil, runs on each
// emitted slide with its page index.
func (b *deckBuilder) emitPaginated(c domain.Category, assets []domain.ImageAsset, base string, decorate func(*domain.SlidePlan, int)) error {
	pages := Paginate(c, assets, capacityFor(c))
	for i, page := range pages {
		title := base
		if i > 0 {
			title = ContinuationTitle(base, c, i+1)
		}
		plan := domain.NewSlidePlan(title)
		plan.IsContinuation = i > 0
		for slot, img := range page.Images {
			if err := b.placeAt(plan, c, slot, img); err != nil {
				return err
			}
		}
		if decorate != nil {
			decorate(plan, i)
		}
		b.deck.Append(plan)
	}
	return nil
}

// videoSection lays the raw video frames out on 3x2 walls with a running
// Frame-NN caption under each cell.
func (b *deckBuilder) videoSection() error {
	frames := b.videoPreviews()
	if len(frames) == 0 {
		return nil
	}
	c := cat(domain.KindVideo, "")
	frame := 0
	return b.emitPaginated(c, frames, "VIDEO", func(plan *domain.SlidePlan, _ int) {
		for _, p := range plan.Images {
			frame++
			plan.Label(fmt.Sprintf("Frame-%02d", frame), p.X, p.Y+p.Height, p.Width)
		}
	})
}

// desktopInframeSections walks the in-frame sizes in their fixed order.
// The 970x250 first slide shrinks its creatives and gains the annotation
// boxes when annotations are on.
func (b *deckBuilder) desktopInframeSections() error {
	for _, size := range domain.InframeSizeOrder {
		c := cat(domain.KindDesktopInframe, size)
		assets := content(b.group.ByCategory(c))
		if len(assets) == 0 {
			continue
		}
		base := KindTitle(c)

		if size == domain.Size970x250 && b.withAnnos() {
			if err := b.emitAnnotated970(c, assets, base); err != nil {
				return err
			}
			continue
		}

		if err := b.emitPaginated(c, assets, base, nil); err != nil {
			return err
		}
	}
	return nil
}

// emitAnnotated970 emits the 970x250 section with the annotated first
// slide: shrunken creative slots plus the six explanatory boxes.
func (b *deckBuilder) emitAnnotated970(c domain.Category, assets []domain.ImageAsset, base string) error {
	pages := Paginate(c, assets, capacityFor(c))
	for i, page := range pages {
		title := base
		if i > 0 {
			title = ContinuationTitle(base, c, i+1)
		}
		plan := domain.NewSlidePlan(title)
		plan.IsContinuation = i > 0
		for slot, img := range page.Images {
			if i == 0 && slot < len(annotated970Slots) {
				r := annotated970Slots[slot]
				plan.Place(domain.PlacedImage{
					Asset: img,
					X:     r.x, Y: r.y, Width: r.w, Height: r.h,
					HasBorder: true,
				})
				continue
			}
			if err := b.placeAt(plan, c, slot, img); err != nil {
				return err
			}
		}
		if i == 0 {
			addInframe970Annotations(plan)
		}
		b.deck.Append(plan)
	}
	return nil
}

// teaserRepresentatives picks, per folder of the given kind, the first
// teaser-role image or failing that the first non-disclaimer image.
func (b *deckBuilder) teaserRepresentatives(kind domain.Kind) []domain.ImageAsset {
	var reps []domain.ImageAsset
	for _, folder := range b.group.FoldersByKind(kind) {
		assets := content(b.group.In(folder))
		if len(assets) == 0 {
			continue
		}
		rep := assets[0]
		for _, a := range assets {
			if a.Role == domain.RoleTeaser {
				rep = a
				break
			}
		}
		reps = append(reps, rep)
	}
	return reps
}

// desktopTeaserWallSection consolidates one teaser per desktop-expandable
// folder onto a single wall, positioned by the folder's ad-size token.
// Teasers without a recognisable size fall through to the paginated
// layout on follow-on slides.
func (b *deckBuilder) desktopTeaserWallSection() error {
	reps := b.teaserRepresentatives(domain.KindDesktopExpandableTeaser)
	if len(reps) == 0 {
		return nil
	}

	const base = "DESKTOP EXPANDABLE - ALL TEASERS"
	wall := domain.NewSlidePlan(base)
	var unsized []domain.ImageAsset
	placed := 0
	for _, rep := range reps {
		token := sizeFromPath(strings.ToLower(rep.SourceFolder))
		r, ok := teaserWallSlots[token]
		if !ok {
			unsized = append(unsized, rep)
			continue
		}
		wall.Place(domain.PlacedImage{
			Asset: rep,
			X:     r.x, Y: r.y, Width: r.w, Height: r.h,
			HasBorder: true,
		})
		wall.Label(strings.ToUpper(token), r.x, r.y+r.h, r.w)
		placed++
	}
	if placed > 0 {
		b.deck.Append(wall)
	}

	if len(unsized) > 0 {
		c := cat(domain.KindDesktopExpandableTeaser, "")
		title := base
		if placed > 0 {
			title = base + " (Contd.)"
		}
		if err := b.emitPaginated(c, unsized, title, nil); err != nil {
			return err
		}
	}
	return nil
}

// desktopEngagedSection emits the combined VPM + main-unit engaged slide,
// or its video-frame variant when requested and video previews exist. The
// variant replaces the normal output entirely.
func (b *deckBuilder) desktopEngagedSection() error {
	c := cat(domain.KindDesktopExpandableEngaged, "")
	assets := content(b.group.ByKind(domain.KindDesktopExpandableEngaged))
	if len(assets) == 0 {
		return nil
	}

	previews := b.videoPreviews()
	if b.cfg.ImplementVideoFrames && len(previews) > 0 {
		return b.emitVideoFrames("DESKTOP EXPANDABLE - ENGAGED VIDEO FRAME",
			c, assets, previews, b.cfg.DesktopEngagedGrid)
	}
	return b.emitPaginated(c, assets, "DESKTOP EXPANDABLE - ENGAGED", nil)
}

// desktopExpandableRemainingSection pages out every desktop-expandable
// teaser-folder asset in priority order. Teasers already shown on the
// consolidated wall appear here again: the wall is an overview, these
// slides are the per-folder walkthrough.
func (b *deckBuilder) desktopExpandableRemainingSection() error {
	assets := content(b.group.ByKind(domain.KindDesktopExpandableTeaser))
	if len(assets) == 0 {
		return nil
	}
	c := cat(domain.KindDesktopExpandableTeaser, "")
	return b.emitPaginated(c, assets, "DESKTOP EXPANDABLE", nil)
}

// desktopInstreamSection emits the instream pages or their video-frame
// variant.
func (b *deckBuilder) desktopInstreamSection() error {
	c := cat(domain.KindDesktopInstream, "")
	assets := content(b.group.ByKind(domain.KindDesktopInstream))
	if len(assets) == 0 {
		return nil
	}

	previews := b.videoPreviews()
	if b.cfg.ImplementVideoFrames && len(previews) > 0 {
		return b.emitVideoFrames("DESKTOP INSTREAM VIDEO FRAME",
			c, assets, previews, b.cfg.DesktopInstreamGrid)
	}
	return b.emitPaginated(c, assets, "DESKTOP INSTREAM", nil)
}

// emitVideoFrames renders the video-frame variant of a section: copies of
// the base creative on an N-up grid, one video preview composited per
// cell. Base creatives beyond the designated one follow as ordinary
// continuation pages.
func (b *deckBuilder) emitVideoFrames(base string, c domain.Category, assets, previews []domain.ImageAsset, params port.VideoGridParams) error {
	sorted := SortByPriority(c, assets)
	baseAsset := sorted[0]
	for _, a := range sorted {
		if a.Role == domain.RoleMainUnit {
			baseAsset = a
			break
		}
	}

	preview := 0
	for i, placements := range VideoFrameSlides(len(previews), params) {
		title := base
		if i > 0 {
			title = base + " (Contd.)"
		}
		plan := domain.NewSlidePlan(title)
		plan.IsContinuation = i > 0
		for _, p := range placements {
			plan.Place(domain.PlacedImage{
				Asset: baseAsset,
				X:     p.Base.X, Y: p.Base.Y,
				Width: p.Base.Width, Height: p.Base.Height,
				HasBorder: true,
			})
			plan.Place(domain.PlacedImage{
				Asset: previews[preview],
				X:     p.Overlay.X, Y: p.Overlay.Y,
				Width: p.Overlay.Width, Height: p.Overlay.Height,
			})
			preview++
		}
		b.deck.Append(plan)
	}

	var rest []domain.ImageAsset
	for _, a := range sorted {
		if a.Path != baseAsset.Path {
			rest = append(rest, a)
		}
	}
	for _, page := range Paginate(c, rest, capacityFor(c)) {
		plan := domain.NewSlidePlan(base + " (Contd.)")
		plan.IsContinuation = true
		for slot, img := range page.Images {
			if err := b.placeAt(plan, c, slot, img); err != nil {
				return err
			}
		}
		b.deck.Append(plan)
	}
	return nil
}

// mobileInstreamSection pages mobile instream shots two-up, cropping any
// capture taller than the 774px viewport and attaching the explainer to
// the first slide.
func (b *deckBuilder) mobileInstreamSection() error {
	c := cat(domain.KindMobileInstream, "")
	assets := content(b.group.ByKind(domain.KindMobileInstream))
	if len(assets) == 0 {
		return nil
	}
	err := b.emitPaginated(c, assets, "MOBILE INSTREAM", func(plan *domain.SlidePlan, page int) {
		for i := range plan.Images {
			if h := plan.Images[i].Asset.PixelHeight; h > mobileInstreamViewportPx {
				plan.Images[i].Crop = domain.CropSpec{Top: 0, Bottom: mobileInstreamViewportPx}
			}
		}
		if page == 0 && b.withAnnos() {
			addMobileInstreamAnnotation(plan)
		}
	})
	return err
}

// mobileInstreamViewportPx is the visible height of a mobile instream
// capture; anything below it is chrome and gets cropped away.
const mobileInstreamViewportPx = 774

// sectionKinds are handled by a dedicated macro section; folders of any
// other kind flow through the remaining-folders walk.
var sectionKinds = map[domain.Kind]bool{
	domain.KindVideo:                    true,
	domain.KindDesktopInframe:           true,
	domain.KindDesktopExpandableTeaser:  true,
	domain.KindDesktopExpandableEngaged: true,
	domain.KindDesktopInstream:          true,
	domain.KindMobileInstream:           true,
	domain.KindMobileExpandableTeaser:   true,
	domain.KindMobileExpandableEngaged:  true,
	domain.KindCTV:                      true,
	domain.KindOTT:                      true,
}

// remainingFoldersSection emits per-folder pages for everything no macro
// section claims: mobile in-frame trees and unclassified folders. Titles
// come from the folder path itself.
func (b *deckBuilder) remainingFoldersSection() error {
	for _, folder := range b.group.Folders() {
		assets := content(b.group.In(folder))
		if len(assets) == 0 || sectionKinds[assets[0].Category.Kind] {
			continue
		}
		c := assets[0].Category
		title := FolderTitle(folder)
		annotate := b.withAnnos() &&
			c.Kind == domain.KindMobileInframe && c.Size == domain.Size300x250
		err := b.emitPaginated(c, assets, title, func(plan *domain.SlidePlan, page int) {
			if page == 0 && annotate {
				addMobileInframe300x250Annotations(plan)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// mobileTeaserSection consolidates one teaser per mobile-expandable
// folder, three to a slide.
func (b *deckBuilder) mobileTeaserSection() error {
	reps := b.teaserRepresentatives(domain.KindMobileExpandableTeaser)
	if len(reps) == 0 {
		return nil
	}
	c := cat(domain.KindMobileExpandableTeaser, "")
	return b.emitPaginated(c, reps, "MOBILE EXPANDABLE - ALL TEASERS", nil)
}

// mobileEngagedSection pages the mobile engaged captures three to a slide.
func (b *deckBuilder) mobileEngagedSection() error {
	c := cat(domain.KindMobileExpandableEngaged, "")
	assets := content(b.group.ByKind(domain.KindMobileExpandableEngaged))
	if len(assets) == 0 {
		return nil
	}
	return b.emitPaginated(c, assets, "MOBILE EXPANDABLE - ENGAGED", nil)
}

func (b *deckBuilder) ctvSection() error {
	c := cat(domain.KindCTV, "")
	assets := content(b.group.ByKind(domain.KindCTV))
	if len(assets) == 0 {
		return nil
	}
	return b.emitPaginated(c, assets, "CTV", nil)
}

func (b *deckBuilder) ottSection() error {
	c := cat(domain.KindOTT, "")
	assets := content(b.group.ByKind(domain.KindOTT))
	if len(assets) == 0 {
		return nil
	}
	return b.emitPaginated(c, assets, "OTT", func(plan *domain.SlidePlan, page int) {
		if page == 0 && b.withAnnos() {
			addOTTAnnotation(plan)
		}
	})
}

// fullISISection closes the deck with the aggregated disclaimers.
func (b *deckBuilder) fullISISection() error {
	for _, s := range buildFullISISlides(b.group.Disclaimers(), b.withAnnos()) {
		b.deck.Append(s)
	}
	return nil
}
