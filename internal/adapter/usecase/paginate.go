package usecase

import (
	"sort"
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// priorityFn ranks an asset within its category; lower ranks sort first.
type priorityFn func(domain.ImageAsset) int

// defaultPriority orders teaser, main unit, then everything else.
func defaultPriority(a domain.ImageAsset) int {
	switch a.Role {
	case domain.RoleTeaser:
		return 0
	case domain.RoleMainUnit:
		return 1
	default:
		return 2
	}
}

// engagedPriority orders the video-player-mode shot first, then the main
// unit, then the rest.
func engagedPriority(a domain.ImageAsset) int {
	switch a.Role {
	case domain.RoleVideoPlayerMode:
		return 0
	case domain.RoleMainUnit:
		return 1
	default:
		return 2
	}
}

// priorityFor picks the ranking for a category. Desktop expandable teaser
// folders that carry exactly a VPM, a main unit and one extra shot with
// no teaser are really engaged captures mislabeled as teasers; the main
// unit leads there.
func priorityFor(c domain.Category, assets []domain.ImageAsset) priorityFn {
	switch c.Kind {
	case domain.KindDesktopExpandableEngaged, domain.KindMobileExpandableEngaged:
		return engagedPriority
	case domain.KindDesktopExpandableTeaser:
		if isMislabeledEngagedTrio(assets) {
			return func(a domain.ImageAsset) int {
				switch a.Role {
				case domain.RoleMainUnit:
					return 0
				case domain.RoleVideoPlayerMode:
					return 1
				default:
					return 2
				}
			}
		}
		return defaultPriority
	default:
		return defaultPriority
	}
}

func isMislabeledEngagedTrio(assets []domain.ImageAsset) bool {
	if len(assets) != 3 {
		return false
	}
	var vpm, main, other int
	for _, a := range assets {
		switch a.Role {
		case domain.RoleVideoPlayerMode:
			vpm++
		case domain.RoleMainUnit:
			main++
		case domain.RoleTeaser:
			return false
		default:
			other++
		}
	}
	return vpm == 1 && main == 1 && other == 1
}

// SortByPriority orders assets by (rank, lowercase filename) and returns
// a new slice; the input is not mutated.
func SortByPriority(c domain.Category, assets []domain.ImageAsset) []domain.ImageAsset {
	rank := priorityFor(c, assets)
	sorted := append([]domain.ImageAsset(nil), assets...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rank(sorted[i]), rank(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(sorted[i].FileName()) < strings.ToLower(sorted[j].FileName())
	})
	return sorted
}

// Page is one slide's worth of images for a category.
type Page struct {
	Images []domain.ImageAsset
}

// Paginate splits a category's sorted assets into per-slide pages. The
// first page takes the leading run of rank-0/rank-1 assets up to the
// category capacity; continuation pages each match the first page's size
// so follow-on slides fill the same slots. Categories with no ranked
// assets at all (in-frame walls, video frames) chunk by the full catalog
// capacity instead.
func Paginate(c domain.Category, assets []domain.ImageAsset, capacity int) []Page {
	sorted := SortByPriority(c, assets)
	if len(sorted) == 0 {
		return nil
	}
	rank := priorityFor(c, sorted)

	primary := 0
	for primary < len(sorted) && primary < capacity && rank(sorted[primary]) < 2 {
		primary++
	}

	groupSize := primary
	if groupSize == 0 {
		groupSize = capacity
	}
	if groupSize < 1 {
		groupSize = 2
	}

	pages := make([]Page, 0, 1+(len(sorted)-primary+groupSize-1)/groupSize)
	if primary > 0 {
		pages = append(pages, Page{Images: sorted[:primary]})
	}
	for i := primary; i < len(sorted); i += groupSize {
		end := i + groupSize
		if end > len(sorted) {
			end = len(sorted)
		}
		pages = append(pages, Page{Images: sorted[i:end]})
	}
	return pages
}
