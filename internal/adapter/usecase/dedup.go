package usecase

import (
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// canonicalSections are the section base titles the repair pass guards.
// A section may legitimately appear once (plus adjacent continuations);
// any later recurrence is a re-emission and gets removed.
var canonicalSections = map[string]struct{}{
	"CTV":                             {},
	"DESKTOP INSTREAM":                {},
	"MOBILE INSTREAM":                 {},
	"OTT":                             {},
	"DESKTOP EXPANDABLE - ALL TEASERS": {},
	"DESKTOP EXPANDABLE - VPM":         {},
	"DESKTOP EXPANDABLE - ENGAGED":     {},
	"MOBILE EXPANDABLE - ALL TEASERS":  {},
	"MOBILE EXPANDABLE - ENGAGED":      {},
	"FULL ISI":                         {},
}

// baseTitle strips the continuation and video-frame qualifiers so
// follow-on slides resolve to their section's base name.
func baseTitle(title string) string {
	t := title
	for {
		switch {
		case strings.HasSuffix(t, " (Contd.)"):
			t = strings.TrimSuffix(t, " (Contd.)")
		case strings.HasSuffix(t, " VIDEO FRAME"):
			t = strings.TrimSuffix(t, " VIDEO FRAME")
		default:
			return t
		}
	}
}

// Repair removes slides that duplicate an already-completed canonical
// section. A canonical section owns a contiguous run of slides (its head
// plus adjacent continuations); any slide resolving to the same base name
// after that run has closed is a re-emission. Non-canonical titles are
// never touched. The pass never fails; on any doubt it keeps the slide.
func Repair(deck *domain.Deck) int {
	if deck == nil || len(deck.Slides) == 0 {
		return 0
	}

	var duplicates []int
	seen := make(map[string]struct{})
	current := ""
	for i, s := range deck.Slides {
		base := baseTitle(s.Title)
		if _, canonical := canonicalSections[base]; !canonical {
			current = ""
			continue
		}
		if base == current {
			continue
		}
		if _, dup := seen[base]; dup {
			duplicates = append(duplicates, i)
			continue
		}
		seen[base] = struct{}{}
		current = base
	}

	for i := len(duplicates) - 1; i >= 0; i-- {
		idx := duplicates[i]
		deck.Slides = append(deck.Slides[:idx], deck.Slides[idx+1:]...)
	}
	return len(duplicates)
}
