package usecase

import (
	"strconv"
	"strings"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// baseTitles maps the canonical top-level folder keyword to its slide
// title base. Lookups are longest-keyword-first so "vdxdesktopinstream"
// never falls through to "vdxinstream".
var baseTitles = []struct {
	keyword string
	title   string
}{
	{"vdxdesktopexpandable", "DESKTOP EXPANDABLE"},
	{"vdxmobileexpandable", "MOBILE EXPANDABLE"},
	{"vdxdesktopinstream", "DESKTOP INSTREAM"},
	{"vdxmobileinstream", "MOBILE INSTREAM"},
	{"vdxdesktopinframe", "DESKTOP IN-FRAME"},
	{"vdxmobileinframe", "MOBILE IN-FRAME"},
	{"vdxinstream", "VDX DESKTOP INSTREAM"},
	{"ott", "OTT"},
	{"ctv", "CTV"},
	{"video", "VIDEO"},
}

// kindTitles gives the section base title per category kind, used when a
// section is assembled from consolidated assets rather than one folder.
var kindTitles = map[domain.Kind]string{
	domain.KindVideo:                   "VIDEO",
	domain.KindOTT:                     "OTT",
	domain.KindCTV:                     "CTV",
	domain.KindDesktopInstream:         "DESKTOP INSTREAM",
	domain.KindDesktopInframe:          "DESKTOP IN-FRAME",
	domain.KindDesktopExpandableTeaser: "DESKTOP EXPANDABLE - TEASER",
	domain.KindDesktopExpandableEngaged: "DESKTOP EXPANDABLE - ENGAGED",
	domain.KindMobileInstream:          "MOBILE INSTREAM",
	domain.KindMobileInframe:           "MOBILE IN-FRAME",
	domain.KindMobileExpandableTeaser:  "MOBILE EXPANDABLE - TEASER",
	domain.KindMobileExpandableEngaged: "MOBILE EXPANDABLE - ENGAGED",
	domain.KindUnclassified:            "",
}

// KindTitle returns the section base title for a category, appending the
// in-frame size when present ("DESKTOP IN-FRAME 970X250").
func KindTitle(c domain.Category) string {
	base := kindTitles[c.Kind]
	if c.Size != "" {
		return base + " " + strings.ToUpper(c.Size)
	}
	return base
}

// suffixExempt reports whether a subfolder segment is suppressed from the
// title. The "1x10" layout folders under OTT, CTV and instream trees are
// an internal packaging detail, not a display variant.
func suffixExempt(topKeyword, sub string) bool {
	if !strings.EqualFold(sub, "1x10") {
		return false
	}
	switch topKeyword {
	case "ott", "ctv", "vdxinstream", "vdxdesktopinstream", "vdxmobileinstream":
		return true
	}
	return false
}

// FolderTitle formats a raw folder path into its slide title: the mapped
// base name for the top segment, then " - <SEGMENT>" for each nested
// segment, all upper-cased. Unknown top segments are used verbatim.
func FolderTitle(folder string) string {
	clean := strings.Trim(strings.ReplaceAll(folder, "\\", "/"), "/")
	segments := strings.Split(clean, "/")
	if len(segments) == 0 || segments[0] == "" {
		return ""
	}

	top := strings.ToLower(segments[0])
	title := strings.ToUpper(segments[0])
	keyword := ""
	for _, b := range baseTitles {
		if strings.Contains(top, b.keyword) {
			title = b.title
			keyword = b.keyword
			break
		}
	}

	for _, sub := range segments[1:] {
		if sub == "" || suffixExempt(keyword, sub) {
			continue
		}
		title += " - " + strings.ToUpper(sub)
	}
	return title
}

// ContinuationTitle derives the title of a follow-on slide. In-frame
// 970x250 walls historically number their slides; everything else uses
// the "(Contd.)" convention.
func ContinuationTitle(base string, c domain.Category, index int) string {
	if c.Kind == domain.KindDesktopInframe && c.Size == domain.Size970x250 {
		return base + " (" + strconv.Itoa(index) + ")"
	}
	return base + " (Contd.)"
}
