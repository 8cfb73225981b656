package usecase

import (
	"testing"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

func TestFolderTitle(t *testing.T) {
	cases := map[string]string{
		"vdxdesktopinframe/970x250":  "DESKTOP IN-FRAME - 970X250",
		"vdxmobileinframe/300x600":   "MOBILE IN-FRAME - 300X600",
		"vdxdesktopexpandable":       "DESKTOP EXPANDABLE",
		"ott":                        "OTT",
		"ott/1x10":                   "OTT",
		"ctv/1x10":                   "CTV",
		"vdxinstream/1x10":           "VDX DESKTOP INSTREAM",
		"vdxdesktopinstream/1x10":    "DESKTOP INSTREAM",
		"vdxmobileinstream/1x10":     "MOBILE INSTREAM",
		"ott/extra":                  "OTT - EXTRA",
		"customfolder":               "CUSTOMFOLDER",
		"customfolder/sub":           "CUSTOMFOLDER - SUB",
		"vdxdesktopexpandable/1x10":  "DESKTOP EXPANDABLE - 1X10",
	}
	for in, want := range cases {
		if got := FolderTitle(in); got != want {
			t.Errorf("FolderTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKindTitle(t *testing.T) {
	c := domain.Category{Kind: domain.KindDesktopInframe, Size: domain.Size970x250}
	if got := KindTitle(c); got != "DESKTOP IN-FRAME 970X250" {
		t.Errorf("KindTitle = %q", got)
	}
}

func TestContinuationTitle(t *testing.T) {
	inframe970 := domain.Category{Kind: domain.KindDesktopInframe, Size: domain.Size970x250}
	if got := ContinuationTitle("DESKTOP IN-FRAME 970X250", inframe970, 2); got != "DESKTOP IN-FRAME 970X250 (2)" {
		t.Errorf("970x250 continuation = %q", got)
	}
	ctv := domain.Category{Kind: domain.KindCTV}
	if got := ContinuationTitle("CTV", ctv, 2); got != "CTV (Contd.)" {
		t.Errorf("ctv continuation = %q", got)
	}
}
