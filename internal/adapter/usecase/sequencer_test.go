package usecase

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

func groupOf(t *testing.T, folders map[string][]domain.ImageAsset) *domain.FolderGroup {
	t.Helper()
	g := domain.NewFolderGroup()
	for _, folder := range sortedKeys(folders) {
		g.Add(folder, folders[folder]...)
	}
	return g
}

func sortedKeys(m map[string][]domain.ImageAsset) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func classified(folder, file string, role domain.Role, w, h int) domain.ImageAsset {
	return domain.ImageAsset{
		Path:         folder + "/" + file,
		SourceFolder: folder,
		Role:         role,
		Category:     ClassifyPath(folder),
		PixelWidth:   w,
		PixelHeight:  h,
	}
}

func TestBuildDeckSectionOrder(t *testing.T) {
	group := groupOf(t, map[string][]domain.ImageAsset{
		"video": {
			classified("video", "frame-01.png", domain.RoleOther, 1280, 720),
		},
		"vdxdesktopinframe/970x250": {
			classified("vdxdesktopinframe/970x250", "a.png", domain.RoleOther, 970, 250),
		},
		"vdxdesktopinframe/728x90": {
			classified("vdxdesktopinframe/728x90", "a.png", domain.RoleOther, 728, 90),
		},
		"ctv": {
			classified("ctv", "shot.png", domain.RoleOther, 1920, 1080),
		},
		"ott": {
			classified("ott", "shot.png", domain.RoleOther, 1920, 1080),
		},
	})

	deck, err := BuildDeck(group, port.AssemblyConfig{Annotations: port.NoAnnotations}, "out.pptx", discardLogger())
	require.NoError(t, err)

	require.Equal(t, []string{
		"VIDEO",
		"DESKTOP IN-FRAME 970X250",
		"DESKTOP IN-FRAME 728X90",
		"CTV",
		"OTT",
		"FULL ISI",
	}, deck.Titles())
}

func TestBuildDeckAlwaysClosesWithFullISI(t *testing.T) {
	group := groupOf(t, map[string][]domain.ImageAsset{
		"ctv": {classified("ctv", "a.png", domain.RoleOther, 100, 100)},
	})
	deck, err := BuildDeck(group, port.AssemblyConfig{}, "out.pptx", discardLogger())
	require.NoError(t, err)
	require.Equal(t, "FULL ISI", deck.Slides[deck.Len()-1].Title)
	require.Empty(t, deck.Slides[deck.Len()-1].Images)
}

func TestBuildDeck970AnnotationsOnFirstSlide(t *testing.T) {
	folder := "vdxdesktopinframe/970x250"
	group := groupOf(t, map[string][]domain.ImageAsset{
		folder: {
			classified(folder, "a.png", domain.RoleOther, 970, 250),
			classified(folder, "b.png", domain.RoleOther, 970, 250),
			classified(folder, "c.png", domain.RoleOther, 970, 250),
		},
	})
	deck, err := BuildDeck(group, port.AssemblyConfig{Annotations: port.WithAnnotations}, "out.pptx", discardLogger())
	require.NoError(t, err)

	require.Equal(t, "DESKTOP IN-FRAME 970X250", deck.Slides[0].Title)
	require.NotEmpty(t, deck.Slides[0].TextBoxes)
	// annotated slots are the shrunken variant
	require.InDelta(t, 23.7, deck.Slides[0].Images[0].Width, 0.001)

	// numbered continuation, full-width slots, no annotation boxes
	require.Equal(t, "DESKTOP IN-FRAME 970X250 (2)", deck.Slides[1].Title)
	require.Empty(t, deck.Slides[1].TextBoxes)
	require.InDelta(t, 27.59, deck.Slides[1].Images[0].Width, 0.001)
}

func TestBuildDeckVideoFrameVariantReplacesInstream(t *testing.T) {
	group := groupOf(t, map[string][]domain.ImageAsset{
		"video": {
			classified("video", "frame-01.png", domain.RoleOther, 1280, 720),
			classified("video", "frame-02.png", domain.RoleOther, 1280, 720),
			classified("video", "frame-03.png", domain.RoleOther, 1280, 720),
		},
		"vdxdesktopinstream": {
			classified("vdxdesktopinstream", "mainunit.png", domain.RoleMainUnit, 1900, 1100),
		},
	})

	cfg := port.AssemblyConfig{Annotations: port.NoAnnotations, ImplementVideoFrames: true}
	deck, err := BuildDeck(group, cfg, "out.pptx", discardLogger())
	require.NoError(t, err)

	var plain, variant int
	for _, s := range deck.Slides {
		switch s.Title {
		case "DESKTOP INSTREAM":
			plain++
		case "DESKTOP INSTREAM VIDEO FRAME", "DESKTOP INSTREAM VIDEO FRAME (Contd.)":
			variant++
		}
	}
	require.Zero(t, plain, "variant must replace the plain section")
	require.Equal(t, 2, variant) // 3 previews at 2 per slide

	// each occupied cell pairs a base copy with one overlay
	for _, s := range deck.Slides {
		if s.Title == "DESKTOP INSTREAM VIDEO FRAME" {
			require.Equal(t, 4, len(s.Images))
			require.Equal(t, "vdxdesktopinstream/mainunit.png", s.Images[0].Asset.Path)
			require.Equal(t, "video/frame-01.png", s.Images[1].Asset.Path)
		}
	}
}

func TestBuildDeckMobileInstreamCrop(t *testing.T) {
	group := groupOf(t, map[string][]domain.ImageAsset{
		"vdxmobileinstream": {
			classified("vdxmobileinstream", "tall.png", domain.RoleOther, 400, 900),
			classified("vdxmobileinstream", "short.png", domain.RoleOther, 400, 700),
		},
	})
	deck, err := BuildDeck(group, port.AssemblyConfig{Annotations: port.NoAnnotations}, "out.pptx", discardLogger())
	require.NoError(t, err)

	require.Equal(t, "MOBILE INSTREAM", deck.Slides[0].Title)
	for _, img := range deck.Slides[0].Images {
		if img.Asset.PixelHeight > mobileInstreamViewportPx {
			require.Equal(t, mobileInstreamViewportPx, img.Crop.Bottom)
		} else {
			require.False(t, img.Crop.Cropped())
		}
	}
}

func TestBuildDeckConsolidatedTeaserWalls(t *testing.T) {
	group := groupOf(t, map[string][]domain.ImageAsset{
		"vdxdesktopexpandable/970x250": {
			classified("vdxdesktopexpandable/970x250", "teaser.png", domain.RoleTeaser, 1940, 500),
			classified("vdxdesktopexpandable/970x250", "extra.png", domain.RoleOther, 1940, 500),
		},
		"vdxdesktopexpandable/300x250": {
			classified("vdxdesktopexpandable/300x250", "teaser.png", domain.RoleTeaser, 600, 500),
		},
		"vdxmobileexpandable/a": {
			classified("vdxmobileexpandable/a", "teaser.png", domain.RoleTeaser, 640, 1136),
		},
		"vdxmobileexpandable/b": {
			classified("vdxmobileexpandable/b", "teaser.png", domain.RoleTeaser, 640, 1136),
		},
	})
	deck, err := BuildDeck(group, port.AssemblyConfig{Annotations: port.NoAnnotations}, "out.pptx", discardLogger())
	require.NoError(t, err)

	titles := deck.Titles()
	require.Contains(t, titles, "DESKTOP EXPANDABLE - ALL TEASERS")
	require.Contains(t, titles, "MOBILE EXPANDABLE - ALL TEASERS")
	require.Contains(t, titles, "DESKTOP EXPANDABLE")

	for _, s := range deck.Slides {
		switch s.Title {
		case "DESKTOP EXPANDABLE - ALL TEASERS":
			require.Len(t, s.Images, 2) // one teaser per folder, by size slot
		case "MOBILE EXPANDABLE - ALL TEASERS":
			require.Len(t, s.Images, 2)
		case "DESKTOP EXPANDABLE":
			// the per-folder walkthrough repeats the wall teasers
			require.Len(t, s.Images, 2)
			require.Equal(t, domain.RoleTeaser, s.Images[0].Asset.Role)
			require.Equal(t, domain.RoleTeaser, s.Images[1].Asset.Role)
		case "DESKTOP EXPANDABLE (Contd.)":
			require.Len(t, s.Images, 1)
			require.Equal(t, "vdxdesktopexpandable/970x250/extra.png", s.Images[0].Asset.Path)
		}
	}
	require.Contains(t, deck.Titles(), "DESKTOP EXPANDABLE (Contd.)")
}

func TestBuildDeckExpandableTeaserPair(t *testing.T) {
	folder := "vdxdesktopexpandable/300x600"
	group := groupOf(t, map[string][]domain.ImageAsset{
		folder: {
			classified(folder, "teaser.png", domain.RoleTeaser, 600, 1200),
			classified(folder, "mainunit.png", domain.RoleMainUnit, 600, 1200),
		},
	})
	deck, err := BuildDeck(group, port.AssemblyConfig{Annotations: port.NoAnnotations}, "out.pptx", discardLogger())
	require.NoError(t, err)

	require.Equal(t, []string{
		"DESKTOP EXPANDABLE - ALL TEASERS",
		"DESKTOP EXPANDABLE",
		"FULL ISI",
	}, deck.Titles())

	var expandable *domain.SlidePlan
	for _, s := range deck.Slides {
		if s.Title == "DESKTOP EXPANDABLE" {
			expandable = s
		}
	}
	require.NotNil(t, expandable)
	require.Len(t, expandable.Images, 2)
	require.Equal(t, folder+"/teaser.png", expandable.Images[0].Asset.Path)
	require.Equal(t, folder+"/mainunit.png", expandable.Images[1].Asset.Path)
}

func TestBuildDeckVideoSectionPaginatesSixPerSlide(t *testing.T) {
	frames := make([]domain.ImageAsset, 0, 8)
	for i := 1; i <= 8; i++ {
		frames = append(frames, classified("video", fmt.Sprintf("frame-%02d.png", i), domain.RoleOther, 1280, 720))
	}
	group := groupOf(t, map[string][]domain.ImageAsset{"video": frames})

	deck, err := BuildDeck(group, port.AssemblyConfig{}, "out.pptx", discardLogger())
	require.NoError(t, err)

	require.Equal(t, "VIDEO", deck.Slides[0].Title)
	require.Len(t, deck.Slides[0].Images, 6)
	require.Equal(t, "VIDEO (Contd.)", deck.Slides[1].Title)
	require.Len(t, deck.Slides[1].Images, 2)

	// frame labels number straight through the continuation
	require.Equal(t, "Frame-01", deck.Slides[0].TextBoxes[0].Runs[0].Text)
	require.Equal(t, "Frame-07", deck.Slides[1].TextBoxes[0].Runs[0].Text)
	require.Equal(t, "Frame-08", deck.Slides[1].TextBoxes[1].Runs[0].Text)
}
