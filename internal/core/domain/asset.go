package domain

import "strings"

// Role is the semantic function of a creative image within its ad unit,
// decided by exact filename convention during classification.
type Role int

const (
	RoleOther Role = iota
	RoleTeaser
	RoleMainUnit
	RoleVideoPlayerMode
	RoleDisclaimer
)

// String returns a short label for logging.
func (r Role) String() string {
	switch r {
	case RoleTeaser:
		return "teaser"
	case RoleMainUnit:
		return "mainunit"
	case RoleVideoPlayerMode:
		return "vpm"
	case RoleDisclaimer:
		return "disclaimer"
	default:
		return "other"
	}
}

// Kind is the closed set of canonical ad-format classifications a folder
// path can map to. Classification is total: anything unrecognised becomes
// KindUnclassified rather than an error.
type Kind int

const (
	KindUnclassified Kind = iota
	KindOTT
	KindCTV
	KindDesktopInstream
	KindDesktopInframe
	KindDesktopExpandableTeaser
	KindDesktopExpandableEngaged
	KindMobileInstream
	KindMobileInframe
	KindMobileExpandableTeaser
	KindMobileExpandableEngaged
	KindVideo
)

// Standard ad-unit size tokens recognised in folder paths.
const (
	Size160x600 = "160x600"
	Size300x250 = "300x250"
	Size300x600 = "300x600"
	Size728x90  = "728x90"
	Size970x250 = "970x250"
	Size320x50  = "320x50"
)

// InframeSizeOrder is the fixed order Desktop In-frame sub-sizes are
// emitted in by the slide sequencer.
var InframeSizeOrder = []string{Size970x250, Size300x250, Size300x600, Size160x600, Size728x90}

// Category pairs a canonical kind with an optional sub-size. Size is only
// meaningful for in-frame kinds.
type Category struct {
	Kind Kind
	Size string
}

func (c Category) String() string {
	if c.Size == "" {
		return c.Kind.String()
	}
	return c.Kind.String() + "-" + c.Size
}

func (k Kind) String() string {
	switch k {
	case KindOTT:
		return "ott"
	case KindCTV:
		return "ctv"
	case KindDesktopInstream:
		return "desktop-instream"
	case KindDesktopInframe:
		return "desktop-inframe"
	case KindDesktopExpandableTeaser:
		return "desktop-expandable-teaser"
	case KindDesktopExpandableEngaged:
		return "desktop-expandable-engaged"
	case KindMobileInstream:
		return "mobile-instream"
	case KindMobileInframe:
		return "mobile-inframe"
	case KindMobileExpandableTeaser:
		return "mobile-expandable-teaser"
	case KindMobileExpandableEngaged:
		return "mobile-expandable-engaged"
	case KindVideo:
		return "video"
	default:
		return "unclassified"
	}
}

// ImageAsset is one classified creative image. It is created once during
// classification and never mutated; identity is the Path.
type ImageAsset struct {
	// Path locates the decoded pixel data on disk.
	Path string
	// SourceFolder is the original relative folder the asset came from,
	// with separators normalised to '/'.
	SourceFolder string
	Role         Role
	Category     Category
	// PixelWidth and PixelHeight are read once when the asset is opened.
	PixelWidth  int
	PixelHeight int
}

// FileName returns the lower-cased base name of the asset path.
func (a ImageAsset) FileName() string {
	p := strings.ReplaceAll(a.Path, "\\", "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	return strings.ToLower(p)
}

// AspectRatio returns width/height, defaulting to 1 when dimensions are
// unknown.
func (a ImageAsset) AspectRatio() float64 {
	if a.PixelWidth <= 0 || a.PixelHeight <= 0 {
		return 1
	}
	return float64(a.PixelWidth) / float64(a.PixelHeight)
}
