package port

import (
	"context"
	"errors"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// ErrNoAssets is returned by the extractor when an upload contains no
// image files at all. Images that extract but fail to decode are dropped
// during classification instead; that run still completes and yields a
// deck holding only the blank FULL ISI slide.
var ErrNoAssets = errors.New("no image files in upload")

// ErrUnregisteredCategory indicates a geometry lookup for a category the
// catalog does not know. The catalog is validated at startup, so hitting
// this at runtime is a programming error that fails the whole run.
var ErrUnregisteredCategory = errors.New("unregistered category in geometry catalog")

// AnnotationMode controls whether explanatory callout text boxes are added
// to the generated slides.
type AnnotationMode string

const (
	WithAnnotations AnnotationMode = "with_annos"
	NoAnnotations   AnnotationMode = "no_annos"
)

// SlotRect is a rectangle in centimeters used for configurable base-image
// positioning in video-frame sections.
type SlotRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OverlayOffsets positions the video-preview overlay relative to each grid
// cell origin.
type OverlayOffsets struct {
	XOffset float64 `json:"xOffset"`
	YOffset float64 `json:"yOffset"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// VideoGridParams configures the N-up grid used when compositing video
// preview frames onto copies of a base creative. GridLayout "auto" derives
// the grid from ImagesPerSlide (1x1/2x1/3x1/2x2/3x2).
type VideoGridParams struct {
	ImagesPerSlide int            `json:"imagesPerSlide"`
	GridLayout     string         `json:"gridLayout"`
	SpacingCm      float64        `json:"spacingCm"`
	Base           SlotRect       `json:"base"`
	Overlay        OverlayOffsets `json:"overlay"`
}

// DefaultVideoGridParams returns the stock overlay geometry used when the
// request does not override it.
func DefaultVideoGridParams() VideoGridParams {
	return VideoGridParams{
		ImagesPerSlide: 2,
		GridLayout:     "auto",
		SpacingCm:      0.5,
		Base:           SlotRect{X: 0.82, Y: 3.62, Width: 15.34, Height: 9.26},
		Overlay:        OverlayOffsets{XOffset: 0, YOffset: 1.28, Width: 7.96, Height: 4.48},
	}
}

// AssemblyConfig is the full request configuration for one assembly run.
type AssemblyConfig struct {
	Annotations          AnnotationMode  `json:"annotations"`
	ImplementVideoFrames bool            `json:"implementVideoFrames"`
	DesktopInstreamGrid  VideoGridParams `json:"desktopInstreamGrid"`
	DesktopEngagedGrid   VideoGridParams `json:"desktopEngagedGrid"`
	OutputBaseName       string          `json:"outputBaseName"`
}

// Normalized fills zero-valued grid parameters with defaults and coerces
// the annotation mode to a known value.
func (c AssemblyConfig) Normalized() AssemblyConfig {
	if c.Annotations != NoAnnotations {
		c.Annotations = WithAnnotations
	}
	if c.DesktopInstreamGrid.ImagesPerSlide == 0 {
		c.DesktopInstreamGrid = DefaultVideoGridParams()
	}
	if c.DesktopEngagedGrid.ImagesPerSlide == 0 {
		c.DesktopEngagedGrid = DefaultVideoGridParams()
	}
	return c
}

// FolderMap is the raw extractor output: relative folder path (separators
// normalised to '/') to the image file paths found directly inside it.
type FolderMap map[string][]string

// AssembleResult is the DTO returned to the HTTP layer after a successful
// run.
type AssembleResult struct {
	RunID            string `json:"run_id"`
	OutputName       string `json:"output"`
	SlideCount       int    `json:"slide_count"`
	FolderCount      int    `json:"folder_count"`
	VideoFolderFound bool   `json:"video_folder_found"`
}

// AssemblyUseCase is the primary inbound port: turn an extracted folder map
// into a written, stored deck. Implementations must either complete the
// whole pipeline or fail without publishing partial output.
type AssemblyUseCase interface {
	// AssembleDeck classifies the folder map, runs the slide sequencer and
	// repair pass, and returns the finished layout plan without writing it
	// anywhere. Exposed separately for previewing and testing.
	AssembleDeck(ctx context.Context, folders FolderMap, cfg AssemblyConfig) (*domain.Deck, error)

	// ProcessUpload runs the full pipeline for an uploaded archive or
	// single image already on disk: extract, assemble, write, store, and
	// record a run row.
	ProcessUpload(ctx context.Context, uploadPath, originalName string, cfg AssemblyConfig) (*AssembleResult, error)

	// ListRuns returns recent run records, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
