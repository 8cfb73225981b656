package domain

// Slide canvas constants in centimeters (16:9 widescreen).
const (
	SlideWidthCm  = 33.87
	SlideHeightCm = 19.05
	TitleBarCm    = 1.79
)

// CropSpec instructs the document writer to use only part of the source
// image. Zero value means the whole image. Coordinates are source pixels.
type CropSpec struct {
	Top    int `json:"top,omitempty"`
	Bottom int `json:"bottom,omitempty"`
}

// Cropped reports whether any cropping applies.
func (c CropSpec) Cropped() bool { return c.Top != 0 || c.Bottom != 0 }

// PlacedImage is one image placement instruction within a slide. The
// rectangle is in centimeters from the slide's top-left corner.
type PlacedImage struct {
	Asset     ImageAsset `json:"asset"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	HasBorder bool       `json:"hasBorder"`
	Crop      CropSpec   `json:"crop,omitempty"`
}

// TextRun is one styled fragment of text-box content.
type TextRun struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// TextBox is a positioned annotation or label. Colors are "#RRGGBB";
// empty Background means transparent, empty BorderColor means no border.
type TextBox struct {
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	Width         float64   `json:"width"`
	Height        float64   `json:"height"`
	Runs          []TextRun `json:"runs"`
	Background    string    `json:"background,omitempty"`
	BorderColor   string    `json:"borderColor,omitempty"`
	BorderWidthPt float64   `json:"borderWidthPt,omitempty"`
	FontSizePt    float64   `json:"fontSizePt,omitempty"`
	Centered      bool      `json:"centered,omitempty"`
}

// SlidePlan is the layout plan of a single slide. It is mutable while a
// section builds it and must not change once appended to the final deck.
type SlidePlan struct {
	Title          string        `json:"title"`
	IsContinuation bool          `json:"isContinuation,omitempty"`
	Images         []PlacedImage `json:"images,omitempty"`
	TextBoxes      []TextBox     `json:"textBoxes,omitempty"`
	HasLogo        bool          `json:"hasLogo"`
}

// NewSlidePlan returns a plan with the logo enabled, matching the deck
// template where every slide carries the corner logo.
func NewSlidePlan(title string) *SlidePlan {
	return &SlidePlan{Title: title, HasLogo: true}
}

// Place appends an image placement.
func (s *SlidePlan) Place(img PlacedImage) {
	s.Images = append(s.Images, img)
}

// AddText appends a text box.
func (s *SlidePlan) AddText(tb TextBox) {
	s.TextBoxes = append(s.TextBoxes, tb)
}

// Label adds a small centered caption box below the given rectangle, used
// for size tokens and frame numbers.
func (s *SlidePlan) Label(text string, x, y, w float64) {
	s.AddText(TextBox{
		X: x, Y: y, Width: w, Height: 0.76,
		Runs:       []TextRun{{Text: text, Bold: true}},
		FontSizePt: 9,
		Centered:   true,
	})
}
