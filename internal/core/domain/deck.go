package domain

// Deck is the ordered slide-plan list for one run. It is built
// incrementally by the sequencer, finalised by the repair pass, then handed
// to the document-writing backend and discarded. Nothing persists it across
// runs.
type Deck struct {
	OutputName string       `json:"outputName"`
	Slides     []*SlidePlan `json:"slides"`
}

// Append adds finished slides to the deck.
func (d *Deck) Append(slides ...*SlidePlan) {
	d.Slides = append(d.Slides, slides...)
}

// Titles returns the slide titles in order, used by the repair pass and in
// tests.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		out[i] = s.Title
	}
	return out
}

// Len returns the slide count.
func (d *Deck) Len() int { return len(d.Slides) }
