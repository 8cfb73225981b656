// Package planwriter serializes a finished deck into the JSON layout plan
// consumed by the document-rendering backend.
package planwriter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sentivora/mlr-automation/internal/core/domain"
	"github.com/sentivora/mlr-automation/internal/core/port"
)

const planContentType = "application/json"

// planDocument is the on-wire envelope around the slide list. Geometry is
// centimeters, crops are source pixels; the renderer owns unit conversion.
type planDocument struct {
	Version int                 `json:"version"`
	Output  string              `json:"output"`
	Slides  []*domain.SlidePlan `json:"slides"`
}

// Writer implements port.DeckWriter by emitting the layout plan as
// indented JSON.
type Writer struct{}

func New() *Writer { return &Writer{} }

func (w *Writer) Write(_ context.Context, deck *domain.Deck) (*port.WrittenDeck, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, fmt.Errorf("refusing to write an empty deck")
	}
	doc := planDocument{
		Version: 1,
		Output:  deck.OutputName,
		Slides:  deck.Slides,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	return &port.WrittenDeck{
		Name:        deck.OutputName + ".plan.json",
		ContentType: planContentType,
		Data:        data,
		SlideCount:  len(deck.Slides),
	}, nil
}
