package port

import (
	"context"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// WrittenDeck describes the document produced by a DeckWriter.
type WrittenDeck struct {
	// Name is the storage object name of the written document.
	Name string
	// ContentType of the produced document.
	ContentType string
	// Data is the serialized document.
	Data []byte
	// SlideCount as rendered, for reporting.
	SlideCount int
}

// DeckWriter is the outbound port to the document-writing backend. It
// consumes a finalized Deck read-only: per slide it must render the title
// bar, place each image at its exact rectangle with its border flag, render
// each text box with its styling, and place the fixed-position logo when
// HasLogo is set.
type DeckWriter interface {
	Write(ctx context.Context, deck *domain.Deck) (*WrittenDeck, error)
}
