package planwriter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

func TestWriteProducesPlanDocument(t *testing.T) {
	deck := &domain.Deck{OutputName: "campaign.pptx"}
	s := domain.NewSlidePlan("OTT")
	s.Place(domain.PlacedImage{
		Asset: domain.ImageAsset{Path: "ott/a.png"},
		X:     1.27, Y: 2.3, Width: 15.34, Height: 13.97,
	})
	deck.Append(s)

	written, err := New().Write(context.Background(), deck)
	require.NoError(t, err)
	require.Equal(t, "campaign.pptx.plan.json", written.Name)
	require.Equal(t, "application/json", written.ContentType)
	require.Equal(t, 1, written.SlideCount)

	var doc struct {
		Version int                 `json:"version"`
		Output  string              `json:"output"`
		Slides  []*domain.SlidePlan `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(written.Data, &doc))
	require.Equal(t, 1, doc.Version)
	require.Equal(t, "campaign.pptx", doc.Output)
	require.Len(t, doc.Slides, 1)
	require.Equal(t, "OTT", doc.Slides[0].Title)
	require.Equal(t, "ott/a.png", doc.Slides[0].Images[0].Asset.Path)
}

func TestWriteRejectsEmptyDeck(t *testing.T) {
	_, err := New().Write(context.Background(), &domain.Deck{OutputName: "x"})
	require.Error(t, err)
	_, err = New().Write(context.Background(), nil)
	require.Error(t, err)
}
