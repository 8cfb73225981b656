package port

import (
	"context"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// RunRepository persists run records. It is an outbound port; the engine
// itself is stateless per request.
type RunRepository interface {
	InsertRun(ctx context.Context, run domain.Run) error
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
