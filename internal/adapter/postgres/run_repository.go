package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sentivora/mlr-automation/internal/core/domain"
)

// RunRepository implements port.RunRepository using pgxpool for PostgreSQL.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository returns a new repository instance.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// InsertRun records one completed assembly run.
func (r *RunRepository) InsertRun(ctx context.Context, run domain.Run) error {
	query := `
        INSERT INTO runs (id, source_file, output_name, slide_count, folder_count, video_folder_found, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		run.ID,
		run.SourceFile,
		run.OutputName,
		run.SlideCount,
		run.FolderCount,
		run.VideoFolderFound,
		run.CreatedAt,
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	query := `
        SELECT id, source_file, output_name, slide_count, folder_count, video_folder_found, created_at
        FROM runs
        ORDER BY created_at DESC
        LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Run, error) {
		var run domain.Run
		err := row.Scan(
			&run.ID,
			&run.SourceFile,
			&run.OutputName,
			&run.SlideCount,
			&run.FolderCount,
			&run.VideoFolderFound,
			&run.CreatedAt,
		)
		return run, err
	})
}
