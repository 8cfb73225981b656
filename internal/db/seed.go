package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo run rows so the run-history endpoint has data in
// development environments. Existing rows are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for i := 1; i <= 5; i++ {
		source := fmt.Sprintf("demo-campaign-%d.zip", i)
		output := fmt.Sprintf("demo-campaign-%d.pptx.plan.json", i)
		_, err := db.Exec(ctx, `INSERT INTO runs
    (id, source_file, output_name, slide_count, folder_count, video_folder_found, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			uuid.NewString(), source, output, 10+i, 3+i, i%2 == 0,
			time.Now().Add(-time.Duration(i)*time.Hour))
		if err != nil {
			return err
		}
	}
	return nil
}
