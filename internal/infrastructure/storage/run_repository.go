package storage

import (
	"context"
	"database/sql"
	"fmt"

	"sportshub/internal/domain"
	"sportshub/internal/ports"
)

// RunRepository persists ingestion run records.
type RunRepository struct {
	db *sql.DB
}

var _ ports.RunRepository = (*RunRepository)(nil)

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// CreateRun records a run at start, in running state.
func (r *RunRepository) CreateRun(ctx context.Context, run domain.IngestRun) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ingest_runs (id, started_at, status, inserted_count)
		 VALUES ($1, $2, $3, $4)`,
		run.ID, run.StartedAt, string(run.Status), run.InsertedCount)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// FinishRun writes the terminal state of a run.
func (r *RunRepository) FinishRun(ctx context.Context, run domain.IngestRun) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE ingest_runs
		 SET finished_at = $1, status = $2, inserted_count = $3, error = $4
		 WHERE id = $5`,
		run.FinishedAt, string(run.Status), run.InsertedCount,
		nullString(run.Error), run.ID)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", run.ID, err)
	}
	return nil
}
