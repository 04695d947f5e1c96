package repository

import (
	"context"
	"fmt"

	"gatetogether/pkg/database"

	"go.uber.org/zap"
)

// CounterRepository allocates strictly increasing sequence values. The
// counter lives in the store, never in process memory, so allocation stays
// correct across multiple server instances.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type counterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCounterRepository(db database.PgxIface, log *zap.Logger) CounterRepository {
	return &counterRepository{
		db:  db,
		log: log.With(zap.String("repository", "counter")),
	}
}

// Next atomically increments the named counter and returns the new value.
// The counter row is created on first use, so the first call returns 1.
// Two concurrent callers can never receive the same value.
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, seq)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`

	var seq int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&seq); err != nil {
		r.log.Error("Failed to allocate sequence",
			zap.Error(err),
			zap.String("counter", name),
		)
		return 0, fmt.Errorf("next sequence for %s: %w", name, err)
	}

	return seq, nil
}
