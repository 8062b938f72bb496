package driving

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
)

// HistoryService exposes recorded rename runs.
type HistoryService interface {
	// List returns records, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.JobRecord, error)

	// Get returns one record by job ID.
	Get(ctx context.Context, id string) (*domain.JobRecord, error)

	// Clear deletes all records.
	Clear(ctx context.Context) error
}
