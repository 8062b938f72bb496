package driven

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
)

// JobStore persists rename job records for run history.
type JobStore interface {
	// Save stores a finished job record.
	Save(ctx context.Context, record domain.JobRecord) error

	// Get retrieves a record by job ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.JobRecord, error)

	// List returns records ordered by finish time, newest first.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.JobRecord, error)

	// Clear deletes all records.
	Clear(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}
