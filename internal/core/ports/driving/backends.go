package driving

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
)

// BackendRegistry provides information about available backend types.
type BackendRegistry interface {
	// List returns all backend types, in a stable order.
	List() []domain.BackendType

	// Get returns a specific backend type by ID.
	Get(id string) (*domain.BackendType, error)

	// ValidateJob checks a job against its backend type: file
	// requirements, extension compatibility, explicit layer list.
	ValidateJob(job domain.RenameJob) error

	// Available reports whether the backend can run on this machine.
	Available(ctx context.Context, id string) error
}
