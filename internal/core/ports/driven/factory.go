package driven

import (
	"github.com/prelayn/prelayn/internal/core/domain"
)

// BackendBuilder creates a Backend bound to a job.
type BackendBuilder func(job domain.RenameJob) (Backend, error)

// BackendFactory creates backends from job configuration.
// It maintains a registry of backend types and their builders.
type BackendFactory interface {
	// Create returns a Backend for the given job.
	// Returns ErrUnsupportedType if the job's backend ID is unknown.
	Create(job domain.RenameJob) (Backend, error)

	// Register adds a backend builder for the given type.
	Register(backendType string, builder BackendBuilder)

	// SupportedTypes returns all registered backend types.
	SupportedTypes() []string
}
