package driven

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
)

// Backend performs the rename-and-save operation for one job.
// Each backend strategy (dxf, com, autocad, sendkeys) implements this
// interface. Backends are single-use: create, validate, rename, close.
type Backend interface {
	// Type returns the backend type identifier.
	Type() string

	// Capabilities returns what this backend supports.
	Capabilities() BackendCapabilities

	// Validate checks the backend can run the job on this machine.
	// For the file backend this checks the input file parses; for
	// application-driving backends it checks the platform and that the
	// application can be reached. Returns nil if ready.
	Validate(ctx context.Context) error

	// ListLayers enumerates the layer names of the drawing, in the order
	// the backend sees them. Only available if CanEnumerateLayers is true.
	ListLayers(ctx context.Context) ([]domain.Layer, error)

	// Rename prepends the job's prefix to every non-reserved layer name
	// and saves the result. Errors from the driven application or file
	// surface verbatim; there are no retries.
	Rename(ctx context.Context) (*domain.RenameReport, error)

	// Close releases resources (COM handles, open files).
	Close() error
}

// BackendCapabilities describes what a backend supports.
type BackendCapabilities struct {
	// CanEnumerateLayers indicates the backend can list layer names.
	// The keystroke backend cannot; it needs an explicit layer list.
	CanEnumerateLayers bool

	// RequiresRunningApplication indicates the backend drives a running
	// CAD application rather than touching the file itself.
	RequiresRunningApplication bool

	// RequiresFiles indicates the backend takes explicit input and output
	// file paths. The active-document backend does not.
	RequiresFiles bool

	// SupportsSaveAs indicates the backend writes the result to the
	// job's output path. Without it the rename happens in place.
	SupportsSaveAs bool

	// RenamesReferences indicates the backend also updates references to
	// the layer elsewhere in the drawing (entities, current-layer header).
	RenamesReferences bool
}
