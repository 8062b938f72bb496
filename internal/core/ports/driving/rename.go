package driving

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
)

// RenameRequest carries the user's input for a rename operation.
// The prefix is a raw string; the service validates it.
type RenameRequest struct {
	// Backend is the backend ID to dispatch to.
	Backend string
	// Prefix is the candidate prefix string.
	Prefix string
	// InFile is the input drawing path.
	InFile string
	// OutFile is the output drawing path.
	OutFile string
	// Layers optionally names the layers to rename, for backends that
	// cannot enumerate them.
	Layers []string
}

// RenameService validates rename requests and dispatches them to backends.
type RenameService interface {
	// Validate checks the request without running it: prefix legality,
	// backend existence, file presence and extension compatibility.
	Validate(req RenameRequest) error

	// Preview returns the renames that would be performed, without
	// touching the drawing. Backends that can enumerate layers preview
	// the drawing's actual layers; blind backends preview the explicit
	// layer list.
	Preview(ctx context.Context, req RenameRequest) (*domain.RenameReport, error)

	// Run validates the request, performs the rename through the selected
	// backend, records the outcome in history, and returns the report.
	// Backend errors surface verbatim; the user is expected to retry.
	Run(ctx context.Context, req RenameRequest) (*domain.RenameReport, error)

	// ListLayers enumerates the layer names of a drawing using the
	// requested backend. No prefix is needed; any prefix the request
	// carries is ignored.
	ListLayers(ctx context.Context, req RenameRequest) ([]domain.Layer, error)
}
