// Package acadcom implements the raw COM automation backend.
// It opens the input drawing in AutoCAD, renames the layers through the
// object model, and saves the result to the output path.
//
// COM failures (busy callee, locked files, missing documents) surface
// verbatim to the caller; the user checks AutoCAD and retries manually.
package acadcom

import (
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// New creates a COM backend bound to a job.
func New(job domain.RenameJob) (driven.Backend, error) {
	return newBackend(job)
}

func capabilities() driven.BackendCapabilities {
	return driven.BackendCapabilities{
		CanEnumerateLayers:         true,
		RequiresRunningApplication: true,
		RequiresFiles:              true,
		SupportsSaveAs:             true,
		RenamesReferences:          true,
	}
}
