// Package acadauto implements the convenience-wrapper backend.
// It attaches to the document currently active in AutoCAD through the
// acadauto session wrapper and renames its layers in place. No file
// paths are involved; the user saves when they are happy.
package acadauto

import (
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// New creates an active-document backend bound to a job.
func New(job domain.RenameJob) (driven.Backend, error) {
	return newBackend(job)
}

func capabilities() driven.BackendCapabilities {
	return driven.BackendCapabilities{
		CanEnumerateLayers:         true,
		RequiresRunningApplication: true,
		// The active document is whatever is open; no paths, no save.
		RequiresFiles:     false,
		SupportsSaveAs:    false,
		RenamesReferences: true,
	}
}
