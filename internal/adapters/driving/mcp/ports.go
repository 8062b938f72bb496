package mcp

import (
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Rename validates and runs rename jobs.
	Rename driving.RenameService

	// Backends provides the available backend types.
	Backends driving.BackendRegistry

	// History exposes recorded rename runs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Rename == nil {
		return ErrMissingRenameService
	}
	if p.Backends == nil {
		return ErrMissingBackendRegistry
	}
	// History is optional; the history resource degrades to empty.
	return nil
}
