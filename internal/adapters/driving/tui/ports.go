// Package tui provides an interactive terminal user interface for prelayn.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Rename validates and runs rename jobs.
	Rename driving.RenameService

	// Backends provides the available backend types.
	Backends driving.BackendRegistry

	// Settings manages application settings.
	Settings driving.SettingsService

	// History exposes recorded rename runs.
	History driving.HistoryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	rename driving.RenameService,
	backends driving.BackendRegistry,
	settings driving.SettingsService,
	history driving.HistoryService,
) *Ports {
	return &Ports{
		Rename:   rename,
		Backends: backends,
		Settings: settings,
		History:  history,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Rename == nil {
		return ErrMissingRenameService
	}
	if p.Backends == nil {
		return ErrMissingBackendRegistry
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
