// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewRename is the rename form: backend, prefix, files, run.
	ViewRename
	// ViewHistory lists recorded rename runs.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewRename:
		return "rename"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings used to pre-fill the
// rename form.
type SettingsLoaded struct {
	Settings *driving.AppSettings
	Err      error
}

// PreviewCompleted carries the planned renames back to the form.
type PreviewCompleted struct {
	Report *domain.RenameReport
	Err    error
}

// RenameCompleted carries the outcome of a rename run.
type RenameCompleted struct {
	Report *domain.RenameReport
	Err    error
}

// HistoryLoaded carries the recorded rename runs.
type HistoryLoaded struct {
	Records []domain.JobRecord
	Err     error
}

// HistoryCleared signals the history was cleared.
type HistoryCleared struct {
	Err error
}
