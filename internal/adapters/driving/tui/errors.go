package tui

import "errors"

// ErrMissingRenameService is returned when the rename service is not provided.
var ErrMissingRenameService = errors.New("tui: rename service is required")

// ErrMissingBackendRegistry is returned when the backend registry is not provided.
var ErrMissingBackendRegistry = errors.New("tui: backend registry is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingHistoryService is returned when the history service is not provided.
var ErrMissingHistoryService = errors.New("tui: history service is required")
