package driving

import "github.com/prelayn/prelayn/internal/core/domain"

// AppSettings holds user defaults.
type AppSettings struct {
	// DefaultBackend is used when a request names no backend.
	DefaultBackend string
	// DefaultPrefix pre-fills the TUI prefix field.
	DefaultPrefix string
	// KeyDelayMillis paces keystroke injection.
	KeyDelayMillis int
	// WatchBackend is the backend used by the watch command.
	WatchBackend string
	// WatchOutDir is where the watch command writes renamed drawings.
	WatchOutDir string
}

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults applied.
	Get() (*AppSettings, error)

	// Save persists settings.
	Save(settings *AppSettings) error

	// SetDefaultBackend updates the default backend after checking the
	// ID is one of the known backends.
	SetDefaultBackend(id string) error

	// GetDefaults returns the built-in defaults.
	GetDefaults() AppSettings

	// ConfigPath returns the location of the config file, for display.
	ConfigPath() string
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DefaultBackend: domain.BackendDXF,
		KeyDelayMillis: 1000,
	}
}
