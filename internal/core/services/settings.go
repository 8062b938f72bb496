package services

import (
	"fmt"

	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultBackend = "defaults.backend"
	keyDefaultPrefix  = "defaults.prefix"
	keyKeyDelayMillis = "sendkeys.key_delay_ms"
	keyWatchBackend   = "watch.backend"
	keyWatchOutDir    = "watch.out_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	registry    driving.BackendRegistry
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, registry driving.BackendRegistry) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		registry:    registry,
	}
}

// Get retrieves current settings with defaults applied.
func (s *SettingsService) Get() (*driving.AppSettings, error) {
	defaults := driving.DefaultAppSettings()

	settings := &driving.AppSettings{
		DefaultBackend: s.getString(keyDefaultBackend, defaults.DefaultBackend),
		DefaultPrefix:  s.configStore.GetString(keyDefaultPrefix),
		KeyDelayMillis: s.getInt(keyKeyDelayMillis, defaults.KeyDelayMillis),
		WatchBackend:   s.getString(keyWatchBackend, defaults.DefaultBackend),
		WatchOutDir:    s.configStore.GetString(keyWatchOutDir),
	}
	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *driving.AppSettings) error {
	if err := s.configStore.Set(keyDefaultBackend, settings.DefaultBackend); err != nil {
		return fmt.Errorf("save default backend: %w", err)
	}
	if err := s.configStore.Set(keyDefaultPrefix, settings.DefaultPrefix); err != nil {
		return fmt.Errorf("save default prefix: %w", err)
	}
	if err := s.configStore.Set(keyKeyDelayMillis, settings.KeyDelayMillis); err != nil {
		return fmt.Errorf("save key delay: %w", err)
	}
	if err := s.configStore.Set(keyWatchBackend, settings.WatchBackend); err != nil {
		return fmt.Errorf("save watch backend: %w", err)
	}
	if err := s.configStore.Set(keyWatchOutDir, settings.WatchOutDir); err != nil {
		return fmt.Errorf("save watch out dir: %w", err)
	}
	return nil
}

// SetDefaultBackend updates the default backend after checking the ID.
func (s *SettingsService) SetDefaultBackend(id string) error {
	if _, err := s.registry.Get(id); err != nil {
		return fmt.Errorf("unknown backend %q: %w", id, err)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.DefaultBackend = id
	return s.Save(settings)
}

// GetDefaults returns the built-in defaults.
func (s *SettingsService) GetDefaults() driving.AppSettings {
	return driving.DefaultAppSettings()
}

// ConfigPath returns the location of the config file, for display.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helpers for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}
