// Command prelayn prefixes the layer names of AutoCAD drawings.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prelayn/prelayn/internal/adapters/driven/config/file"
	"github.com/prelayn/prelayn/internal/adapters/driven/storage/sqlite"
	"github.com/prelayn/prelayn/internal/adapters/driving/cli"
	"github.com/prelayn/prelayn/internal/backends"
	"github.com/prelayn/prelayn/internal/backends/sendkeys"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	jobStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer jobStore.Close()

	factory := backends.DefaultFactory(0)
	registry := services.NewBackendRegistry(factory)
	settingsService := services.NewSettingsService(configStore, registry)

	// The keystroke backend's pacing is a setting, and settings need the
	// registry. Re-register the builder once settings are readable.
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if settings.KeyDelayMillis > 0 {
		delay := time.Duration(settings.KeyDelayMillis) * time.Millisecond
		factory.Register(domain.BackendSendKeys, func(job domain.RenameJob) (driven.Backend, error) {
			return sendkeys.NewWithDelay(job, delay)
		})
	}

	cli.SetServices(cli.Services{
		Rename:   services.NewRenameService(registry, factory, jobStore),
		Backends: registry,
		Settings: settingsService,
		History:  services.NewHistoryService(jobStore),
		Help:     services.NewHelpService(filepath.Dir(configStore.Path())),
	})

	return cli.Execute(version)
}
