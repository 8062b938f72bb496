package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/prelayn/prelayn/internal/adapters/driven/watcher"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
	"github.com/prelayn/prelayn/internal/logger"
)

// watchRateLimit paces renames when a batch of drawings lands at once.
// The AutoCAD-driving backends share one application instance and do
// not tolerate overlapping bursts.
var watchRateLimit = rate.Every(time.Second)

var (
	watchBackend string
	watchPrefix  string
	watchOutDir  string
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Rename every drawing dropped into a directory",
	Long: `Watch a directory and prefix the layers of every drawing that appears
in it. Renamed drawings are written to the output directory, keeping
their file names. Stop with Ctrl-C.

Only backends that take file paths can be used; the default is the dxf
backend unless settings say otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchBackend, "backend", "b", "", "backend to use (default from settings)")
	watchCmd.Flags().StringVarP(&watchPrefix, "prefix", "p", "", "prefix to prepend to every layer name")
	watchCmd.Flags().StringVarP(&watchOutDir, "out-dir", "o", "", "where renamed drawings are written (default <dir>/renamed)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if renameService == nil {
		return errors.New("rename service not configured")
	}
	dir := args[0]

	backend := watchBackend
	outDir := watchOutDir
	prefix := watchPrefix
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			if backend == "" {
				backend = settings.WatchBackend
			}
			if outDir == "" {
				outDir = settings.WatchOutDir
			}
			if prefix == "" {
				prefix = settings.DefaultPrefix
			}
		}
	}
	if outDir == "" {
		outDir = filepath.Join(dir, "renamed")
	}

	// Fail early on a bad prefix or backend instead of on the first drawing.
	if _, err := domain.ParsePrefix(prefix); err != nil {
		return err
	}
	if backendRegistry != nil {
		if _, err := backendRegistry.Get(backend); err != nil {
			return fmt.Errorf("unknown backend %q: %w", backend, err)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	w, err := watcher.New(dir)
	if err != nil {
		return err
	}
	defer w.Close()

	cmd.Printf("Watching %s; renamed drawings go to %s. Ctrl-C to stop.\n", dir, outDir)

	limiter := rate.NewLimiter(watchRateLimit, 3)

	return w.Run(cmd.Context(), func(path string) {
		if err := limiter.Wait(cmd.Context()); err != nil {
			return
		}
		out := filepath.Join(outDir, filepath.Base(path))
		report, err := renameService.Run(cmd.Context(), driving.RenameRequest{
			Backend: backend,
			Prefix:  prefix,
			InFile:  path,
			OutFile: out,
		})
		if err != nil {
			logger.Warn("rename of %s failed: %v", path, err)
			cmd.Printf("FAILED %s: %v\n", filepath.Base(path), err)
			return
		}
		cmd.Printf("renamed %s (%d layers) -> %s\n",
			filepath.Base(path), len(report.Renamed), out)
	})
}
