//go:build !windows

package acadcom

import (
	"context"
	"fmt"
	"runtime"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// Backend is the non-Windows placeholder. Every operation reports that
// COM automation is unavailable on this platform.
type Backend struct {
	job domain.RenameJob
}

func newBackend(job domain.RenameJob) (driven.Backend, error) {
	return &Backend{job: job}, nil
}

// Type returns the backend type identifier.
func (b *Backend) Type() string {
	return domain.BackendCOM
}

// Capabilities returns what this backend supports.
func (b *Backend) Capabilities() driven.BackendCapabilities {
	return capabilities()
}

// Validate reports the backend cannot run here.
func (b *Backend) Validate(_ context.Context) error {
	return b.unavailable()
}

// ListLayers reports the backend cannot run here.
func (b *Backend) ListLayers(_ context.Context) ([]domain.Layer, error) {
	return nil, b.unavailable()
}

// Rename reports the backend cannot run here.
func (b *Backend) Rename(_ context.Context) (*domain.RenameReport, error) {
	return nil, b.unavailable()
}

// Close releases nothing.
func (b *Backend) Close() error {
	return nil
}

func (b *Backend) unavailable() error {
	return fmt.Errorf("%w: COM automation requires Windows, running on %s",
		domain.ErrBackendUnavailable, runtime.GOOS)
}
