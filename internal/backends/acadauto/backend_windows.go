//go:build windows

package acadauto

import (
	"context"
	"fmt"
	"time"

	wrapper "github.com/prelayn/prelayn/internal/acadauto"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// Backend renames the layers of the active AutoCAD document.
type Backend struct {
	job     domain.RenameJob
	session *wrapper.Session
}

func newBackend(job domain.RenameJob) (driven.Backend, error) {
	return &Backend{job: job}, nil
}

// Type returns the backend type identifier.
func (b *Backend) Type() string {
	return domain.BackendAutoCAD
}

// Capabilities returns what this backend supports.
func (b *Backend) Capabilities() driven.BackendCapabilities {
	return capabilities()
}

// Validate checks a session can be established and a document is active.
func (b *Backend) Validate(_ context.Context) error {
	if err := b.connect(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	doc, err := b.session.ActiveDocument()
	if err != nil {
		return fmt.Errorf("no active document: %w", err)
	}
	doc.Release()
	return nil
}

// ListLayers enumerates the active document's layers.
func (b *Backend) ListLayers(_ context.Context) ([]domain.Layer, error) {
	if err := b.connect(); err != nil {
		return nil, err
	}
	doc, err := b.session.ActiveDocument()
	if err != nil {
		return nil, err
	}
	defer doc.Release()

	names, err := doc.LayerNames()
	if err != nil {
		return nil, err
	}
	layers := make([]domain.Layer, 0, len(names))
	for _, name := range names {
		layers = append(layers, domain.Layer{Name: name})
	}
	return layers, nil
}

// Rename prefixes every non-reserved layer of the active document.
// The document stays open and unsaved.
func (b *Backend) Rename(_ context.Context) (*domain.RenameReport, error) {
	start := time.Now()

	if err := b.connect(); err != nil {
		return nil, err
	}
	doc, err := b.session.ActiveDocument()
	if err != nil {
		return nil, err
	}
	defer doc.Release()

	if name, err := doc.Name(); err == nil {
		logger.Info("autocad: renaming layers of %s", name)
	}

	report := &domain.RenameReport{}
	err = doc.RenameLayers(func(name string) (string, bool) {
		if domain.IsReservedLayer(name) {
			report.Skipped = append(report.Skipped, name)
			return "", false
		}
		newName := b.job.Prefix.Apply(name)
		report.Renamed = append(report.Renamed, domain.LayerRename{Old: name, New: newName})
		return newName, true
	})
	if err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	return report, nil
}

// Close releases the COM session.
func (b *Backend) Close() error {
	if b.session != nil {
		b.session.Close()
		b.session = nil
	}
	return nil
}

func (b *Backend) connect() error {
	if b.session != nil {
		return nil
	}
	session, err := wrapper.Connect(true)
	if err != nil {
		return err
	}
	b.session = session
	return nil
}
