// Package dxffile implements the pure file-format rename backend.
// It rewrites the drawing exchange file directly and never needs the
// CAD application, so it is the only backend that runs everywhere.
package dxffile

import (
	"context"
	"fmt"
	"time"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/dxf"
	"github.com/prelayn/prelayn/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// Backend renames layers by rewriting the DXF tag stream.
type Backend struct {
	job domain.RenameJob
}

// New creates a file-format backend bound to a job.
func New(job domain.RenameJob) (driven.Backend, error) {
	return &Backend{job: job}, nil
}

// Type returns the backend type identifier.
func (b *Backend) Type() string {
	return domain.BackendDXF
}

// Capabilities returns what this backend supports.
func (b *Backend) Capabilities() driven.BackendCapabilities {
	return driven.BackendCapabilities{
		CanEnumerateLayers: true,
		RequiresFiles:      true,
		SupportsSaveAs:     true,
		RenamesReferences:  true,
	}
}

// Validate checks the input file parses as DXF.
func (b *Backend) Validate(_ context.Context) error {
	_, err := dxf.Open(b.job.InFile)
	return err
}

// ListLayers enumerates the layer table of the input drawing.
func (b *Backend) ListLayers(_ context.Context) ([]domain.Layer, error) {
	doc, err := dxf.Open(b.job.InFile)
	if err != nil {
		return nil, err
	}

	names := doc.Layers()
	layers := make([]domain.Layer, 0, len(names))
	for _, name := range names {
		layers = append(layers, domain.Layer{Name: name})
	}
	return layers, nil
}

// Rename prefixes every non-reserved layer and saves to the output path.
//
// The current-layer header is parked on layer "0" while renaming, so the
// blanket reference rewrite cannot touch it, then restored: to the
// prefixed name if the current layer was renamed, to its original value
// otherwise.
func (b *Backend) Rename(_ context.Context) (*domain.RenameReport, error) {
	start := time.Now()

	doc, err := dxf.Open(b.job.InFile)
	if err != nil {
		return nil, err
	}

	clayer, hadClayer := doc.Header(dxf.HeaderCurrentLayer)
	if hadClayer {
		doc.SetHeader(dxf.HeaderCurrentLayer, domain.LayerZero)
	}

	// All renames are applied in one pass. Renaming layer by layer would
	// cascade when a drawing already contains a layer bearing another
	// layer's prefixed name.
	report := &domain.RenameReport{}
	renames := make(map[string]string)
	for _, name := range doc.Layers() {
		if domain.IsReservedLayer(name) {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		newName := b.job.Prefix.Apply(name)
		renames[name] = newName
		report.Renamed = append(report.Renamed, domain.LayerRename{Old: name, New: newName})
	}
	n := doc.ApplyRenames(renames)
	logger.Debug("dxf: renamed %d layers (%d tags)", len(renames), n)

	if hadClayer {
		restored := clayer
		if !domain.IsReservedLayer(clayer) {
			restored = b.job.Prefix.Apply(clayer)
		}
		doc.SetHeader(dxf.HeaderCurrentLayer, restored)
	}

	if err := doc.SaveAs(b.job.OutFile); err != nil {
		return nil, fmt.Errorf("saving drawing: %w", err)
	}

	report.Duration = time.Since(start)
	return report, nil
}

// Close releases resources. The file backend holds none between calls.
func (b *Backend) Close() error {
	return nil
}
