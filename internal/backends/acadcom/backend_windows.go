//go:build windows

package acadcom

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/logger"
)

// progID is the COM programmatic identifier of the AutoCAD application.
const progID = "AutoCAD.Application"

// rpcCallRejected is the HRESULT AutoCAD returns while busy with a
// modal dialog or an in-progress command.
const rpcCallRejected = 0x80010001

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// Backend drives AutoCAD over raw IDispatch calls.
type Backend struct {
	job         domain.RenameJob
	app         *ole.IDispatch
	initialised bool
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

// Validate checks AutoCAD is reachable over COM.
func (b *Backend) Validate(_ context.Context) error {
	if err := b.connect(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// ListLayers opens the drawing and enumerates its layers.
func (b *Backend) ListLayers(_ context.Context) ([]domain.Layer, error) {
	if err := b.connect(); err != nil {
		return nil, err
	}

	doc, err := b.openDocument()
	if err != nil {
		return nil, classify(err)
	}
	defer doc.Release()

	names, err := layerNames(doc)
	if err != nil {
		return nil, classify(err)
	}

	layers := make([]domain.Layer, 0, len(names))
	for _, name := range names {
		layers = append(layers, domain.Layer{Name: name})
	}
	return layers, nil
}

// Rename opens the drawing, prefixes every non-reserved layer through
// the object model, and saves to the output path.
func (b *Backend) Rename(_ context.Context) (*domain.RenameReport, error) {
	start := time.Now()

	if err := b.connect(); err != nil {
		return nil, err
	}

	doc, err := b.openDocument()
	if err != nil {
		return nil, classify(err)
	}
	defer doc.Release()

	names, err := layerNames(doc)
	if err != nil {
		return nil, classify(err)
	}

	report := &domain.RenameReport{}
	layersVar, err := oleutil.GetProperty(doc, "Layers")
	if err != nil {
		return nil, classify(fmt.Errorf("getting layers collection: %w", err))
	}
	layers := layersVar.ToIDispatch()
	defer layers.Release()

	for _, name := range names {
		if domain.IsReservedLayer(name) {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		itemVar, err := oleutil.CallMethod(layers, "Item", name)
		if err != nil {
			return nil, classify(fmt.Errorf("getting layer %q: %w", name, err))
		}
		layer := itemVar.ToIDispatch()
		newName := b.job.Prefix.Apply(name)
		_, err = oleutil.PutProperty(layer, "Name", newName)
		layer.Release()
		if err != nil {
			return nil, classify(fmt.Errorf("renaming layer %q: %w", name, err))
		}
		logger.Debug("com: renamed %q -> %q", name, newName)
		report.Renamed = append(report.Renamed, domain.LayerRename{Old: name, New: newName})
	}

	if _, err := oleutil.CallMethod(doc, "SaveAs", b.job.OutFile); err != nil {
		return nil, classify(fmt.Errorf("saving as %s: %w", b.job.OutFile, err))
	}

	report.Duration = time.Since(start)
	return report, nil
}

// Close releases the COM connection.
func (b *Backend) Close() error {
	if b.app != nil {
		b.app.Release()
		b.app = nil
	}
	if b.initialised {
		ole.CoUninitialize()
		b.initialised = false
	}
	return nil
}

// connect launches or attaches to AutoCAD and makes it visible.
func (b *Backend) connect() error {
	if b.app != nil {
		return nil
	}

	if err := ole.CoInitialize(0); err != nil {
		var oleErr *ole.OleError
		// S_FALSE means the thread was already initialised; fine.
		if !errors.As(err, &oleErr) || oleErr.Code() != 1 {
			return fmt.Errorf("initialising COM: %w", err)
		}
	}
	b.initialised = true

	unknown, err := oleutil.CreateObject(progID)
	if err != nil {
		return fmt.Errorf("creating %s: %w", progID, err)
	}
	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	unknown.Release()
	if err != nil {
		return fmt.Errorf("querying IDispatch: %w", err)
	}

	if _, err := oleutil.PutProperty(app, "Visible", true); err != nil {
		app.Release()
		return fmt.Errorf("showing application window: %w", err)
	}

	b.app = app
	return nil
}

// openDocument opens the job's input drawing.
func (b *Backend) openDocument() (*ole.IDispatch, error) {
	docsVar, err := oleutil.GetProperty(b.app, "Documents")
	if err != nil {
		return nil, fmt.Errorf("getting documents collection: %w", err)
	}
	docs := docsVar.ToIDispatch()
	defer docs.Release()

	docVar, err := oleutil.CallMethod(docs, "Open", b.job.InFile)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", b.job.InFile, err)
	}
	return docVar.ToIDispatch(), nil
}

// layerNames snapshots the layer names before any rename.
func layerNames(doc *ole.IDispatch) ([]string, error) {
	layersVar, err := oleutil.GetProperty(doc, "Layers")
	if err != nil {
		return nil, fmt.Errorf("getting layers collection: %w", err)
	}
	layers := layersVar.ToIDispatch()
	defer layers.Release()

	countVar, err := oleutil.GetProperty(layers, "Count")
	if err != nil {
		return nil, fmt.Errorf("getting layer count: %w", err)
	}
	count := int(countVar.Val)

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		itemVar, err := oleutil.CallMethod(layers, "Item", i)
		if err != nil {
			return nil, fmt.Errorf("getting layer %d: %w", i, err)
		}
		layer := itemVar.ToIDispatch()
		nameVar, err := oleutil.GetProperty(layer, "Name")
		layer.Release()
		if err != nil {
			return nil, fmt.Errorf("getting layer %d name: %w", i, err)
		}
		names = append(names, nameVar.ToString())
	}
	return names, nil
}

// classify maps well-known COM failures onto domain sentinels so the
// surfaces can show something friendlier than an HRESULT, while keeping
// the original error text in the chain.
func classify(err error) error {
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) && uint32(oleErr.Code()) == rpcCallRejected {
		return fmt.Errorf("%w: %w", domain.ErrApplicationBusy, err)
	}
	return err
}
