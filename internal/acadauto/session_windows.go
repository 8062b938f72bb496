//go:build windows

package acadauto

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// ProgID is the COM programmatic identifier of the AutoCAD application.
const ProgID = "AutoCAD.Application"

// Session wraps one COM connection to AutoCAD.
type Session struct {
	app *ole.IDispatch
}

// Connect attaches to a running AutoCAD instance. When none is running
// and createIfMissing is set, a new instance is launched and made
// visible, the way an interactive user would see it.
func Connect(createIfMissing bool) (*Session, error) {
	if err := ole.CoInitialize(0); err != nil {
		var oleErr *ole.OleError
		// S_FALSE means the thread was already initialised; fine.
		if !errors.As(err, &oleErr) || oleErr.Code() != 1 {
			return nil, fmt.Errorf("initialising COM: %w", err)
		}
	}

	unknown, err := oleutil.GetActiveObject(ProgID)
	if err != nil {
		if !createIfMissing {
			ole.CoUninitialize()
			return nil, fmt.Errorf("attaching to %s: %w", ProgID, err)
		}
		unknown, err = oleutil.CreateObject(ProgID)
		if err != nil {
			ole.CoUninitialize()
			return nil, fmt.Errorf("launching %s: %w", ProgID, err)
		}
	}

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		ole.CoUninitialize()
		return nil, fmt.Errorf("querying IDispatch: %w", err)
	}
	unknown.Release()

	if _, err := oleutil.PutProperty(app, "Visible", true); err != nil {
		app.Release()
		ole.CoUninitialize()
		return nil, fmt.Errorf("showing application window: %w", err)
	}

	return &Session{app: app}, nil
}

// App exposes the raw application dispatch for callers that need it.
func (s *Session) App() *ole.IDispatch {
	return s.app
}

// ActiveDocument returns the document currently open in the editor.
func (s *Session) ActiveDocument() (*Document, error) {
	v, err := oleutil.GetProperty(s.app, "ActiveDocument")
	if err != nil {
		return nil, fmt.Errorf("getting active document: %w", err)
	}
	return &Document{disp: v.ToIDispatch()}, nil
}

// OpenDocument opens a drawing file in the editor.
func (s *Session) OpenDocument(path string) (*Document, error) {
	docsVar, err := oleutil.GetProperty(s.app, "Documents")
	if err != nil {
		return nil, fmt.Errorf("getting documents collection: %w", err)
	}
	docs := docsVar.ToIDispatch()
	defer docs.Release()

	docVar, err := oleutil.CallMethod(docs, "Open", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Document{disp: docVar.ToIDispatch()}, nil
}

// Close releases the COM connection. The application keeps running.
func (s *Session) Close() {
	if s.app != nil {
		s.app.Release()
		s.app = nil
	}
	ole.CoUninitialize()
}

// Document wraps an AutoCAD document dispatch.
type Document struct {
	disp *ole.IDispatch
}

// Name returns the document's display name.
func (d *Document) Name() (string, error) {
	v, err := oleutil.GetProperty(d.disp, "Name")
	if err != nil {
		return "", fmt.Errorf("getting document name: %w", err)
	}
	return v.ToString(), nil
}

// LayerNames lists the names of all layers, in collection order.
func (d *Document) LayerNames() ([]string, error) {
	var names []string
	err := d.eachLayer(func(layer *ole.IDispatch) error {
		v, err := oleutil.GetProperty(layer, "Name")
		if err != nil {
			return fmt.Errorf("getting layer name: %w", err)
		}
		names = append(names, v.ToString())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// RenameLayers applies rename to every layer name and writes back the
// names for which it returns a different string. The order is whatever
// the collection yields.
func (d *Document) RenameLayers(rename func(name string) (string, bool)) error {
	return d.eachLayer(func(layer *ole.IDispatch) error {
		v, err := oleutil.GetProperty(layer, "Name")
		if err != nil {
			return fmt.Errorf("getting layer name: %w", err)
		}
		name := v.ToString()
		newName, ok := rename(name)
		if !ok || newName == name {
			return nil
		}
		if _, err := oleutil.PutProperty(layer, "Name", newName); err != nil {
			return fmt.Errorf("renaming layer %q: %w", name, err)
		}
		return nil
	})
}

// SaveAs writes the document to a new path.
func (d *Document) SaveAs(path string) error {
	if _, err := oleutil.CallMethod(d.disp, "SaveAs", path); err != nil {
		return fmt.Errorf("saving as %s: %w", path, err)
	}
	return nil
}

// Release frees the document dispatch.
func (d *Document) Release() {
	if d.disp != nil {
		d.disp.Release()
		d.disp = nil
	}
}

// eachLayer walks the Layers collection.
func (d *Document) eachLayer(fn func(layer *ole.IDispatch) error) error {
	layersVar, err := oleutil.GetProperty(d.disp, "Layers")
	if err != nil {
		return fmt.Errorf("getting layers collection: %w", err)
	}
	layers := layersVar.ToIDispatch()
	defer layers.Release()

	countVar, err := oleutil.GetProperty(layers, "Count")
	if err != nil {
		return fmt.Errorf("getting layer count: %w", err)
	}
	count := int(countVar.Val)

	for i := 0; i < count; i++ {
		itemVar, err := oleutil.CallMethod(layers, "Item", i)
		if err != nil {
			return fmt.Errorf("getting layer %d: %w", i, err)
		}
		layer := itemVar.ToIDispatch()
		err = fn(layer)
		layer.Release()
		if err != nil {
			return err
		}
	}
	return nil
}
