package services

import (
	"context"
	"runtime"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ensure BackendRegistry implements the interface.
var _ driving.BackendRegistry = (*BackendRegistry)(nil)

// BackendRegistry provides information about available backend types.
type BackendRegistry struct {
	backends map[string]domain.BackendType
	order    []string
	factory  driven.BackendFactory
}

// NewBackendRegistry creates a new backend registry with the built-in backends.
func NewBackendRegistry(factory driven.BackendFactory) *BackendRegistry {
	r := &BackendRegistry{
		backends: make(map[string]domain.BackendType),
		factory:  factory,
	}
	r.registerBuiltinBackends()
	return r
}

func (r *BackendRegistry) registerBuiltinBackends() {
	r.registerDXF()
	r.registerCOM()
	r.registerAutoCAD()
	r.registerSendKeys()
}

func (r *BackendRegistry) register(t domain.BackendType) {
	r.backends[t.ID] = t
	r.order = append(r.order, t.ID)
}

func (r *BackendRegistry) registerDXF() {
	r.register(domain.BackendType{
		ID:          domain.BackendDXF,
		Name:        "DXF File",
		Description: "Rewrite the drawing exchange file directly, no AutoCAD needed",
		Formats:     []domain.FileFormat{domain.FormatDXF},
		NeedsFiles:  true,
		ConfigKeys:  dxfConfigKeys(),
	})
}

func dxfConfigKeys() []domain.ConfigKey {
	return []domain.ConfigKey{
		{
			Key:         "out_dir",
			Label:       "Output Directory",
			Description: "Where renamed drawings are written when no output path is given",
		},
	}
}

func (r *BackendRegistry) registerCOM() {
	r.register(domain.BackendType{
		ID:          domain.BackendCOM,
		Name:        "AutoCAD COM",
		Description: "Open the drawing in AutoCAD over COM and rename its layers",
		Formats:     []domain.FileFormat{domain.FormatDWG},
		NeedsFiles:  true,
		WindowsOnly: true,
		ConfigKeys:  comConfigKeys(),
	})
}

func comConfigKeys() []domain.ConfigKey {
	return []domain.ConfigKey{
		{
			Key:         "start_application",
			Label:       "Start AutoCAD",
			Description: "Launch AutoCAD when it is not already running (true/false)",
			Default:     "true",
		},
	}
}

func (r *BackendRegistry) registerAutoCAD() {
	r.register(domain.BackendType{
		ID:          domain.BackendAutoCAD,
		Name:        "Active Document",
		Description: "Rename the layers of the document currently open in AutoCAD",
		NeedsFiles:  false,
		WindowsOnly: true,
	})
}

func (r *BackendRegistry) registerSendKeys() {
	r.register(domain.BackendType{
		ID:             domain.BackendSendKeys,
		Name:           "Keystrokes",
		Description:    "Type -LAYER Rename commands into AutoCAD; needs an explicit layer list",
		Formats:        []domain.FileFormat{domain.FormatDWG},
		NeedsFiles:     true,
		NeedsLayerList: true,
		WindowsOnly:    true,
		ConfigKeys:     sendKeysConfigKeys(),
	})
}

func sendKeysConfigKeys() []domain.ConfigKey {
	return []domain.ConfigKey{
		{
			Key:         "key_delay_ms",
			Label:       "Key Delay",
			Description: "Milliseconds between injected command lines",
			Default:     "1000",
		},
	}
}

// List returns all backend types in registration order.
func (r *BackendRegistry) List() []domain.BackendType {
	result := make([]domain.BackendType, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.backends[id])
	}
	return result
}

// Get returns a specific backend type by ID.
func (r *BackendRegistry) Get(id string) (*domain.BackendType, error) {
	t, ok := r.backends[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

// ValidateJob checks a job against its backend type.
func (r *BackendRegistry) ValidateJob(job domain.RenameJob) error {
	t, ok := r.backends[job.Backend]
	if !ok {
		return domain.ErrUnsupportedType
	}

	if t.NeedsFiles {
		if job.InFile == "" || job.OutFile == "" {
			return domain.ErrFileNotSpecified
		}
		if !t.AcceptsFormat(domain.FormatOf(job.InFile)) {
			return domain.ErrFormatIncompatible
		}
	}
	if t.NeedsLayerList && len(job.Layers) == 0 {
		return domain.ErrLayersRequired
	}
	return nil
}

// Available reports whether the backend can run on this machine.
// Platform checks are cheap; anything deeper (a running application, a
// readable file) is left to the backend's own Validate.
func (r *BackendRegistry) Available(_ context.Context, id string) error {
	t, ok := r.backends[id]
	if !ok {
		return domain.ErrUnsupportedType
	}
	if t.WindowsOnly && runtime.GOOS != "windows" {
		return domain.ErrBackendUnavailable
	}
	return nil
}
