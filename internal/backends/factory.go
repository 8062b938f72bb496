package backends

import (
	"fmt"
	"sort"
	"time"

	"github.com/prelayn/prelayn/internal/backends/acadauto"
	"github.com/prelayn/prelayn/internal/backends/acadcom"
	"github.com/prelayn/prelayn/internal/backends/dxffile"
	"github.com/prelayn/prelayn/internal/backends/sendkeys"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.BackendFactory = (*Factory)(nil)

// Factory creates backends from job configuration.
type Factory struct {
	builders map[string]driven.BackendBuilder
}

// NewFactory creates an empty factory. Most callers want DefaultFactory.
func NewFactory() *Factory {
	return &Factory{builders: make(map[string]driven.BackendBuilder)}
}

// DefaultFactory returns a factory with the four built-in backends
// registered. keyDelay paces the keystroke backend; zero means the
// backend's default.
func DefaultFactory(keyDelay time.Duration) *Factory {
	f := NewFactory()
	f.Register(domain.BackendDXF, dxffile.New)
	f.Register(domain.BackendCOM, acadcom.New)
	f.Register(domain.BackendAutoCAD, acadauto.New)
	f.Register(domain.BackendSendKeys, func(job domain.RenameJob) (driven.Backend, error) {
		return sendkeys.NewWithDelay(job, keyDelay)
	})
	return f
}

// Create returns a Backend for the given job.
func (f *Factory) Create(job domain.RenameJob) (driven.Backend, error) {
	builder, ok := f.builders[job.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, job.Backend)
	}
	return builder(job)
}

// Register adds a backend builder for the given type.
func (f *Factory) Register(backendType string, builder driven.BackendBuilder) {
	f.builders[backendType] = builder
}

// SupportedTypes returns all registered backend types, sorted.
func (f *Factory) SupportedTypes() []string {
	types := make([]string, 0, len(f.builders))
	for t := range f.builders {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
