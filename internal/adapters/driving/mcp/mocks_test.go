package mcp

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// mockRenameService is a mock implementation of driving.RenameService.
type mockRenameService struct {
	report  *domain.RenameReport
	layers  []domain.Layer
	err     error
	lastReq driving.RenameRequest
}

func (m *mockRenameService) Validate(req driving.RenameRequest) error {
	m.lastReq = req
	return m.err
}

func (m *mockRenameService) Preview(
	_ context.Context, req driving.RenameRequest,
) (*domain.RenameReport, error) {
	m.lastReq = req
	return m.report, m.err
}

func (m *mockRenameService) Run(
	_ context.Context, req driving.RenameRequest,
) (*domain.RenameReport, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockRenameService) ListLayers(
	_ context.Context, req driving.RenameRequest,
) ([]domain.Layer, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.layers, nil
}

// mockBackendRegistry is a mock implementation of driving.BackendRegistry.
type mockBackendRegistry struct {
	types       []domain.BackendType
	unavailable map[string]error
}

func (m *mockBackendRegistry) List() []domain.BackendType {
	return m.types
}

func (m *mockBackendRegistry) Get(id string) (*domain.BackendType, error) {
	for i := range m.types {
		if m.types[i].ID == id {
			return &m.types[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockBackendRegistry) ValidateJob(_ domain.RenameJob) error {
	return nil
}

func (m *mockBackendRegistry) Available(_ context.Context, id string) error {
	if err, ok := m.unavailable[id]; ok {
		return err
	}
	return nil
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.JobRecord
	record  *domain.JobRecord
	err     error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.JobRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.JobRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
