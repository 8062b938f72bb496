package services

import (
	"context"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded rename runs.
type HistoryService struct {
	jobStore driven.JobStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(jobStore driven.JobStore) *HistoryService {
	return &HistoryService{jobStore: jobStore}
}

// List returns records, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.JobRecord, error) {
	return s.jobStore.List(ctx, limit)
}

// Get returns one record by job ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.JobRecord, error) {
	return s.jobStore.Get(ctx, id)
}

// Clear deletes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	return s.jobStore.Clear(ctx)
}
