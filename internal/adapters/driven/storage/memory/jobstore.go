package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// Ensure JobStore implements the interface.
var _ driven.JobStore = (*JobStore)(nil)

// JobStore is an in-memory implementation of driven.JobStore for testing.
type JobStore struct {
	mu      sync.RWMutex
	records map[string]domain.JobRecord
}

// NewJobStore creates a new in-memory job store.
func NewJobStore() *JobStore {
	return &JobStore{
		records: make(map[string]domain.JobRecord),
	}
}

// Save stores a finished job record.
func (s *JobStore) Save(_ context.Context, record domain.JobRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Job.ID] = record
	return nil
}

// Get retrieves a record by job ID.
func (s *JobStore) Get(_ context.Context, id string) (*domain.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records ordered by finish time, newest first.
func (s *JobStore) List(_ context.Context, limit int) ([]domain.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.JobRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].FinishedAt.After(records[j].FinishedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Clear deletes all records.
func (s *JobStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]domain.JobRecord)
	return nil
}

// Close releases nothing.
func (s *JobStore) Close() error {
	return nil
}
