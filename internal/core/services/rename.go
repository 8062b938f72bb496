package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
	"github.com/prelayn/prelayn/internal/logger"
)

// Ensure RenameService implements the interface.
var _ driving.RenameService = (*RenameService)(nil)

// RenameService validates rename requests and dispatches them to backends.
type RenameService struct {
	registry driving.BackendRegistry
	factory  driven.BackendFactory
	jobStore driven.JobStore
}

// NewRenameService creates a new rename service.
// jobStore may be nil, in which case runs are not recorded.
func NewRenameService(
	registry driving.BackendRegistry,
	factory driven.BackendFactory,
	jobStore driven.JobStore,
) *RenameService {
	return &RenameService{
		registry: registry,
		factory:  factory,
		jobStore: jobStore,
	}
}

// Validate checks the request without running it.
func (s *RenameService) Validate(req driving.RenameRequest) error {
	_, err := s.buildJob(req)
	return err
}

// Preview returns the renames that would be performed without touching
// the drawing. It must match what Run will do: backends that enumerate
// rename every layer and ignore an explicit list, so only blind
// backends preview from the list they were given.
func (s *RenameService) Preview(ctx context.Context, req driving.RenameRequest) (*domain.RenameReport, error) {
	job, err := s.buildJob(req)
	if err != nil {
		return nil, err
	}

	names, err := s.plannedLayers(ctx, job)
	if err != nil {
		return nil, err
	}

	report := &domain.RenameReport{}
	for _, name := range names {
		if domain.IsReservedLayer(name) {
			report.Skipped = append(report.Skipped, name)
			continue
		}
		report.Renamed = append(report.Renamed, domain.LayerRename{
			Old: name,
			New: job.Prefix.Apply(name),
		})
	}
	return report, nil
}

// plannedLayers returns the layer names a run of the job would touch.
func (s *RenameService) plannedLayers(ctx context.Context, job domain.RenameJob) ([]string, error) {
	backend, err := s.factory.Create(job)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	if !backend.Capabilities().CanEnumerateLayers {
		return job.Layers, nil
	}

	layers, err := backend.ListLayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(layers))
	for _, layer := range layers {
		names = append(names, layer.Name)
	}
	return names, nil
}

// Run validates the request, performs the rename through the selected
// backend and records the outcome.
func (s *RenameService) Run(ctx context.Context, req driving.RenameRequest) (*domain.RenameReport, error) {
	job, err := s.buildJob(req)
	if err != nil {
		return nil, err
	}

	backend, err := s.factory.Create(job)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	if err := backend.Validate(ctx); err != nil {
		return nil, err
	}

	logger.Info("running %s rename with prefix %q", job.Backend, job.Prefix)
	report, runErr := backend.Rename(ctx)

	s.record(ctx, job, report, runErr)

	if runErr != nil {
		return nil, runErr
	}
	logger.Info("renamed %d layers, skipped %d", len(report.Renamed), len(report.Skipped))
	return report, nil
}

// ListLayers enumerates the layer names of a drawing using the
// requested backend. Listing never renames anything, so whatever
// prefix the request carries is not validated or used.
func (s *RenameService) ListLayers(ctx context.Context, req driving.RenameRequest) ([]domain.Layer, error) {
	job, err := s.buildListJob(req)
	if err != nil {
		return nil, err
	}
	return s.enumerate(ctx, job)
}

func (s *RenameService) enumerate(ctx context.Context, job domain.RenameJob) ([]domain.Layer, error) {
	backend, err := s.factory.Create(job)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	if !backend.Capabilities().CanEnumerateLayers {
		return nil, fmt.Errorf("%w: the %s backend cannot enumerate layers",
			domain.ErrBackendUnavailable, job.Backend)
	}
	return backend.ListLayers(ctx)
}

// buildJob validates the request and assembles a job from it.
func (s *RenameService) buildJob(req driving.RenameRequest) (domain.RenameJob, error) {
	prefix, err := domain.ParsePrefix(req.Prefix)
	if err != nil {
		return domain.RenameJob{}, err
	}

	job := domain.RenameJob{
		ID:        uuid.NewString(),
		Backend:   req.Backend,
		Prefix:    prefix,
		InFile:    req.InFile,
		OutFile:   req.OutFile,
		Layers:    req.Layers,
		CreatedAt: time.Now(),
	}

	if err := s.registry.ValidateJob(job); err != nil {
		return domain.RenameJob{}, err
	}

	if job.InFile != "" {
		if _, err := os.Stat(job.InFile); err != nil {
			return domain.RenameJob{}, fmt.Errorf("%w: %s", domain.ErrFileNotFound, job.InFile)
		}
	}
	return job, nil
}

// buildListJob assembles a job for enumeration only, where no prefix is
// required. File checks still apply.
func (s *RenameService) buildListJob(req driving.RenameRequest) (domain.RenameJob, error) {
	job := domain.RenameJob{
		ID:        uuid.NewString(),
		Backend:   req.Backend,
		InFile:    req.InFile,
		OutFile:   req.InFile, // satisfies file-requiring backends; never written
		Layers:    req.Layers,
		CreatedAt: time.Now(),
	}
	if _, err := s.registry.Get(req.Backend); err != nil {
		return domain.RenameJob{}, domain.ErrUnsupportedType
	}
	if job.InFile != "" {
		if _, err := os.Stat(job.InFile); err != nil {
			return domain.RenameJob{}, fmt.Errorf("%w: %s", domain.ErrFileNotFound, job.InFile)
		}
	}
	return job, nil
}

// record persists the outcome. History failures are logged, never fatal:
// the rename already happened.
func (s *RenameService) record(ctx context.Context, job domain.RenameJob, report *domain.RenameReport, runErr error) {
	if s.jobStore == nil {
		return
	}

	rec := domain.JobRecord{
		Job:        job,
		Status:     domain.JobDone,
		FinishedAt: time.Now(),
	}
	if runErr != nil {
		rec.Status = domain.JobFailed
		rec.Error = runErr.Error()
	}
	if report != nil {
		rec.LayersRenamed = len(report.Renamed)
		rec.LayersSkipped = len(report.Skipped)
	}

	if err := s.jobStore.Save(ctx, rec); err != nil {
		logger.Warn("could not record job %s: %v", job.ID, err)
	}
}
