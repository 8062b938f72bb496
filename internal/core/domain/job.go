package domain

import "time"

// JobStatus is the recorded outcome of a rename job.
type JobStatus string

const (
	// JobDone indicates the job completed and the drawing was saved.
	JobDone JobStatus = "done"
	// JobFailed indicates the backend reported an error.
	// The error text is kept verbatim; the user retries manually.
	JobFailed JobStatus = "failed"
)

// RenameJob is one requested rename operation: prefix every layer name
// of a drawing using a selected backend.
type RenameJob struct {
	// ID uniquely identifies the job.
	ID string
	// Backend is the ID of the backend that performs the rename.
	Backend string
	// Prefix is the validated prefix to prepend.
	Prefix Prefix
	// InFile is the drawing to read. Empty for the active-document backend.
	InFile string
	// OutFile is where the renamed drawing is saved.
	// Empty for the active-document backend.
	OutFile string
	// Layers optionally names the layers to rename. Required by backends
	// that cannot enumerate layers; ignored by backends that can.
	Layers []string
	// CreatedAt is when the job was submitted.
	CreatedAt time.Time
}

// LayerRename records one layer's rename.
type LayerRename struct {
	// Old is the layer name before the rename.
	Old string
	// New is the layer name after the rename.
	New string
}

// RenameReport is the outcome of a completed rename.
type RenameReport struct {
	// Renamed lists every rename that was performed, in the order the
	// backend enumerated the layers.
	Renamed []LayerRename
	// Skipped lists layers left untouched (reserved names).
	Skipped []string
	// Duration is how long the backend took.
	Duration time.Duration
}

// JobRecord is a persisted job with its outcome, for run history.
type JobRecord struct {
	// Job is the submitted job.
	Job RenameJob
	// Status is the recorded outcome.
	Status JobStatus
	// Error holds the backend error text for failed jobs, verbatim.
	Error string
	// LayersRenamed is the number of layers renamed.
	LayersRenamed int
	// LayersSkipped is the number of reserved layers skipped.
	LayersSkipped int
	// FinishedAt is when the job finished.
	FinishedAt time.Time
}
