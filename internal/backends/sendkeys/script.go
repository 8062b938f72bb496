// Package sendkeys implements the keystroke-injection backend.
// It opens the drawing with the shell, types -LAYER Rename commands
// into whatever window has focus, and saves with SAVEAS. It cannot read
// anything back, so the job must name the layers to rename explicitly.
//
// The keystroke sequence itself is built by Script and is pure; only
// the injection is platform code.
package sendkeys

import (
	"time"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
)

// DefaultKeyDelay is the pause between injected lines when the
// configuration does not override it. Command-line AutoCAD echoes each
// token back before accepting the next, so the pacing is generous.
const DefaultKeyDelay = time.Second

// Step is one unit of keyboard input: either a line of text followed by
// Enter, or a hotkey chord pressed together.
type Step struct {
	// Text is typed and confirmed with Enter when Keys is empty.
	Text string
	// Keys is a chord, e.g. ["esc"] or ["alt", "s"].
	Keys []string
}

// Script builds the keystroke sequence for a job: one -LAYER Rename
// command per layer, then SAVEAS to the output path. Reserved layers
// are dropped rather than typed, and the trailing alt+s pair confirms
// the save dialog and an eventual overwrite prompt.
func Script(job domain.RenameJob) []Step {
	var steps []Step
	for _, name := range job.Layers {
		if domain.IsReservedLayer(name) {
			continue
		}
		steps = append(steps,
			Step{Text: "-LAYER"},
			Step{Text: "Rename"},
			Step{Text: name},
			Step{Text: job.Prefix.Apply(name)},
			Step{Keys: []string{"esc"}},
		)
	}
	steps = append(steps,
		Step{Text: "SAVEAS"},
		Step{Text: job.OutFile},
		Step{Keys: []string{"alt", "s"}},
		Step{Keys: []string{"alt", "s"}},
	)
	return steps
}

// plannedRenames lists the renames the script will perform, mirroring
// what enumerating backends report.
func plannedRenames(job domain.RenameJob) (renamed []domain.LayerRename, skipped []string) {
	for _, name := range job.Layers {
		if domain.IsReservedLayer(name) {
			skipped = append(skipped, name)
			continue
		}
		renamed = append(renamed, domain.LayerRename{Old: name, New: job.Prefix.Apply(name)})
	}
	return renamed, skipped
}

// New creates a keystroke backend bound to a job, with default pacing.
func New(job domain.RenameJob) (driven.Backend, error) {
	return newBackend(job, DefaultKeyDelay)
}

// NewWithDelay creates a keystroke backend with an explicit pause
// between injected lines.
func NewWithDelay(job domain.RenameJob, delay time.Duration) (driven.Backend, error) {
	if delay <= 0 {
		delay = DefaultKeyDelay
	}
	return newBackend(job, delay)
}

func capabilities() driven.BackendCapabilities {
	return driven.BackendCapabilities{
		CanEnumerateLayers:         false,
		RequiresRunningApplication: true,
		RequiresFiles:              true,
		SupportsSaveAs:             true,
		RenamesReferences:          true,
	}
}
