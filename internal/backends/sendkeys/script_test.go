package sendkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func job(prefix string, layers ...string) domain.RenameJob {
	p, _ := domain.ParsePrefix(prefix)
	return domain.RenameJob{
		ID:      "job-1",
		Backend: domain.BackendSendKeys,
		Prefix:  p,
		InFile:  `C:\plans\site.dwg`,
		OutFile: `C:\plans\site-prefixed.dwg`,
		Layers:  layers,
	}
}

// TestScript tests the keystroke sequence for a two-layer job
func TestScript(t *testing.T) {
	steps := Script(job("P-", "Walls", "Doors"))

	assert.Equal(t, []Step{
		{Text: "-LAYER"},
		{Text: "Rename"},
		{Text: "Walls"},
		{Text: "P-Walls"},
		{Keys: []string{"esc"}},
		{Text: "-LAYER"},
		{Text: "Rename"},
		{Text: "Doors"},
		{Text: "P-Doors"},
		{Keys: []string{"esc"}},
		{Text: "SAVEAS"},
		{Text: `C:\plans\site-prefixed.dwg`},
		{Keys: []string{"alt", "s"}},
		{Keys: []string{"alt", "s"}},
	}, steps)
}

// TestScript_SkipsReserved tests that reserved layers are never typed
func TestScript_SkipsReserved(t *testing.T) {
	steps := Script(job("P-", "0", "Walls", "Defpoints"))

	for _, step := range steps {
		assert.NotEqual(t, "P-0", step.Text)
		assert.NotEqual(t, "P-Defpoints", step.Text)
	}
	// One rename command plus the save tail.
	assert.Len(t, steps, 9)
}

// TestScript_NoLayers tests that an empty layer list still saves
func TestScript_NoLayers(t *testing.T) {
	steps := Script(job("P-"))

	require.Len(t, steps, 4)
	assert.Equal(t, "SAVEAS", steps[0].Text)
}

// TestPlannedRenames tests the report the backend derives from the job
func TestPlannedRenames(t *testing.T) {
	renamed, skipped := plannedRenames(job("P-", "0", "Walls", "Doors"))

	assert.Equal(t, []domain.LayerRename{
		{Old: "Walls", New: "P-Walls"},
		{Old: "Doors", New: "P-Doors"},
	}, renamed)
	assert.Equal(t, []string{"0"}, skipped)
}

// TestBackend_Capabilities tests the capability flags
func TestBackend_Capabilities(t *testing.T) {
	b, err := New(job("P-", "Walls"))
	require.NoError(t, err)

	caps := b.Capabilities()
	assert.False(t, caps.CanEnumerateLayers)
	assert.True(t, caps.RequiresRunningApplication)
	assert.True(t, caps.RequiresFiles)
	assert.True(t, caps.SupportsSaveAs)
}

// TestBackend_Type tests the type identifier
func TestBackend_Type(t *testing.T) {
	b, err := New(job("P-", "Walls"))
	require.NoError(t, err)
	assert.Equal(t, domain.BackendSendKeys, b.Type())
}
