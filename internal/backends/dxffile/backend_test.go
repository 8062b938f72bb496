package dxffile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/dxf"
)

func testDrawing() string {
	lines := []string{
		"0", "SECTION",
		"2", "HEADER",
		"9", "$CLAYER",
		"8", "Walls",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "TABLES",
		"0", "TABLE",
		"2", "LAYER",
		"70", "4",
		"0", "LAYER",
		"2", "0",
		"70", "0",
		"0", "LAYER",
		"2", "Walls",
		"70", "0",
		"0", "LAYER",
		"2", "Doors",
		"70", "0",
		"0", "LAYER",
		"2", "Defpoints",
		"70", "0",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "Walls",
		"0", "CIRCLE",
		"8", "Doors",
		"0", "ENDSEC",
		"0", "EOF",
	}
	return strings.Join(lines, "\n") + "\n"
}

func writeDrawing(t *testing.T, dir string) (in, out string) {
	t.Helper()
	in = filepath.Join(dir, "in.dxf")
	out = filepath.Join(dir, "out.dxf")
	require.NoError(t, os.WriteFile(in, []byte(testDrawing()), 0o644))
	return in, out
}

func job(prefix, in, out string) domain.RenameJob {
	p, _ := domain.ParsePrefix(prefix)
	return domain.RenameJob{
		ID:      "job-1",
		Backend: domain.BackendDXF,
		Prefix:  p,
		InFile:  in,
		OutFile: out,
	}
}

// TestBackend_Type tests the type identifier
func TestBackend_Type(t *testing.T) {
	b, err := New(job("P-", "in.dxf", "out.dxf"))
	require.NoError(t, err)
	assert.Equal(t, domain.BackendDXF, b.Type())
}

// TestBackend_Capabilities tests the capability flags
func TestBackend_Capabilities(t *testing.T) {
	b, err := New(job("P-", "in.dxf", "out.dxf"))
	require.NoError(t, err)

	caps := b.Capabilities()
	assert.True(t, caps.CanEnumerateLayers)
	assert.True(t, caps.RequiresFiles)
	assert.True(t, caps.SupportsSaveAs)
	assert.True(t, caps.RenamesReferences)
	assert.False(t, caps.RequiresRunningApplication)
}

// TestBackend_Validate tests input validation
func TestBackend_Validate(t *testing.T) {
	in, out := writeDrawing(t, t.TempDir())

	b, err := New(job("P-", in, out))
	require.NoError(t, err)
	assert.NoError(t, b.Validate(context.Background()))
}

// TestBackend_Validate_Missing tests a missing input file
func TestBackend_Validate_Missing(t *testing.T) {
	b, err := New(job("P-", "/nonexistent.dxf", "/out.dxf"))
	require.NoError(t, err)
	assert.Error(t, b.Validate(context.Background()))
}

// TestBackend_ListLayers tests layer enumeration
func TestBackend_ListLayers(t *testing.T) {
	in, out := writeDrawing(t, t.TempDir())

	b, err := New(job("P-", in, out))
	require.NoError(t, err)

	layers, err := b.ListLayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Layer{
		{Name: "0"}, {Name: "Walls"}, {Name: "Doors"}, {Name: "Defpoints"},
	}, layers)
}

// TestBackend_Rename tests the full rename-and-save flow
func TestBackend_Rename(t *testing.T) {
	in, out := writeDrawing(t, t.TempDir())

	b, err := New(job("P-", in, out))
	require.NoError(t, err)

	report, err := b.Rename(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, []domain.LayerRename{
		{Old: "Walls", New: "P-Walls"},
		{Old: "Doors", New: "P-Doors"},
	}, report.Renamed)
	assert.Equal(t, []string{"0", "Defpoints"}, report.Skipped)

	saved, err := dxf.Open(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "P-Walls", "P-Doors", "Defpoints"}, saved.Layers())

	// Layer count is unchanged and the current layer follows its rename.
	assert.Len(t, saved.Layers(), 4)
	clayer, ok := saved.Header(dxf.HeaderCurrentLayer)
	assert.True(t, ok)
	assert.Equal(t, "P-Walls", clayer)

	// The input file is untouched.
	original, err := dxf.Open(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "Walls", "Doors", "Defpoints"}, original.Layers())
}

// TestBackend_Rename_ReservedCurrentLayer tests that a reserved current
// layer is restored as-is
func TestBackend_Rename_ReservedCurrentLayer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dxf")
	out := filepath.Join(dir, "out.dxf")

	content := strings.Replace(testDrawing(), "8\nWalls\n0\nENDSEC", "8\n0\n0\nENDSEC", 1)
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	b, err := New(job("P-", in, out))
	require.NoError(t, err)
	_, err = b.Rename(context.Background())
	require.NoError(t, err)

	saved, err := dxf.Open(out)
	require.NoError(t, err)
	clayer, _ := saved.Header(dxf.HeaderCurrentLayer)
	assert.Equal(t, "0", clayer)
}

// TestBackend_Rename_Twice documents double-prefixing on re-run
func TestBackend_Rename_Twice(t *testing.T) {
	dir := t.TempDir()
	in, out := writeDrawing(t, dir)

	b, err := New(job("P-", in, out))
	require.NoError(t, err)
	_, err = b.Rename(context.Background())
	require.NoError(t, err)

	second := filepath.Join(dir, "out2.dxf")
	b2, err := New(job("P-", out, second))
	require.NoError(t, err)
	_, err = b2.Rename(context.Background())
	require.NoError(t, err)

	saved, err := dxf.Open(second)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "P-P-Walls", "P-P-Doors", "Defpoints"}, saved.Layers())
}

// TestBackend_Rename_PreexistingPrefixedLayer tests that a layer already
// bearing another layer's target name is not merged with it: every layer
// must come out as exactly prefix + its own original name
func TestBackend_Rename_PreexistingPrefixedLayer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dxf")
	out := filepath.Join(dir, "out.dxf")

	lines := []string{
		"0", "SECTION",
		"2", "TABLES",
		"0", "TABLE",
		"2", "LAYER",
		"70", "3",
		"0", "LAYER",
		"2", "0",
		"70", "0",
		"0", "LAYER",
		"2", "Walls",
		"70", "0",
		"0", "LAYER",
		"2", "P-Walls",
		"70", "0",
		"0", "ENDTAB",
		"0", "ENDSEC",
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "Walls",
		"0", "CIRCLE",
		"8", "P-Walls",
		"0", "ENDSEC",
		"0", "EOF",
	}
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	b, err := New(job("P-", in, out))
	require.NoError(t, err)

	report, err := b.Rename(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.LayerRename{
		{Old: "Walls", New: "P-Walls"},
		{Old: "P-Walls", New: "P-P-Walls"},
	}, report.Renamed)

	saved, err := dxf.Open(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "P-Walls", "P-P-Walls"}, saved.Layers())
}

// TestBackend_Close tests Close is a no-op
func TestBackend_Close(t *testing.T) {
	b, err := New(job("P-", "in.dxf", "out.dxf"))
	require.NoError(t, err)
	assert.NoError(t, b.Close())
}
