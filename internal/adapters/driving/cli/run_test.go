package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func execute(args ...string) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return buf, err
}

func resetRunFlags() {
	runBackend = ""
	runPrefix = ""
	runInFile = ""
	runOutFile = ""
	runLayerNames = nil
	runDryRun = false
}

func TestRunCmd_Use(t *testing.T) {
	assert.Equal(t, "run", runCmd.Use)
}

func TestRunCmd_HasFlags(t *testing.T) {
	for _, name := range []string{"backend", "prefix", "in", "out", "layers", "dry-run"} {
		assert.NotNil(t, runCmd.Flags().Lookup(name), "flag %s should exist", name)
	}
}

func TestRunCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetRunFlags()

	buf, err := execute("run", "-p", "P-", "-b", "dxf", "-i", "site.dxf", "-o", "out.dxf")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Walls -> P-Walls")
	assert.Contains(t, buf.String(), "0 (reserved, skipped)")
	assert.Contains(t, buf.String(), "Renamed 2 layers, skipped 1.")
	assert.Contains(t, buf.String(), "Saved out.dxf")

	mock := renameService.(*mockRenameService)
	assert.Equal(t, "dxf", mock.lastReq.Backend)
	assert.Equal(t, "P-", mock.lastReq.Prefix)
}

func TestRunCmd_DefaultsFromSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetRunFlags()

	settingsService.(*mockSettingsService).settings.DefaultBackend = domain.BackendCOM
	settingsService.(*mockSettingsService).settings.DefaultPrefix = "X-"

	_, err := execute("run", "-i", "site.dwg", "-o", "out.dwg")
	require.NoError(t, err)

	mock := renameService.(*mockRenameService)
	assert.Equal(t, domain.BackendCOM, mock.lastReq.Backend)
	assert.Equal(t, "X-", mock.lastReq.Prefix)
}

func TestRunCmd_DryRun(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetRunFlags()

	buf, err := execute("run", "-p", "P-", "-b", "dxf", "-i", "site.dxf", "-o", "out.dxf", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Dry run; nothing was changed.")
	assert.NotContains(t, buf.String(), "Saved")
}

func TestRunCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetRunFlags()

	renameService.(*mockRenameService).runErr = domain.ErrPrefixInvalid

	_, err := execute("run", "-p", "a<b", "-b", "dxf", "-i", "site.dxf", "-o", "out.dxf")
	assert.ErrorIs(t, err, domain.ErrPrefixInvalid)
}

func TestRunCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetRunFlags()
	renameService = nil

	_, err := execute("run", "-p", "P-")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
