package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func testBackendTypes() []domain.BackendType {
	return []domain.BackendType{
		{
			ID:          domain.BackendDXF,
			Name:        "DXF file",
			Description: "Rewrites the drawing file directly.",
			NeedsFiles:  true,
		},
		{
			ID:          domain.BackendCOM,
			Name:        "COM automation",
			Description: "Drives AutoCAD over COM.",
			NeedsFiles:  true,
			WindowsOnly: true,
		},
	}
}

func TestServer_handlePrefixLayers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rename report", func(t *testing.T) {
		mockRename := &mockRenameService{
			report: &domain.RenameReport{
				Renamed: []domain.LayerRename{
					{Old: "Walls", New: "P-Walls"},
					{Old: "Doors", New: "P-Doors"},
				},
				Skipped:  []string{"0"},
				Duration: 1500 * time.Millisecond,
			},
		}

		server, err := NewServer(&Ports{Rename: mockRename, Backends: &mockBackendRegistry{}})
		require.NoError(t, err)

		input := PrefixLayersInput{
			Backend: domain.BackendDXF,
			Prefix:  "P-",
			InFile:  "site.dxf",
			OutFile: "out.dxf",
		}
		_, output, err := server.handlePrefixLayers(ctx, nil, input)

		require.NoError(t, err)
		assert.Len(t, output.Renamed, 2)
		assert.Equal(t, "Walls", output.Renamed[0].Old)
		assert.Equal(t, "P-Walls", output.Renamed[0].New)
		assert.Equal(t, []string{"0"}, output.Skipped)
		assert.Equal(t, int64(1500), output.DurationMS)
		assert.Equal(t, "site.dxf", mockRename.lastReq.InFile)
	})

	t.Run("default backend is dxf", func(t *testing.T) {
		mockRename := &mockRenameService{report: &domain.RenameReport{}}
		server, err := NewServer(&Ports{Rename: mockRename, Backends: &mockBackendRegistry{}})
		require.NoError(t, err)

		input := PrefixLayersInput{Prefix: "P-", InFile: "site.dxf", OutFile: "out.dxf"}
		_, _, err = server.handlePrefixLayers(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, domain.BackendDXF, mockRename.lastReq.Backend)
	})

	t.Run("returns error on rename failure", func(t *testing.T) {
		mockRename := &mockRenameService{err: domain.ErrPrefixInvalid}
		server, err := NewServer(&Ports{Rename: mockRename, Backends: &mockBackendRegistry{}})
		require.NoError(t, err)

		input := PrefixLayersInput{Prefix: "a|b", InFile: "site.dxf", OutFile: "out.dxf"}
		_, _, err = server.handlePrefixLayers(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrPrefixInvalid)
	})
}

func TestServer_handleListLayers(t *testing.T) {
	ctx := context.Background()

	t.Run("returns layers with reserved flags", func(t *testing.T) {
		mockRename := &mockRenameService{
			layers: []domain.Layer{
				{Name: "0"},
				{Name: "Walls"},
				{Name: "Defpoints"},
			},
		}
		server, err := NewServer(&Ports{Rename: mockRename, Backends: &mockBackendRegistry{}})
		require.NoError(t, err)

		input := ListLayersInput{File: "site.dxf"}
		_, output, err := server.handleListLayers(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 3, output.Count)
		assert.True(t, output.Layers[0].Reserved)
		assert.False(t, output.Layers[1].Reserved)
		assert.True(t, output.Layers[2].Reserved)
		assert.Equal(t, domain.BackendDXF, mockRename.lastReq.Backend)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mockRename := &mockRenameService{err: domain.ErrFileNotFound}
		server, err := NewServer(&Ports{Rename: mockRename, Backends: &mockBackendRegistry{}})
		require.NoError(t, err)

		input := ListLayersInput{File: "missing.dxf"}
		_, _, err = server.handleListLayers(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrFileNotFound)
	})
}

func TestServer_handleListBackends(t *testing.T) {
	ctx := context.Background()

	registry := &mockBackendRegistry{
		types:       testBackendTypes(),
		unavailable: map[string]error{domain.BackendCOM: domain.ErrBackendUnavailable},
	}
	server, err := NewServer(&Ports{Rename: &mockRenameService{}, Backends: registry})
	require.NoError(t, err)

	_, output, err := server.handleListBackends(ctx, nil, ListBackendsInput{})

	require.NoError(t, err)
	require.Len(t, output.Backends, 2)
	assert.Equal(t, domain.BackendDXF, output.Backends[0].ID)
	assert.True(t, output.Backends[0].Available)
	assert.Equal(t, domain.BackendCOM, output.Backends[1].ID)
	assert.False(t, output.Backends[1].Available)
	assert.True(t, output.Backends[1].WindowsOnly)
}
