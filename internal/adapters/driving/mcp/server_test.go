package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil rename service returns error", func(t *testing.T) {
		ports := &Ports{Backends: &mockBackendRegistry{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingRenameService)
	})

	t.Run("nil backend registry returns error", func(t *testing.T) {
		ports := &Ports{Rename: &mockRenameService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingBackendRegistry)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Rename:   &mockRenameService{},
			Backends: &mockBackendRegistry{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("history is optional", func(t *testing.T) {
		ports := &Ports{
			Rename:   &mockRenameService{},
			Backends: &mockBackendRegistry{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Rename:   &mockRenameService{},
			Backends: &mockBackendRegistry{},
			History:  &mockHistoryService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
