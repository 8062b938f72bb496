// Package mcp provides an MCP (Model Context Protocol) server adapter for
// prelayn. It lets AI assistants rename drawing layers and inspect the
// available backends.
package mcp

import "errors"

// ErrMissingRenameService is returned when the rename service is not provided.
var ErrMissingRenameService = errors.New("mcp: rename service is required")

// ErrMissingBackendRegistry is returned when the backend registry is not provided.
var ErrMissingBackendRegistry = errors.New("mcp: backend registry is required")
