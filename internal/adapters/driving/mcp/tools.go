package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// PrefixLayersInput is the input schema for the prefix_layers tool.
type PrefixLayersInput struct {
	Backend string   `json:"backend,omitempty" jsonschema:"backend ID to use (dxf, com, autocad, sendkeys); defaults to dxf"`
	Prefix  string   `json:"prefix" jsonschema:"the prefix to prepend to every layer name"`
	InFile  string   `json:"in_file,omitempty" jsonschema:"input drawing path; omit for the active-document backend"`
	OutFile string   `json:"out_file,omitempty" jsonschema:"output drawing path; omit for the active-document backend"`
	Layers  []string `json:"layers,omitempty" jsonschema:"explicit layer names, for backends that cannot enumerate them"`
}

// PrefixLayersOutput is the output schema for the prefix_layers tool.
type PrefixLayersOutput struct {
	Renamed    []RenamedLayerOutput `json:"renamed"`
	Skipped    []string             `json:"skipped,omitempty"`
	DurationMS int64                `json:"duration_ms"`
}

// RenamedLayerOutput represents a single performed rename.
type RenamedLayerOutput struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ListLayersInput is the input schema for the list_layers tool.
type ListLayersInput struct {
	Backend string `json:"backend,omitempty" jsonschema:"backend ID to use for enumeration; defaults to dxf"`
	File    string `json:"file" jsonschema:"the drawing file to inspect"`
}

// ListLayersOutput is the output schema for the list_layers tool.
type ListLayersOutput struct {
	Layers []LayerOutput `json:"layers"`
	Count  int           `json:"count"`
}

// LayerOutput represents a single layer of a drawing.
type LayerOutput struct {
	Name     string `json:"name"`
	Reserved bool   `json:"reserved"`
}

// ListBackendsInput is the (empty) input schema for the list_backends tool.
type ListBackendsInput struct{}

// ListBackendsOutput is the output schema for the list_backends tool.
type ListBackendsOutput struct {
	Backends []BackendOutput `json:"backends"`
}

// BackendOutput describes one rename backend.
type BackendOutput struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	NeedsFiles     bool   `json:"needs_files"`
	NeedsLayerList bool   `json:"needs_layer_list"`
	WindowsOnly    bool   `json:"windows_only"`
	Available      bool   `json:"available"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "prefix_layers",
		Description: "Prefix every layer name of an AutoCAD drawing",
	}, s.handlePrefixLayers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_layers",
		Description: "List the layer names of a drawing",
	}, s.handleListLayers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_backends",
		Description: "List the available rename backends",
	}, s.handleListBackends)
}

// handlePrefixLayers handles the prefix_layers tool invocation.
func (s *Server) handlePrefixLayers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PrefixLayersInput,
) (*mcp.CallToolResult, PrefixLayersOutput, error) {
	backend := input.Backend
	if backend == "" {
		backend = domain.BackendDXF
	}

	req := driving.RenameRequest{
		Backend: backend,
		Prefix:  input.Prefix,
		InFile:  input.InFile,
		OutFile: input.OutFile,
		Layers:  input.Layers,
	}

	report, err := s.ports.Rename.Run(ctx, req)
	if err != nil {
		return nil, PrefixLayersOutput{}, err
	}

	output := PrefixLayersOutput{
		Renamed:    make([]RenamedLayerOutput, len(report.Renamed)),
		Skipped:    report.Skipped,
		DurationMS: report.Duration.Milliseconds(),
	}
	for i, r := range report.Renamed {
		output.Renamed[i] = RenamedLayerOutput{Old: r.Old, New: r.New}
	}

	return nil, output, nil
}

// handleListLayers handles the list_layers tool invocation.
func (s *Server) handleListLayers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListLayersInput,
) (*mcp.CallToolResult, ListLayersOutput, error) {
	backend := input.Backend
	if backend == "" {
		backend = domain.BackendDXF
	}

	req := driving.RenameRequest{
		Backend: backend,
		InFile:  input.File,
	}

	layers, err := s.ports.Rename.ListLayers(ctx, req)
	if err != nil {
		return nil, ListLayersOutput{}, err
	}

	output := ListLayersOutput{
		Layers: make([]LayerOutput, len(layers)),
		Count:  len(layers),
	}
	for i, layer := range layers {
		output.Layers[i] = LayerOutput{
			Name:     layer.Name,
			Reserved: domain.IsReservedLayer(layer.Name),
		}
	}

	return nil, output, nil
}

// handleListBackends handles the list_backends tool invocation.
func (s *Server) handleListBackends(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListBackendsInput,
) (*mcp.CallToolResult, ListBackendsOutput, error) {
	types := s.ports.Backends.List()

	output := ListBackendsOutput{
		Backends: make([]BackendOutput, len(types)),
	}
	for i, b := range types {
		output.Backends[i] = BackendOutput{
			ID:             b.ID,
			Name:           b.Name,
			Description:    b.Description,
			NeedsFiles:     b.NeedsFiles,
			NeedsLayerList: b.NeedsLayerList,
			WindowsOnly:    b.WindowsOnly,
			Available:      s.ports.Backends.Available(ctx, b.ID) == nil,
		}
	}

	return nil, output, nil
}
