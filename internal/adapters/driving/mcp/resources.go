package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/prelayn/prelayn/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for prelayn resources.
	uriScheme = "prelayn://"

	// historyResourceLimit caps the records exposed through the resource.
	historyResourceLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing backends.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "backends",
		Name:        "backends",
		Description: "The available rename backends",
		MIMEType:    "application/json",
	}, s.handleBackendsResource)

	// Static resource for recent rename runs.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Recorded rename runs, newest first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// Template for a single recorded run.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{jobId}",
		Name:        "history-record",
		Description: "One recorded rename run",
		MIMEType:    "application/json",
	}, s.handleHistoryRecordResource)
}

// recordInfo is the JSON shape of a recorded run.
type recordInfo struct {
	ID         string    `json:"id"`
	Backend    string    `json:"backend"`
	Prefix     string    `json:"prefix"`
	InFile     string    `json:"in_file,omitempty"`
	OutFile    string    `json:"out_file,omitempty"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Renamed    int       `json:"renamed"`
	Skipped    int       `json:"skipped"`
	FinishedAt time.Time `json:"finished_at"`
}

func toRecordInfo(rec domain.JobRecord) recordInfo {
	return recordInfo{
		ID:         rec.Job.ID,
		Backend:    rec.Job.Backend,
		Prefix:     rec.Job.Prefix.String(),
		InFile:     rec.Job.InFile,
		OutFile:    rec.Job.OutFile,
		Status:     string(rec.Status),
		Error:      rec.Error,
		Renamed:    rec.LayersRenamed,
		Skipped:    rec.LayersSkipped,
		FinishedAt: rec.FinishedAt,
	}
}

// handleBackendsResource returns the backend list as JSON.
func (s *Server) handleBackendsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	types := s.ports.Backends.List()

	infos := make([]BackendOutput, len(types))
	for i, b := range types {
		infos[i] = BackendOutput{
			ID:             b.ID,
			Name:           b.Name,
			Description:    b.Description,
			NeedsFiles:     b.NeedsFiles,
			NeedsLayerList: b.NeedsLayerList,
			WindowsOnly:    b.WindowsOnly,
			Available:      s.ports.Backends.Available(ctx, b.ID) == nil,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling backends: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns recent rename runs as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	records, err := s.ports.History.List(ctx, historyResourceLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]recordInfo, len(records))
	for i, rec := range records {
		infos[i] = toRecordInfo(rec)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryRecordResource returns one recorded run as JSON.
func (s *Server) handleHistoryRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	jobID := extractJobID(req.Params.URI)
	if jobID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.History.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	data, err := json.MarshalIndent(toRecordInfo(*rec), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractJobID extracts the job ID from a URI like prelayn://history/{jobId}.
func extractJobID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
