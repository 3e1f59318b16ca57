package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for gitlab-xsearch resources.
	uriScheme = "gitlab-xsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs/last",
		Name:        "last-run",
		Description: "Result of the most recent search_projects call",
		MIMEType:    "application/json",
	}, s.handleLastRunResource)

	s.sdk.AddResource(&mcp.Resource{
		URI:         uriScheme + "formats",
		Name:        "formats",
		Description: "Output formats supported by the command line",
		MIMEType:    "application/json",
	}, s.handleFormatsResource)
}

// handleLastRunResource returns the last search output, or null before any run.
func (s *Server) handleLastRunResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	var payload any
	if report := s.LastReport(); report != nil {
		payload = toOutput(report)
	}
	return jsonResource(req.Params.URI, payload)
}

// handleFormatsResource lists the supported output formats.
func (s *Server) handleFormatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, domain.AllOutputFormats())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
