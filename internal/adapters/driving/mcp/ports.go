package mcp

import (
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Search runs cross-project blob searches.
	Search driving.SearchService

	// MaxProjects is applied when a tool call does not set its own limit.
	// Zero means no limit.
	MaxProjects int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
