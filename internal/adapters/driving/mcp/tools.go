package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// SearchInput is the input schema for the search_projects tool.
type SearchInput struct {
	Query       string `json:"query" jsonschema:"the text to search for in repository files"`
	GroupID     string `json:"group_id,omitempty" jsonschema:"numeric ID or full path of a group; empty searches every accessible project"`
	MaxProjects int    `json:"max_projects,omitempty" jsonschema:"search only the first N projects (0 = no limit)"`
}

// SearchOutput is the output schema for the search_projects tool.
type SearchOutput struct {
	RunID            string               `json:"run_id"`
	Scope            string               `json:"scope"`
	ProjectsListed   int                  `json:"projects_listed"`
	ProjectsSearched int                  `json:"projects_searched"`
	Count            int                  `json:"count"`
	Matches          []domain.ResultRow   `json:"matches"`
	Skipped          []SkippedProjectInfo `json:"skipped,omitempty"`
}

// SkippedProjectInfo describes a project whose search failed.
type SkippedProjectInfo struct {
	ProjectID int64  `json:"project_id"`
	Project   string `json:"project"`
	Error     string `json:"error"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.sdk, &mcp.Tool{
		Name:        "search_projects",
		Description: "Search file contents across all accessible GitLab projects, or across one group and its subgroups",
	}, s.handleSearch)
}

// handleSearch handles the search_projects tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.MaxProjects
	if limit <= 0 {
		limit = s.ports.MaxProjects
	}

	req := domain.SearchRequest{
		Query:       input.Query,
		Scope:       domain.Scope{GroupID: input.GroupID},
		MaxProjects: limit,
	}

	report, err := s.ports.Search.Search(ctx, req)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	s.remember(report)

	return nil, toOutput(report), nil
}

func toOutput(report *domain.SearchReport) SearchOutput {
	output := SearchOutput{
		RunID:            report.RunID,
		Scope:            report.Scope.String(),
		ProjectsListed:   report.ProjectsListed,
		ProjectsSearched: report.ProjectsSearched,
		Count:            report.MatchCount(),
		Matches:          report.Rows,
	}
	if output.Matches == nil {
		output.Matches = []domain.ResultRow{}
	}

	for _, sp := range report.Skipped {
		info := SkippedProjectInfo{
			ProjectID: sp.Project.ID,
			Project:   sp.Project.PathWithNamespace,
		}
		if sp.Err != nil {
			info.Error = sp.Err.Error()
		}
		output.Skipped = append(output.Skipped, info)
	}

	return output
}
