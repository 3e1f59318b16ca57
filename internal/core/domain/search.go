package domain

import (
	"strings"
	"time"
)

// SearchRequest describes one transversal search run.
type SearchRequest struct {
	// Query is the text passed to the blob search.
	Query string

	// Scope selects which projects are searched.
	Scope Scope

	// MaxProjects truncates the project list before searching.
	// Zero means no limit.
	MaxProjects int
}

// Validate checks that the request can be executed.
func (r SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrEmptyQuery
	}
	if r.MaxProjects < 0 {
		return ErrInvalidInput
	}
	return nil
}

// SkippedProject records a project whose search failed.
type SkippedProject struct {
	Project Project
	Err     error
}

// SearchReport is the outcome of a run.
type SearchReport struct {
	// RunID identifies the run in logs.
	RunID string

	// Query is the searched text.
	Query string

	// Scope is the scope that was listed.
	Scope Scope

	// ProjectsListed is the number of projects returned by the listing.
	ProjectsListed int

	// ProjectsSearched is the number of projects a search was dispatched for.
	ProjectsSearched int

	// Rows holds every match in completion order of their projects.
	Rows []ResultRow

	// Skipped lists projects that contributed no rows because their search failed.
	Skipped []SkippedProject

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// MatchCount returns the number of rows found.
func (r *SearchReport) MatchCount() int {
	return len(r.Rows)
}
