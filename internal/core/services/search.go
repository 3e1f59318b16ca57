package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// MaxConcurrentSearches caps the number of blob searches in flight.
const MaxConcurrentSearches = 5

// Ensure SearchOrchestrator implements the interface.
var _ driving.SearchService = (*SearchOrchestrator)(nil)

// SearchOrchestrator lists projects and searches them concurrently.
type SearchOrchestrator struct {
	lister   driven.ProjectLister
	searcher driven.BlobSearcher
	progress driven.ProgressReporter
}

// NewSearchOrchestrator creates a new search orchestrator.
// The lister and searcher are usually the same GitLab client.
func NewSearchOrchestrator(lister driven.ProjectLister, searcher driven.BlobSearcher) *SearchOrchestrator {
	return &SearchOrchestrator{
		lister:   lister,
		searcher: searcher,
		progress: nopProgress{},
	}
}

// SetProgress sets the reporter notified as projects complete.
// A nil reporter disables progress reporting.
func (o *SearchOrchestrator) SetProgress(p driven.ProgressReporter) {
	if p == nil {
		p = nopProgress{}
	}
	o.progress = p
}

// Search lists the projects in scope, truncates the list to
// req.MaxProjects, and searches every remaining project.
// Only listing failures are returned as errors.
func (o *SearchOrchestrator) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	report := &domain.SearchReport{
		RunID:     uuid.NewString(),
		Query:     req.Query,
		Scope:     req.Scope,
		StartedAt: time.Now(),
	}

	logger.Section("Search " + report.RunID)
	logger.Info("Fetching projects in %s", req.Scope)

	projects, err := o.lister.ListProjects(ctx, req.Scope)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	report.ProjectsListed = len(projects)

	if req.MaxProjects > 0 && len(projects) > req.MaxProjects {
		o.progress.Limited(req.MaxProjects, len(projects))
		projects = projects[:req.MaxProjects]
	}
	report.ProjectsSearched = len(projects)

	logger.Info("Searching %d projects for %q", len(projects), req.Query)

	report.Rows, report.Skipped = o.Run(ctx, projects, req.Query)
	report.Duration = time.Since(report.StartedAt)

	logger.Info("Found %d matches in %d projects (%d skipped) in %s",
		report.MatchCount(), report.ProjectsSearched, len(report.Skipped), report.Duration.Round(time.Millisecond))

	return report, nil
}

// Run searches every project with at most MaxConcurrentSearches in flight.
// A slot is refilled as soon as any search finishes. Rows are appended in
// completion order; within a project the host's match order is kept.
// Failed projects are logged and returned as skipped.
func (o *SearchOrchestrator) Run(
	ctx context.Context, projects []domain.Project, query string,
) ([]domain.ResultRow, []domain.SkippedProject) {
	var (
		mu      sync.Mutex
		rows    []domain.ResultRow
		skipped []domain.SkippedProject
	)

	o.progress.Start(len(projects))
	defer o.progress.Finish()

	var g errgroup.Group
	g.SetLimit(MaxConcurrentSearches)

	for _, project := range projects {
		// Go blocks while the pool is full.
		g.Go(func() error {
			matches, err := o.searcher.SearchBlobs(ctx, project.ID, query)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				logger.Errorw("Error searching project",
					"project", project.Name,
					"project_id", project.ID,
					"error", err,
				)
				skipped = append(skipped, domain.SkippedProject{Project: project, Err: err})
			} else {
				rows = append(rows, domain.ResultRows(project, matches)...)
			}
			o.progress.Advance(project, err)

			// Failures stay local to the project.
			return nil
		})
	}

	_ = g.Wait()
	return rows, skipped
}

// nopProgress discards progress events.
type nopProgress struct{}

func (nopProgress) Limited(int, int)              {}
func (nopProgress) Start(int)                     {}
func (nopProgress) Advance(domain.Project, error) {}
func (nopProgress) Finish()                       {}
