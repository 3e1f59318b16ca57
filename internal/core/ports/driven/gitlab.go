package driven

import (
	"context"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// ProjectLister enumerates every project in a scope.
type ProjectLister interface {
	// ListProjects returns all projects in listing order.
	// Any failure is fatal for the run and is not retried.
	ListProjects(ctx context.Context, scope domain.Scope) ([]domain.Project, error)
}

// BlobSearcher searches file contents of a single project.
// Implementations must be safe for concurrent use.
type BlobSearcher interface {
	// SearchBlobs returns every match for query in the project, in the
	// order the host returned them. Rate limiting is handled internally.
	SearchBlobs(ctx context.Context, projectID int64, query string) ([]domain.Match, error)
}
