package driving

import (
	"context"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// SearchService provides transversal search to external actors.
type SearchService interface {
	// Search lists the projects in scope and searches each of them.
	// Project-level failures are reported in the result, not as an error.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchReport, error)
}
