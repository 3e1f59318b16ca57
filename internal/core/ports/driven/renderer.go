package driven

import (
	"io"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// Renderer writes result rows in a specific output format.
type Renderer interface {
	// Format returns the format the renderer produces.
	Format() domain.OutputFormat

	// Render writes rows to w.
	Render(w io.Writer, rows []domain.ResultRow) error
}
