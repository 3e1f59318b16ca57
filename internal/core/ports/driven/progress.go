package driven

import "github.com/custodia-labs/gitlab-xsearch/internal/core/domain"

// ProgressReporter receives run progress.
// Calls are serialised by the caller.
type ProgressReporter interface {
	// Limited is called before Start when the project list was truncated
	// from listed to searched projects.
	Limited(searched, listed int)

	// Start is called once with the number of projects to search.
	Start(total int)

	// Advance is called when a project search completes. err is nil on success.
	Advance(project domain.Project, err error)

	// Finish is called once after the last project completed.
	Finish()
}
