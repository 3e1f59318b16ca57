package domain

import "strings"

// Project is a GitLab project as returned by the projects API.
// Projects are immutable once listed and are shared read-only between
// concurrent searches.
type Project struct {
	// ID is the numeric project identifier.
	ID int64 `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// PathWithNamespace is the full path, e.g. "group/subgroup/project".
	PathWithNamespace string `json:"path_with_namespace"`

	// WebURL is the browser URL of the project.
	WebURL string `json:"web_url"`

	// HTTPURLToRepo is the HTTP clone URL.
	HTTPURLToRepo string `json:"http_url_to_repo"`

	// Path is the project slug, which is also the default clone folder.
	Path string `json:"path"`
}

// TopLevelGroup returns the first segment of the namespaced path.
func (p Project) TopLevelGroup() string {
	group, _, _ := strings.Cut(p.PathWithNamespace, "/")
	return group
}

// Scope restricts which projects are listed.
// The zero value selects every project the credential is a member of.
type Scope struct {
	// GroupID is a numeric group ID or a full group path.
	// Empty means no group restriction.
	GroupID string
}

// IsGroup reports whether the scope targets a single group.
func (s Scope) IsGroup() bool {
	return s.GroupID != ""
}

// String returns a human readable description of the scope.
func (s Scope) String() string {
	if s.IsGroup() {
		return "group " + s.GroupID
	}
	return "all accessible projects"
}
