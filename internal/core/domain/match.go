package domain

// Match is one hit returned by the blob search of a single project.
type Match struct {
	// Filename is the path of the matching file.
	Filename string `json:"filename"`

	// Path is the file path as reported by newer GitLab versions.
	Path string `json:"path,omitempty"`

	// Ref is the branch or commit the match was found on.
	Ref string `json:"ref,omitempty"`

	// StartLine is the first line of the snippet. Nil when the API omits it.
	StartLine *int64 `json:"startline,omitempty"`

	// ProjectID is the project the match belongs to.
	ProjectID int64 `json:"project_id"`

	// Data is the matched snippet.
	Data string `json:"data"`
}

// Line returns the starting line number, or 0 when absent.
func (m Match) Line() int64 {
	if m.StartLine == nil {
		return 0
	}
	return *m.StartLine
}
