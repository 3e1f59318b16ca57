package domain

// ResultRow is the flattened form of one match, ready for rendering.
type ResultRow struct {
	Group       string `json:"group_path"`
	ProjectName string `json:"project_name"`
	ProjectID   int64  `json:"project_id"`
	FileName    string `json:"file_name"`
	LineNumber  int64  `json:"line_number"`
	Snippet     string `json:"snippet"`
	CloneURL    string `json:"clone_url"`
	Folder      string `json:"project_folder"`
}

// NewResultRow derives a row from a project and one of its matches.
// It is pure: the same inputs always yield an identical row.
func NewResultRow(project Project, match Match) ResultRow {
	return ResultRow{
		Group:       project.TopLevelGroup(),
		ProjectName: project.Name,
		ProjectID:   project.ID,
		FileName:    match.Filename,
		LineNumber:  match.Line(),
		Snippet:     match.Data,
		CloneURL:    project.HTTPURLToRepo,
		Folder:      project.Path,
	}
}

// ResultRows maps every match of a project, preserving match order.
func ResultRows(project Project, matches []Match) []ResultRow {
	if len(matches) == 0 {
		return nil
	}
	rows := make([]ResultRow, 0, len(matches))
	for i := range matches {
		rows = append(rows, NewResultRow(project, matches[i]))
	}
	return rows
}
