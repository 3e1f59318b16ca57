package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// CSVHeader matches the JSON field names of domain.ResultRow.
var CSVHeader = []string{
	"group_path", "project_name", "project_id", "file_name",
	"line_number", "snippet", "clone_url", "project_folder",
}

// CSVRenderer writes rows as RFC 4180 CSV with a header line.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSV renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Format returns domain.OutputCSV.
func (r *CSVRenderer) Format() domain.OutputFormat {
	return domain.OutputCSV
}

// Render writes the header and one record per row.
func (r *CSVRenderer) Render(w io.Writer, rows []domain.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(cells(row)); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
