package render

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
)

// Verify interface compliance.
var (
	_ driven.Renderer = (*TableRenderer)(nil)
	_ driven.Renderer = (*MarkdownRenderer)(nil)
	_ driven.Renderer = (*CSVRenderer)(nil)
	_ driven.Renderer = (*JSONRenderer)(nil)
	_ driven.Renderer = (*ExcelRenderer)(nil)
)

// Headers are the column titles used by the table and markdown renderers.
var Headers = []string{"Group", "Project", "ID", "File", "Line", "Snippet", "Clone URL", "Folder"}

// New returns the renderer for a format.
func New(format domain.OutputFormat) (driven.Renderer, error) {
	switch format {
	case domain.OutputTable, "":
		return NewTableRenderer(), nil
	case domain.OutputMarkdown:
		return NewMarkdownRenderer(), nil
	case domain.OutputCSV:
		return NewCSVRenderer(), nil
	case domain.OutputJSON:
		return NewJSONRenderer(), nil
	case domain.OutputExcel:
		return NewExcelRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// cells converts a row into display strings in Headers order.
func cells(row domain.ResultRow) []string {
	return []string{
		row.Group,
		row.ProjectName,
		strconv.FormatInt(row.ProjectID, 10),
		row.FileName,
		strconv.FormatInt(row.LineNumber, 10),
		row.Snippet,
		row.CloneURL,
		row.Folder,
	}
}
