package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// Columns rendered with the muted style.
const (
	colCloneURL = 6
	colFolder   = 7
)

// TableRenderer draws rows as a bordered terminal table.
type TableRenderer struct {
	theme *Theme
}

// NewTableRenderer creates a table renderer using the default theme.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{theme: DefaultTheme()}
}

// Format returns domain.OutputTable.
func (r *TableRenderer) Format() domain.OutputFormat {
	return domain.OutputTable
}

// Render writes the table followed by a newline.
func (r *TableRenderer) Render(w io.Writer, rows []domain.ResultRow) error {
	st := newStyles(w, r.theme)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case col == colCloneURL || col == colFolder:
				return st.Muted
			default:
				return st.Cell
			}
		})

	for _, row := range rows {
		t.Row(cells(row)...)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
