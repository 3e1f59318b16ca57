package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// markdownEscaper keeps multi-line snippets inside one markdown cell.
var markdownEscaper = strings.NewReplacer(
	"\r\n", "<br>",
	"\n", "<br>",
	"\r", "<br>",
	"|", `\|`,
)

// MarkdownRenderer writes rows as a GitHub flavoured markdown table.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Format returns domain.OutputMarkdown.
func (r *MarkdownRenderer) Format() domain.OutputFormat {
	return domain.OutputMarkdown
}

// Render writes the markdown table followed by a newline.
func (r *MarkdownRenderer) Render(w io.Writer, rows []domain.ResultRow) error {
	cell := lipgloss.NewRenderer(w).NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers(Headers...).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell })

	for _, row := range rows {
		values := cells(row)
		for i := range values {
			values[i] = markdownEscaper.Replace(values[i])
		}
		t.Row(values...)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
