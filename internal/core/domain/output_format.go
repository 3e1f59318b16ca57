package domain

import (
	"fmt"
	"strings"
)

// OutputFormat selects how result rows are rendered.
type OutputFormat string

const (
	OutputTable    OutputFormat = "table"
	OutputMarkdown OutputFormat = "markdown"
	OutputCSV      OutputFormat = "csv"
	OutputJSON     OutputFormat = "json"
	OutputExcel    OutputFormat = "excel"
)

// AllOutputFormats returns every supported format.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputTable, OutputMarkdown, OutputCSV, OutputJSON, OutputExcel}
}

// IsBinary reports whether the format cannot be written to a terminal.
func (f OutputFormat) IsBinary() bool {
	return f == OutputExcel
}

// ParseOutputFormat converts a user supplied name into an OutputFormat.
// "md" and "xlsx" are accepted as aliases for markdown and excel.
func ParseOutputFormat(s string) (OutputFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "md":
		return OutputMarkdown, nil
	case "xlsx":
		return OutputExcel, nil
	}
	for _, f := range AllOutputFormats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
