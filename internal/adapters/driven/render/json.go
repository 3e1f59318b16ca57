package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// JSONRenderer writes rows as an indented JSON array.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Format returns domain.OutputJSON.
func (r *JSONRenderer) Format() domain.OutputFormat {
	return domain.OutputJSON
}

// Render encodes rows. An empty result is written as [].
func (r *JSONRenderer) Render(w io.Writer, rows []domain.ResultRow) error {
	if rows == nil {
		rows = []domain.ResultRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
