package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// ExcelSheet is the worksheet holding the results.
const ExcelSheet = "Results"

// ExcelRenderer writes rows as an .xlsx workbook.
// Project IDs and line numbers are stored as numbers.
type ExcelRenderer struct{}

// NewExcelRenderer creates an Excel renderer.
func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

// Format returns domain.OutputExcel.
func (r *ExcelRenderer) Format() domain.OutputFormat {
	return domain.OutputExcel
}

// Render writes a workbook with a header row and one row per result.
func (r *ExcelRenderer) Render(w io.Writer, rows []domain.ResultRow) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", ExcelSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(ExcelSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			row.Group,
			row.ProjectName,
			row.ProjectID,
			row.FileName,
			row.LineNumber,
			row.Snippet,
			row.CloneURL,
			row.Folder,
		}
		if err := f.SetSheetRow(ExcelSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
