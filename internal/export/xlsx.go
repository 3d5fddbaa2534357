// Package export renders analysis results as an XLSX workbook. It is a
// presentation-layer convenience; the pipeline itself persists nothing.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/projectx47612-beep/Test-Reports/internal/report"
)

const sheetName = "Results"

var headers = []string{"File", "Test", "Value", "Reference Range", "Status", "Meaning"}

// BuildWorkbook creates an XLSX workbook with one row per matched record
// across all results.
func BuildWorkbook(results []*report.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, fmt.Errorf("create sheet: %w", err)
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	for _, result := range results {
		for _, rec := range result.Records {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheetName, cell, v)
			}
			write(1, result.Name)
			write(2, rec.Test)
			write(3, rec.Value)
			write(4, rec.ReferenceRange)
			write(5, string(rec.Status))
			write(6, rec.Meaning)
			row++
		}
	}

	return f, nil
}

// WriteXLSX builds the workbook and saves it to path.
func WriteXLSX(path string, results []*report.Result) error {
	f, err := BuildWorkbook(results)
	if err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
