package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minTableCells is the minimum number of non-empty cells for a row to count
// as tabular lab data (test name, value, reference range).
const minTableCells = 3

// ExtractTables returns all structured rows across all pages of a PDF,
// preserving column structure for consumers that need it. It is independent
// of the text fallback chain and applies no cell-count filtering.
func (a *Acquirer) ExtractTables(doc RawDocument) ([]TableRow, error) {
	if doc.Kind() != KindPDF {
		return nil, fmt.Errorf("%w: table extraction requires a PDF, got %s", ErrUnsupportedFormat, doc.Name)
	}
	return a.extractRows(doc)
}

// tableText is the table-extraction stage of the fallback chain: rows with
// at least minTableCells non-empty cells are flattened into text, cells
// joined with spaces and rows with newlines.
func (a *Acquirer) tableText(doc RawDocument) (ExtractedContent, error) {
	rows, err := a.extractRows(doc)
	if err != nil {
		return ExtractedContent{}, err
	}

	var qualified []TableRow
	for _, row := range rows {
		if len(row) >= minTableCells {
			qualified = append(qualified, row)
		}
	}
	if len(qualified) == 0 {
		return ExtractedContent{}, errors.New("no qualifying table rows")
	}

	lines := make([]string, 0, len(qualified))
	for _, row := range qualified {
		lines = append(lines, strings.Join(row, " "))
	}

	return ExtractedContent{
		Text:     strings.Join(lines, "\n"),
		Tables:   qualified,
		Strategy: StrategyTable,
	}, nil
}

// extractRows reads text runs grouped by horizontal row position on each
// page. Each run becomes one cell; empty cells are dropped.
func (a *Acquirer) extractRows(doc RawDocument) (rows []TableRow, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows = nil
			err = fmt.Errorf("table extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageRows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		for _, pageRow := range pageRows {
			var cells TableRow
			for _, text := range pageRow.Content {
				if cell := strings.TrimSpace(text.S); cell != "" {
					cells = append(cells, cell)
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
		}
	}

	if len(rows) == 0 {
		return nil, errors.New("no table rows found")
	}

	return rows, nil
}
