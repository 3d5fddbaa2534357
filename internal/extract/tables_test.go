package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labTableStream lays out one three-cell result row and a one-cell footer
// line below it.
const labTableStream = "BT /F1 12 Tf " +
	"1 0 0 1 72 700 Tm (Glucose) Tj " +
	"1 0 0 1 200 700 Tm (110) Tj " +
	"1 0 0 1 300 700 Tm (70 - 99) Tj " +
	"1 0 0 1 72 660 Tm (Page 1 of 1) Tj " +
	"ET"

func TestTableText_FlattensQualifiedRows(t *testing.T) {
	acquirer := NewAcquirer(nil)

	content, err := acquirer.tableText(RawDocument{Data: buildPDF(t, labTableStream), Name: "report.pdf"})
	require.NoError(t, err)

	assert.Equal(t, StrategyTable, content.Strategy)
	require.Len(t, content.Tables, 1, "rows with fewer than three cells do not qualify as lab data")
	assert.Equal(t, TableRow{"Glucose", "110", "70 - 99"}, content.Tables[0])
	assert.Equal(t, "Glucose 110 70 - 99", content.Text)
}

func TestTableText_NoQualifyingRows(t *testing.T) {
	acquirer := NewAcquirer(nil)

	data := buildPDF(t, "BT /F1 12 Tf 1 0 0 1 72 700 Tm (Page 1 of 1) Tj ET")
	_, err := acquirer.tableText(RawDocument{Data: data, Name: "report.pdf"})
	assert.Error(t, err)
}

func TestExtractTables_AllRowsUnfiltered(t *testing.T) {
	acquirer := NewAcquirer(nil)

	rows, err := acquirer.ExtractTables(RawDocument{Data: buildPDF(t, labTableStream), Name: "report.pdf"})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, TableRow{"Glucose", "110", "70 - 99"}, rows[0])
	assert.Equal(t, TableRow{"Page 1 of 1"}, rows[1])
}
