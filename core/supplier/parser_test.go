package supplier

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"seller-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig() Config {
	return Config{
		HeaderRow:      2,
		CodeColumn:     "Код",
		QuantityColumn: "Количество",
		PriceColumn:    "Цена",
	}
}

// buildSheet writes rows into a workbook starting at row 1 and returns the
// encoded file.
func buildSheet(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+1), &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseSpreadsheet(t *testing.T) {
	data := buildSheet(t, [][]any{
		{"Остатки на складе"},
		{},
		{"Код", "Наименование", "Количество", "Цена"},
		{"73397", "Casio ABC", ">10", "5'990.00 руб"},
		{" 12040 ", "Casio DEF", "1", " 1'234.50 р "},
		{"", "Раздел: кварцевые"},
		{"61001", "Casio GHI", "3"},
	})

	records, err := ParseSpreadsheet(data, testConfig())
	require.NoError(t, err)

	assert.Equal(t, []reconcile.SupplierRecord{
		{Code: "73397", Quantity: ">10", Price: "5'990.00 руб"},
		{Code: "12040", Quantity: "1", Price: "1'234.50 р"},
		{Code: "61001", Quantity: "3", Price: ""},
	}, records)
}

func TestParseSpreadsheet_MissingColumn(t *testing.T) {
	data := buildSheet(t, [][]any{
		{},
		{},
		{"Код", "Наименование", "Цена"},
	})

	_, err := ParseSpreadsheet(data, testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Количество")
}

func TestParseSpreadsheet_HeaderRowOutOfRange(t *testing.T) {
	data := buildSheet(t, [][]any{{"only one row"}})

	_, err := ParseSpreadsheet(data, testConfig())
	require.Error(t, err)
}

func TestExtractSpreadsheet(t *testing.T) {
	sheet := buildSheet(t, [][]any{
		{},
		{},
		{"Код", "Количество", "Цена"},
		{"73397", "5", "100.00"},
	})

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("not a spreadsheet"))
	require.NoError(t, err)

	w, err = zw.Create("ostatki.xlsx")
	require.NoError(t, err)
	_, err = w.Write(sheet)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	extracted, err := extractSpreadsheet(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sheet, extracted)

	records, err := ParseSpreadsheet(extracted, testConfig())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "73397", records[0].Code)
}

func TestExtractSpreadsheet_NoSpreadsheet(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nothing here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extractSpreadsheet(buf.Bytes())
	require.Error(t, err)
}

func TestExtractSpreadsheet_CorruptArchive(t *testing.T) {
	_, err := extractSpreadsheet([]byte("definitely not a zip"))
	require.Error(t, err)
}
