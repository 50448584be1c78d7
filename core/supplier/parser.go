package supplier

import (
	"bytes"
	"fmt"
	"strings"

	"seller-sync/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet maps the rows of the stock spreadsheet into supplier
// records.
//
// The sheet starts with a decorative preamble; real data begins at the
// configured header row. Columns are located by their header labels, cells
// are whitespace-trimmed and rows without an article code are skipped
// (the feed uses them for section headings).
func ParseSpreadsheet(data []byte, cfg Config) ([]reconcile.SupplierRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open stock spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("stock spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read stock spreadsheet rows: %w", err)
	}
	if len(rows) <= cfg.HeaderRow {
		return nil, fmt.Errorf("stock spreadsheet has no header row at index %d", cfg.HeaderRow)
	}

	codeCol, quantityCol, priceCol, err := locateColumns(rows[cfg.HeaderRow], cfg)
	if err != nil {
		return nil, err
	}

	var records []reconcile.SupplierRecord
	for _, row := range rows[cfg.HeaderRow+1:] {
		code := cell(row, codeCol)
		if code == "" {
			continue
		}

		records = append(records, reconcile.SupplierRecord{
			Code:     code,
			Quantity: cell(row, quantityCol),
			Price:    cell(row, priceCol),
		})
	}

	return records, nil
}

// locateColumns resolves the configured header labels to column indexes.
func locateColumns(header []string, cfg Config) (code, quantity, price int, err error) {
	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}

	lookup := func(label string) (int, error) {
		i, ok := index[label]
		if !ok {
			return 0, fmt.Errorf("stock spreadsheet has no %q column", label)
		}
		return i, nil
	}

	if code, err = lookup(cfg.CodeColumn); err != nil {
		return
	}
	if quantity, err = lookup(cfg.QuantityColumn); err != nil {
		return
	}
	price, err = lookup(cfg.PriceColumn)
	return
}

// cell returns the trimmed cell at index i, tolerating short rows.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
