package util

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for uploads that are neither CSV nor
// Excel.
var ErrUnsupportedFormat = errors.New("invalid file format, please upload CSV or Excel")

// Table holds a parsed tabular upload. Column names are normalized to
// lowercase; each row maps column name to cell value.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumns reports whether every wanted column is present.
func (t *Table) HasColumns(wanted ...string) bool {
	have := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = true
	}
	for _, w := range wanted {
		if !have[w] {
			return false
		}
	}
	return true
}

// ParseTabular reads a CSV or XLSX/XLS upload into a Table. The first
// row is treated as the header.
func ParseTabular(filename string, r io.Reader) (*Table, error) {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		return parseCSV(r)
	case strings.HasSuffix(name, ".xlsx"), strings.HasSuffix(name, ".xls"):
		return parseXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var table Table
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if first {
			table.Columns = normalizeHeader(record)
			first = false
			continue
		}
		table.Rows = append(table.Rows, rowToMap(table.Columns, record))
	}
	return &table, nil
}

func parseXLSX(r io.Reader) (*Table, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel file: %w", err)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("Excel file has no sheets")
	}

	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}

	var table Table
	for i, record := range rows {
		if i == 0 {
			table.Columns = normalizeHeader(record)
			continue
		}
		table.Rows = append(table.Rows, rowToMap(table.Columns, record))
	}
	return &table, nil
}

func normalizeHeader(record []string) []string {
	cols := make([]string, len(record))
	for i, c := range record {
		cols[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return cols
}

func rowToMap(columns, record []string) map[string]string {
	row := make(map[string]string, len(columns))
	for i, col := range columns {
		if i < len(record) {
			row[col] = strings.TrimSpace(record[i])
		} else {
			row[col] = ""
		}
	}
	return row
}
