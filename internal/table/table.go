// Package table loads tabular LMS exports and prepares them for correlation
// analysis: numeric coercion, sparse-column filtering, and a predictors-only
// view with circular grading proxies excluded.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// UnsupportedFormatError reports a file extension outside the supported set.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (use .csv or .xlsx)", e.Ext, e.Path)
}

// MissingColumnError reports a required column absent after load.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in data columns", e.Column)
}

// Table is a raw string table as loaded from disk.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load reads a CSV or XLSX file (first sheet, first row as header). Other
// extensions fail with an UnsupportedFormatError.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file not found: %s (raw data is intentionally not included in the repository; provide a local export)", path)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadXLSX(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(all) == 0 {
		return &Table{}, nil
	}
	return &Table{Columns: trimAll(all[0]), Rows: all[1:]}, nil
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Columns: trimAll(rows[0]), Rows: rows[1:]}, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

// cell returns row[i] or "" when the row is shorter than the header.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
