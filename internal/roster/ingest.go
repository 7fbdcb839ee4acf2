package roster

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
)

// headerProbeRows is how many candidate header offsets are tried per sheet.
// Institutional exports routinely push the header down a few rows under
// titles and export timestamps.
const headerProbeRows = 4

// Options configures spreadsheet ingestion.
type Options struct {
	IDColumn      string
	ProgramColumn string
	IDWidth       int
	Aliases       map[string]string
	Logger        *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// LoadFile extracts records from every parsable sheet of one workbook. The
// term comes from the file name. Sheets where no probed header offset yields
// the required columns are skipped; if none succeed the whole file fails
// with a NoValidSheetsError.
func LoadFile(path string, opts Options) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	termCode := term.FromFilename(base)

	var records []Record
	validSheets := 0
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			opts.logger().Warn("sheet unreadable", "file", base, "sheet", sheet, "err", err)
			continue
		}
		recs, err := parseSheet(rows, base, sheet, termCode, opts)
		if err != nil {
			opts.logger().Warn("sheet skipped", "file", base, "sheet", sheet, "err", err)
			continue
		}
		validSheets++
		records = append(records, recs...)
	}
	if validSheets == 0 {
		return nil, &NoValidSheetsError{File: base}
	}
	return records, nil
}

// parseSheet probes header offsets 0..headerProbeRows-1 and accepts the
// first offset whose column set contains both required columns. Rows missing
// either value after normalization are dropped, not errored.
func parseSheet(rows [][]string, file, sheet, termCode string, opts Options) ([]Record, error) {
	for hdr := 0; hdr < headerProbeRows && hdr < len(rows); hdr++ {
		idIdx, progIdx := -1, -1
		for i, cell := range rows[hdr] {
			switch NormalizeHeader(cell) {
			case opts.IDColumn:
				idIdx = i
			case opts.ProgramColumn:
				progIdx = i
			}
		}
		if idIdx < 0 || progIdx < 0 {
			continue
		}

		var recs []Record
		for _, row := range rows[hdr+1:] {
			id, prog := "", ""
			if idIdx < len(row) {
				id = NormalizeStudentID(row[idIdx], opts.IDWidth)
			}
			if progIdx < len(row) {
				prog = NormalizeProgram(row[progIdx], opts.Aliases)
			}
			if id == "" || prog == "" || allZeros(id) {
				continue
			}
			recs = append(recs, Record{StudentID: id, Term: termCode, Program: prog})
		}
		return recs, nil
	}
	return nil, &SchemaNotFoundError{
		File:     file,
		Sheet:    sheet,
		Required: []string{opts.IDColumn, opts.ProgramColumn},
	}
}

// allZeros reports whether the padded identifier had no digits at all.
func allZeros(id string) bool {
	for _, c := range id {
		if c != '0' {
			return false
		}
	}
	return true
}

// LoadFolder ingests every .xlsx file in dir, in sorted file order. Files
// where every sheet fails are skipped with a warning; the run only fails
// when the folder has no spreadsheet files at all (ErrNoFiles) or no file
// yields a single usable row (ErrNoValidData).
func LoadFolder(dir string, opts Options) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, dir)
	}
	sort.Strings(paths)

	var records []Record
	for _, path := range paths {
		recs, err := LoadFile(path, opts)
		if err != nil {
			opts.logger().Warn("file skipped", "file", filepath.Base(path), "err", err)
			continue
		}
		records = append(records, recs...)
	}
	if len(records) == 0 {
		return nil, ErrNoValidData
	}
	return records, nil
}
