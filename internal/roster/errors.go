package roster

import (
	"errors"
	"fmt"
)

// ErrNoFiles means the input directory contained no spreadsheet files.
var ErrNoFiles = errors.New("no spreadsheet files found")

// ErrNoValidData means every file in the folder yielded zero usable rows.
var ErrNoValidData = errors.New("no valid data extracted; check file formats and columns")

// SchemaNotFoundError reports that no probed header offset in a sheet
// yielded the required columns.
type SchemaNotFoundError struct {
	File     string
	Sheet    string
	Required []string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("required columns %v not found in %s (sheet=%s)", e.Required, e.File, e.Sheet)
}

// NoValidSheetsError reports that every sheet in a workbook failed to parse.
type NoValidSheetsError struct {
	File string
}

func (e *NoValidSheetsError) Error() string {
	return fmt.Sprintf("no valid sheets found in %s", e.File)
}
