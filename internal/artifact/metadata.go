package artifact

import (
	"encoding/json"
	"io"
)

// PrivacyNote is recorded in every metadata artifact: raw identifiers are
// used transiently in memory and never persisted.
const PrivacyNote = "Raw data not saved; only aggregated transition counts and visualization exported."

// Metadata is the run-summary artifact written next to the aggregates.
type Metadata struct {
	RunID          string            `json:"run_id"`
	Folder         string            `json:"folder"`
	StudentIDWidth int               `json:"student_id_width"`
	RowsInMaster   int               `json:"rows_in_master"`
	UniqueStudents int               `json:"unique_students"`
	UniqueTerms    int               `json:"unique_semesters"`
	UniquePrograms int               `json:"unique_programs"`
	CountsRows     int               `json:"counts_rows"`
	AggregatesOnly bool              `json:"write_only_aggregates"`
	Outputs        map[string]string `json:"outputs"`
	PrivacyNote    string            `json:"privacy_note"`
}

// WriteJSON writes the metadata with stable indentation.
func (m *Metadata) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
