// Package roster ingests per-term program-enrollment spreadsheets into
// normalized (student, term, program) records and collapses them to one
// program per student per term.
package roster

import (
	"regexp"
	"strings"
)

// Record is one student's program enrollment in one term.
type Record struct {
	StudentID string
	Term      string
	Program   string
}

var (
	wsRe       = regexp.MustCompile(`\s+`)
	nonDigitRe = regexp.MustCompile(`[^\d]`)
)

// NormalizeHeader collapses runs of whitespace and trims, so headers match
// regardless of export padding quirks.
func NormalizeHeader(s string) string {
	return strings.TrimSpace(wsRe.ReplaceAllString(s, " "))
}

// NormalizeStudentID canonicalizes a raw spreadsheet identifier: trims,
// strips the ".0" float artifact from numeric coercion, keeps digits only,
// left-pads with zeros to width, and keeps only the last width digits when
// the raw value is longer. Idempotent: normalizing an already normalized
// identifier is a no-op.
func NormalizeStudentID(s string, width int) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	s = nonDigitRe.ReplaceAllString(s, "")
	for len(s) < width {
		s = "0" + s
	}
	if len(s) > width {
		s = s[len(s)-width:]
	}
	return s
}

// NormalizeProgram uppercases, trims, and collapses known variants to their
// canonical program code. Codes without an alias pass through unchanged so
// new programs keep working without a config update.
func NormalizeProgram(s string, aliases map[string]string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if canon, ok := aliases[s]; ok {
		return canon
	}
	return s
}
