// Package term parses and orders academic term codes such as "2024SP".
//
// A code is a 4-digit year followed by a season abbreviation. Codes that do
// not parse still get a total order: they sort after every valid code, with
// the raw string as the final tiebreak.
package term

import (
	"regexp"
	"sort"
	"strings"
)

// Unknown is the sentinel term assigned when no code can be extracted.
const Unknown = "Unknown"

// DefaultRanks orders the season abbreviations within one academic year.
// SU and SSI share a rank: both are the first summer session.
func DefaultRanks() map[string]int {
	return map[string]int{
		"SP":   0,
		"SSI":  1,
		"SU":   1,
		"SSII": 2,
		"FA":   3,
	}
}

const (
	unknownSeasonRank = 50
	unparsableYear    = 9999
	unparsableRank    = 99
)

var (
	codeRe     = regexp.MustCompile(`^(\d{4})([A-Z]+)`)
	filenameRe = regexp.MustCompile(`(20\d{2})(FA|SP|SSII|SSI|SU)\b`)
)

// Key is a sortable ordering key for a term code.
type Key struct {
	Year int
	Rank int
	Raw  string
}

// ParseKey derives the ordering key for code using the given season ranks.
// Unrecognized seasons rank after known ones within their year; codes with
// no leading year sort after everything.
func ParseKey(code string, ranks map[string]int) Key {
	m := codeRe.FindStringSubmatch(strings.ToUpper(code))
	if m == nil {
		return Key{Year: unparsableYear, Rank: unparsableRank, Raw: code}
	}
	year := 0
	for _, c := range m[1] {
		year = year*10 + int(c-'0')
	}
	season := m[2]
	rank, ok := ranks[season]
	if !ok {
		rank = unknownSeasonRank
	}
	return Key{Year: year, Rank: rank, Raw: season}
}

// Less reports whether a orders strictly before b.
func (a Key) Less(b Key) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Raw < b.Raw
}

// SortCodes sorts codes in place, earliest term first.
func SortCodes(codes []string, ranks map[string]int) {
	sort.SliceStable(codes, func(i, j int) bool {
		return ParseKey(codes[i], ranks).Less(ParseKey(codes[j], ranks))
	})
}

// Latest returns the chronologically last code, or "" for an empty slice.
func Latest(codes []string, ranks map[string]int) string {
	latest := ""
	var latestKey Key
	for _, c := range codes {
		k := ParseKey(c, ranks)
		if latest == "" || latestKey.Less(k) {
			latest = c
			latestKey = k
		}
	}
	return latest
}

// FromFilename extracts a term code like "2023FA" from an export file name.
// Institutional exports embed the term in the name rather than the data, so
// absence is not an error: the sentinel Unknown is returned and sorts last.
func FromFilename(name string) string {
	m := filenameRe.FindStringSubmatch(strings.ToUpper(name))
	if m == nil {
		return Unknown
	}
	return m[1] + m[2]
}
