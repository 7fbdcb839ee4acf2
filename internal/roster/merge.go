package roster

import (
	"sort"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
)

type mergeKey struct {
	student string
	term    string
}

// Merge collapses raw records to exactly one program per (student, term).
// Duplicate rows for a key are resolved by majority vote over their program
// values; ties go to the first-seen program. Output is sorted by student,
// then chronologically by term, so downstream results never depend on input
// file order.
func Merge(records []Record, ranks map[string]int) []Record {
	type tally struct {
		counts map[string]int
		order  []string
	}
	votes := make(map[mergeKey]*tally)
	var keys []mergeKey
	for _, r := range records {
		k := mergeKey{student: r.StudentID, term: r.Term}
		t, ok := votes[k]
		if !ok {
			t = &tally{counts: make(map[string]int)}
			votes[k] = t
			keys = append(keys, k)
		}
		if t.counts[r.Program] == 0 {
			t.order = append(t.order, r.Program)
		}
		t.counts[r.Program]++
	}

	merged := make([]Record, 0, len(keys))
	for _, k := range keys {
		t := votes[k]
		winner, best := "", 0
		for _, prog := range t.order {
			if t.counts[prog] > best {
				winner, best = prog, t.counts[prog]
			}
		}
		merged = append(merged, Record{StudentID: k.student, Term: k.term, Program: winner})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StudentID != merged[j].StudentID {
			return merged[i].StudentID < merged[j].StudentID
		}
		return term.ParseKey(merged[i].Term, ranks).Less(term.ParseKey(merged[j].Term, ranks))
	})
	return merged
}

// Stats summarizes a merged table for run metadata.
type Stats struct {
	Rows     int
	Students int
	Terms    int
	Programs int
}

// Summarize counts rows and distinct students, terms, and programs.
func Summarize(records []Record) Stats {
	students := make(map[string]struct{})
	terms := make(map[string]struct{})
	programs := make(map[string]struct{})
	for _, r := range records {
		students[r.StudentID] = struct{}{}
		terms[r.Term] = struct{}{}
		programs[r.Program] = struct{}{}
	}
	return Stats{
		Rows:     len(records),
		Students: len(students),
		Terms:    len(terms),
		Programs: len(programs),
	}
}
