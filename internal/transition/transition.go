// Package transition turns a merged roster into aggregated directed edges
// for the program-pathways diagram: an entry edge into each student's first
// term, one edge per consecutive term pair, and a terminal edge into a
// Current or Exited bucket.
package transition

import (
	"errors"
	"sort"
	"strings"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/roster"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
)

// Entered is the fixed entry node every student flows out of.
const Entered = "Entered"

const (
	// BucketCurrent marks students whose last observed term is the
	// dataset's latest term; BucketExited marks everyone else.
	BucketCurrent = "Current"
	BucketExited  = "Exited"

	labelSep = ": "
)

// Edge is an aggregated directed flow between two node labels.
type Edge struct {
	Source string
	Target string
	Count  int
}

// ProgramNode is the label of a term:program node.
func ProgramNode(termCode, program string) string {
	return termCode + labelSep + program
}

// TerminalNode is the label of a Current/Exited bucket for a program.
func TerminalNode(bucket, program string) string {
	return bucket + labelSep + program
}

// NodeTerm extracts the term code from a term:program label.
func NodeTerm(label string) (string, bool) {
	tc, _, ok := splitLabel(label)
	if !ok || tc == Entered || tc == BucketCurrent || tc == BucketExited {
		return "", false
	}
	return tc, true
}

// NodeProgram extracts the program code from any label carrying one.
func NodeProgram(label string) (string, bool) {
	_, prog, ok := splitLabel(label)
	return prog, ok
}

// TerminalBucket extracts the bucket from a Current/Exited label.
func TerminalBucket(label string) (string, bool) {
	head, _, ok := splitLabel(label)
	if !ok || (head != BucketCurrent && head != BucketExited) {
		return "", false
	}
	return head, true
}

func splitLabel(label string) (head, tail string, ok bool) {
	head, tail, ok = strings.Cut(label, labelSep)
	if !ok {
		return "", "", false
	}
	return head, strings.TrimSpace(tail), true
}

// ErrNoRecords means the merged table was empty.
var ErrNoRecords = errors.New("no records to aggregate")

// Build emits and aggregates transition edges from a merged roster. Records
// are grouped per student and ordered by the term key before any edge is
// emitted, so input row order never changes the result. A student with k
// term records contributes exactly k+1 edges. The aggregate is sorted by
// (source, target) and contains no duplicate pairs.
func Build(records []roster.Record, ranks map[string]int) ([]Edge, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	latest := ""
	var latestKey term.Key
	byStudent := make(map[string][]roster.Record)
	for _, r := range records {
		byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
		if k := term.ParseKey(r.Term, ranks); latest == "" || latestKey.Less(k) {
			latest, latestKey = r.Term, k
		}
	}

	counts := make(map[Edge]int)
	for _, recs := range byStudent {
		sort.SliceStable(recs, func(i, j int) bool {
			return term.ParseKey(recs[i].Term, ranks).Less(term.ParseKey(recs[j].Term, ranks))
		})

		counts[Edge{Source: Entered, Target: ProgramNode(recs[0].Term, recs[0].Program)}]++
		for i := 0; i < len(recs)-1; i++ {
			counts[Edge{
				Source: ProgramNode(recs[i].Term, recs[i].Program),
				Target: ProgramNode(recs[i+1].Term, recs[i+1].Program),
			}]++
		}

		last := recs[len(recs)-1]
		bucket := BucketExited
		if last.Term == latest {
			bucket = BucketCurrent
		}
		counts[Edge{
			Source: ProgramNode(last.Term, last.Program),
			Target: TerminalNode(bucket, last.Program),
		}]++
	}

	edges := make([]Edge, 0, len(counts))
	for e, n := range counts {
		e.Count = n
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges, nil
}
