package transition

import (
	"testing"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/roster"
	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/term"
)

func findEdge(t *testing.T, edges []Edge, source, target string) Edge {
	t.Helper()
	for _, e := range edges {
		if e.Source == source && e.Target == target {
			return e
		}
	}
	t.Fatalf("edge %q -> %q not found in %v", source, target, edges)
	return Edge{}
}

func TestBuild_TwoStudentScenario(t *testing.T) {
	// Student A: two terms ending in the latest term. Student B: one term,
	// not the latest.
	records := []roster.Record{
		{StudentID: "0000001", Term: "2023FA", Program: "AS.CYBR"},
		{StudentID: "0000001", Term: "2024SP", Program: "AS.CYBR"},
		{StudentID: "0000002", Term: "2023FA", Program: "AS.DATA"},
	}
	edges, err := Build(records, term.DefaultRanks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(edges) != 5 {
		t.Fatalf("got %d edges, want 5: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.Count != 1 {
			t.Errorf("edge %v count = %d, want 1", e, e.Count)
		}
	}
	findEdge(t, edges, Entered, "2023FA: AS.CYBR")
	findEdge(t, edges, "2023FA: AS.CYBR", "2024SP: AS.CYBR")
	findEdge(t, edges, "2024SP: AS.CYBR", "Current: AS.CYBR")
	findEdge(t, edges, Entered, "2023FA: AS.DATA")
	findEdge(t, edges, "2023FA: AS.DATA", "Exited: AS.DATA")
}

func TestBuild_EdgeCountPerStudent(t *testing.T) {
	// k term records must yield exactly k+1 edges for that student.
	records := []roster.Record{
		{StudentID: "0000001", Term: "2022FA", Program: "AS.CYBR"},
		{StudentID: "0000001", Term: "2023SP", Program: "AS.CYBR"},
		{StudentID: "0000001", Term: "2023FA", Program: "AAS.CYBF"},
	}
	edges, err := Build(records, term.DefaultRanks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	total := 0
	for _, e := range edges {
		total += e.Count
	}
	if total != 4 {
		t.Errorf("total edge contributions = %d, want k+1 = 4", total)
	}
}

func TestBuild_SingleTermStudent(t *testing.T) {
	records := []roster.Record{
		{StudentID: "0000001", Term: "2023FA", Program: "AS.DATA"},
	}
	edges, err := Build(records, term.DefaultRanks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("single-term student should yield 2 edges, got %d", len(edges))
	}
	// The only term is the latest term, so the student is Current.
	findEdge(t, edges, "2023FA: AS.DATA", "Current: AS.DATA")
}

func TestBuild_NonLatestSingleTermIsExited(t *testing.T) {
	records := []roster.Record{
		{StudentID: "0000001", Term: "2023FA", Program: "AS.DATA"},
		{StudentID: "0000002", Term: "2024SP", Program: "AS.CYBR"},
	}
	edges, err := Build(records, term.DefaultRanks())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	findEdge(t, edges, "2023FA: AS.DATA", "Exited: AS.DATA")
	for _, e := range edges {
		if e.Target == "Current: AS.DATA" {
			t.Error("student whose last term is not the latest must never be Current")
		}
	}
}

func TestBuild_OrderInvariant(t *testing.T) {
	forward := []roster.Record{
		{StudentID: "0000001", Term: "2023FA", Program: "AS.CYBR"},
		{StudentID: "0000001", Term: "2024SP", Program: "AS.DATA"},
		{StudentID: "0000002", Term: "2023FA", Program: "AS.DATA"},
	}
	reversed := []roster.Record{forward[2], forward[1], forward[0]}

	a, err := Build(forward, term.DefaultRanks())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(reversed, term.DefaultRanks())
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("edge counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("edge %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBuild_AggregatesDuplicatePairs(t *testing.T) {
	records := []roster.Record{
		{StudentID: "0000001", Term: "2023FA", Program: "AS.CYBR"},
		{StudentID: "0000002", Term: "2023FA", Program: "AS.CYBR"},
	}
	edges, err := Build(records, term.DefaultRanks())
	if err != nil {
		t.Fatal(err)
	}
	seen := map[[2]string]bool{}
	for _, e := range edges {
		key := [2]string{e.Source, e.Target}
		if seen[key] {
			t.Errorf("duplicate (source,target) pair: %v", key)
		}
		seen[key] = true
		if e.Count <= 0 {
			t.Errorf("non-positive count: %v", e)
		}
	}
	entry := findEdge(t, edges, Entered, "2023FA: AS.CYBR")
	if entry.Count != 2 {
		t.Errorf("entry edge count = %d, want 2", entry.Count)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	if _, err := Build(nil, term.DefaultRanks()); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestNodeHelpers(t *testing.T) {
	n := ProgramNode("2023FA", "AS.CYBR")
	if n != "2023FA: AS.CYBR" {
		t.Fatalf("ProgramNode = %q", n)
	}
	if tc, ok := NodeTerm(n); !ok || tc != "2023FA" {
		t.Errorf("NodeTerm = %q, %v", tc, ok)
	}
	if prog, ok := NodeProgram(n); !ok || prog != "AS.CYBR" {
		t.Errorf("NodeProgram = %q, %v", prog, ok)
	}
	if _, ok := NodeTerm(Entered); ok {
		t.Error("Entered has no term")
	}
	cur := TerminalNode(BucketCurrent, "AS.DATA")
	if b, ok := TerminalBucket(cur); !ok || b != BucketCurrent {
		t.Errorf("TerminalBucket = %q, %v", b, ok)
	}
	if _, ok := TerminalBucket(n); ok {
		t.Error("program node is not a terminal")
	}
}
