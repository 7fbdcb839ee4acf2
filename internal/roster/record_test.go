package roster

import "testing"

func TestNormalizeStudentID_Basic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12345", "0012345"},
		{" 12345 ", "0012345"},
		{"1234567.0", "1234567"},
		{"A-123456", "0123456"},
		{"0012345", "0012345"},
		{"123456789", "3456789"}, // longer than width keeps the trailing digits
	}
	for _, tc := range cases {
		if got := NormalizeStudentID(tc.in, 7); got != tc.want {
			t.Errorf("NormalizeStudentID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeStudentID_Idempotent(t *testing.T) {
	inputs := []string{"12345", "1234567.0", "abc99", "", "00000010"}
	for _, in := range inputs {
		once := NormalizeStudentID(in, 7)
		twice := NormalizeStudentID(once, 7)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", in, once, twice)
		}
		if len(once) != 7 {
			t.Errorf("NormalizeStudentID(%q) length = %d, want 7", in, len(once))
		}
	}
}

func TestNormalizeProgram_Aliases(t *testing.T) {
	aliases := map[string]string{
		"A.S. CYBERSECURITY": "AS.CYBR",
		"DATA SCIENCE":       "AS.DATA",
	}
	if got := NormalizeProgram("a.s. cybersecurity", aliases); got != "AS.CYBR" {
		t.Errorf("alias collapse failed, got %q", got)
	}
	if got := NormalizeProgram("  Data Science ", aliases); got != "AS.DATA" {
		t.Errorf("alias collapse failed, got %q", got)
	}
}

func TestNormalizeProgram_UnknownPassesThrough(t *testing.T) {
	if got := NormalizeProgram("AS.NEWPROG", map[string]string{"X": "Y"}); got != "AS.NEWPROG" {
		t.Errorf("unknown code should pass through, got %q", got)
	}
}

func TestNormalizeHeader(t *testing.T) {
	if got := NormalizeHeader("  Student   Program\tStudent ID "); got != "Student Program Student ID" {
		t.Errorf("NormalizeHeader = %q", got)
	}
}
