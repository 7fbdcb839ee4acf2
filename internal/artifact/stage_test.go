package artifact

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestStage_CommitMovesArtifacts(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "outputs")
	s, err := NewStage(outdir)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	defer s.Discard()

	if err := s.WriteFile("b.csv", writeString("b")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := s.WriteFile("a.html", writeString("a")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Nothing lands in the output dir before commit.
	if _, err := os.Stat(filepath.Join(outdir, "b.csv")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("artifact visible before Commit")
	}

	paths, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	want := []string{filepath.Join(outdir, "a.html"), filepath.Join(outdir, "b.csv")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	got, err := os.ReadFile(filepath.Join(outdir, "b.csv"))
	if err != nil || string(got) != "b" {
		t.Errorf("ReadFile = %q, %v", got, err)
	}

	// Staging directory is gone after commit.
	entries, err := os.ReadDir(outdir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".staging-") {
			t.Errorf("staging dir %s left behind", e.Name())
		}
	}
}

func TestStage_DiscardLeavesNothing(t *testing.T) {
	outdir := filepath.Join(t.TempDir(), "outputs")
	s, err := NewStage(outdir)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	if err := s.WriteFile("x.csv", writeString("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s.Discard()

	entries, err := os.ReadDir(outdir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir not empty after Discard: %v", entries)
	}
}

func TestStage_FailedWriteNotStaged(t *testing.T) {
	s, err := NewStage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	defer s.Discard()

	boom := errors.New("boom")
	if err := s.WriteFile("x.csv", func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	paths, err := s.Commit()
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("failed artifact committed: %v", paths)
	}
}

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	if err := WriteAtomic(path, writeString("data")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "data" {
		t.Errorf("ReadFile = %q, %v", got, err)
	}
}

func TestWriteAtomic_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	boom := errors.New("boom")
	if err := WriteAtomic(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dir not empty after failed write: %v", entries)
	}
}
