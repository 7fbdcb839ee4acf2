// Package artifact stages run outputs so a failed pipeline never leaves
// half-written files: everything is produced in a hidden staging directory
// next to the output directory and renamed into place only on commit.
package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Stage collects the artifacts of one run.
type Stage struct {
	outdir string
	dir    string
	names  []string
}

// NewStage creates the output directory (if needed) and a staging directory
// beside the final artifacts, so the commit renames stay on one filesystem.
func NewStage(outdir string) (*Stage, error) {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", outdir, err)
	}
	dir, err := os.MkdirTemp(outdir, ".staging-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Stage{outdir: outdir, dir: dir}, nil
}

// WriteFile produces one named artifact by streaming through write.
func (s *Stage) WriteFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("stage %s: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	s.names = append(s.names, name)
	return nil
}

// FinalPath is where a staged artifact will land after Commit.
func (s *Stage) FinalPath(name string) string {
	return filepath.Join(s.outdir, name)
}

// Commit moves every staged artifact into the output directory and returns
// the final paths in name order.
func (s *Stage) Commit() ([]string, error) {
	sort.Strings(s.names)
	paths := make([]string, 0, len(s.names))
	for _, name := range s.names {
		dst := filepath.Join(s.outdir, name)
		if err := os.Rename(filepath.Join(s.dir, name), dst); err != nil {
			return nil, fmt.Errorf("commit %s: %w", name, err)
		}
		paths = append(paths, dst)
	}
	if err := os.RemoveAll(s.dir); err != nil {
		return nil, fmt.Errorf("remove staging dir: %w", err)
	}
	return paths, nil
}

// Discard removes the staging directory and everything in it. Safe to call
// after Commit.
func (s *Stage) Discard() {
	os.RemoveAll(s.dir)
}

// WriteAtomic writes a single standalone file through a temp sibling and a
// rename, for commands whose outputs go to caller-chosen paths rather than
// one output directory.
func WriteAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	tmp := f.Name()
	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit %s: %w", path, err)
	}
	return nil
}
