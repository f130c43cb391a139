package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkArea is the scoped temp directory holding one run's intermediate
// artifacts (staged video, extracted audio). It is owned by exactly one
// run and must be released on every exit path.
type WorkArea struct {
	root string
}

// NewWorkArea creates a fresh directory under base (the system temp
// directory when base is empty), named after the run so concurrent runs
// never collide.
func NewWorkArea(base, runID string) (*WorkArea, error) {
	if base != "" {
		if err := os.MkdirAll(base, 0o755); err != nil {
			return nil, fmt.Errorf("create work area base: %w", err)
		}
	}
	root, err := os.MkdirTemp(base, "run-"+runID+"-")
	if err != nil {
		return nil, fmt.Errorf("create work area: %w", err)
	}
	return &WorkArea{root: root}, nil
}

// Root returns the work area directory.
func (w *WorkArea) Root() string { return w.root }

// Path resolves name inside the work area.
func (w *WorkArea) Path(name string) string {
	return filepath.Join(w.root, name)
}

// Release removes the work area and everything in it.
func (w *WorkArea) Release() error {
	return os.RemoveAll(w.root)
}
