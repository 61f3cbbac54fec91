// Package runlog owns the on-disk artifacts of a run: the append-only run
// logs and the overwritten badge/reaction files.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames, relative to the output directory.
const (
	JokesLog     = "jokes.log"
	NewsLog      = "news.log"
	ReactionFile = "reaction.txt"
	JokeBadge    = "joke.svg"
	NewsBadge    = "news.svg"
)

// Writer reads and writes artifacts under a single output directory.
type Writer struct {
	dir string
}

// New creates a Writer rooted at dir, creating the directory if needed.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Path resolves an artifact name to its full path.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Append adds one line to an append-only log. Existing lines are never
// touched.
func (w *Writer) Append(name, line string) error {
	f, err := os.OpenFile(w.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", name, err)
	}
	return nil
}

// Overwrite replaces an artifact's content. Writes go to a temp file first,
// then rename, so a reader never sees a half-written badge.
func (w *Writer) Overwrite(name string, data []byte) error {
	path := w.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
