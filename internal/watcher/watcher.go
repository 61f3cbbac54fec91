// Package watcher monitors the output directory for artifact changes using
// OS-level notifications.
package watcher

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
)

// artifactPatterns selects which files in the output directory count as
// generated artifacts.
var artifactPatterns = []string{"*.svg", "*.log", "*.txt"}

// Watcher monitors one output directory and emits events for artifact files.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan model.ArtifactEvent
	dir    string
}

// New creates a Watcher on the given directory.
func New(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsw:    fsw,
		Events: make(chan model.ArtifactEvent, 256),
		dir:    dir,
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Start begins listening for file events. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isArtifact(ev.Name) {
				continue
			}
			switch {
			case ev.Op&fsnotify.Write != 0:
				w.emit(ev.Name, "write")
			case ev.Op&fsnotify.Create != 0:
				w.emit(ev.Name, "create")
			case ev.Op&fsnotify.Remove != 0:
				w.emit(ev.Name, "remove")
			case ev.Op&fsnotify.Rename != 0:
				w.emit(ev.Name, "rename")
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) emit(path, op string) {
	select {
	case w.Events <- model.ArtifactEvent{Path: path, Op: op, At: time.Now()}:
	default:
		log.Printf("watcher: dropped event for %s", path)
	}
}

// isArtifact reports whether the path matches one of the artifact patterns.
func isArtifact(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range artifactPatterns {
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
