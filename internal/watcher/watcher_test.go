package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsForArtifacts(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watch loop a moment to come up.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "joke.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events:
		if filepath.Base(ev.Path) != "joke.svg" {
			t.Errorf("unexpected event path %s", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for artifact event")
	}
}

func TestIsArtifact(t *testing.T) {
	cases := map[string]bool{
		"/out/joke.svg":     true,
		"/out/news.svg":     true,
		"/out/jokes.log":    true,
		"/out/reaction.txt": true,
		"/out/notes.md":     false,
		"/out/joke.svg.tmp": false,
	}
	for path, want := range cases {
		if got := isArtifact(path); got != want {
			t.Errorf("isArtifact(%q) = %v, want %v", path, got, want)
		}
	}
}
