// Package aggregator derives dashboard stats from the run logs.
package aggregator

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/runlog"
)

// Stats holds a point-in-time snapshot of run history.
type Stats struct {
	Uptime         string         `json:"uptime"`
	TotalRuns      int            `json:"total_runs"`
	LastRun        string         `json:"last_run"` // YYYY-MM-DD, empty before first run
	CategoryCounts map[string]int `json:"category_counts"`
	DroppedEvents  int64          `json:"dropped_events"`
}

var (
	jokeLine = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2})\] `)
	newsLine = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2})\] \[([A-Z]+)\] `)
)

// Aggregator watches artifact events and recomputes stats from the logs.
type Aggregator struct {
	mu        sync.RWMutex
	startTime time.Time
	dir       string
	events    <-chan model.ArtifactEvent
	dropped   func() int64

	totalRuns      int
	lastRun        string
	categoryCounts map[string]int
}

// New creates an Aggregator over the output directory. events triggers a
// reload; droppedFn reports the hub's drop counter.
func New(dir string, events <-chan model.ArtifactEvent, droppedFn func() int64) *Aggregator {
	a := &Aggregator{
		startTime:      time.Now(),
		dir:            dir,
		events:         events,
		dropped:        droppedFn,
		categoryCounts: make(map[string]int),
	}
	a.reload()
	return a
}

// Snapshot returns the current stats.
func (a *Aggregator) Snapshot() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	counts := make(map[string]int, len(a.categoryCounts))
	for k, v := range a.categoryCounts {
		counts[k] = v
	}

	return Stats{
		Uptime:         time.Since(a.startTime).Truncate(time.Second).String(),
		TotalRuns:      a.totalRuns,
		LastRun:        a.lastRun,
		CategoryCounts: counts,
		DroppedEvents:  a.dropped(),
	}
}

// Start reloads stats whenever an artifact changes. Blocks until the context
// is cancelled or the event channel is closed.
func (a *Aggregator) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-a.events:
			if !ok {
				return
			}
			a.reload()
		}
	}
}

// reload re-parses both run logs from disk. The logs are one line per run,
// so a full re-read stays cheap.
func (a *Aggregator) reload() {
	total := 0
	last := ""
	forEachLine(a.path(runlog.JokesLog), func(line string) {
		if m := jokeLine.FindStringSubmatch(line); m != nil {
			total++
			last = m[1]
		}
	})

	counts := make(map[string]int)
	forEachLine(a.path(runlog.NewsLog), func(line string) {
		if m := newsLine.FindStringSubmatch(line); m != nil {
			counts[m[2]]++
		}
	})

	a.mu.Lock()
	a.totalRuns = total
	a.lastRun = last
	a.categoryCounts = counts
	a.mu.Unlock()
}

func (a *Aggregator) path(name string) string {
	return filepath.Join(a.dir, name)
}

func forEachLine(path string, fn func(string)) {
	f, err := os.Open(path)
	if err != nil {
		return // log not written yet
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fn(scanner.Text())
	}
}
