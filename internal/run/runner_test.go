package run

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/badge"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/headline"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/runlog"
)

type stubFetcher struct {
	h   model.Headline
	err error
}

func (s stubFetcher) Fetch(ctx context.Context, category string, day time.Time) (model.Headline, error) {
	if s.err != nil {
		return model.Headline{}, s.err
	}
	h := s.h
	h.Category = category
	return h, nil
}

type stubGen struct {
	text string
	err  error
}

func (s stubGen) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

// sunday maps to "technology" in the category rotation.
var sunday = time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)

func newTestRunner(t *testing.T, dir string) *Runner {
	t.Helper()
	w, err := runlog.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	return &Runner{
		Headlines: stubFetcher{h: model.Headline{Title: "Robots demand coffee breaks", Source: "newsapi"}},
		Jokes:     stubGen{text: "A joke."},
		Reactions: stubGen{text: "How shocking."},
		Category:  headline.CategoryFor,
		Log:       w,
		Now:       func() time.Time { return sunday },
		Stdout:    &bytes.Buffer{},
	}
}

func TestRunnerWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	r := newTestRunner(t, dir)

	res, err := r.Do(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Headline.Category != "technology" {
		t.Errorf("Sunday run should use technology, got %s", res.Headline.Category)
	}

	for _, name := range []string{runlog.JokesLog, runlog.NewsLog, runlog.ReactionFile, runlog.JokeBadge, runlog.NewsBadge} {
		if _, err := os.Stat(r.Log.Path(name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRunnerLogFormats(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	if _, err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	jokes, _ := os.ReadFile(r.Log.Path(runlog.JokesLog))
	if got := strings.TrimRight(string(jokes), "\n"); got != "[2026-08-23] A joke." {
		t.Errorf("unexpected jokes line %q", got)
	}

	news, _ := os.ReadFile(r.Log.Path(runlog.NewsLog))
	if got := strings.TrimRight(string(news), "\n"); got != "[2026-08-23] [TECHNOLOGY] How shocking." {
		t.Errorf("unexpected news line %q", got)
	}
}

func TestRunnerTwoRunsAppendTwoLines(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	for i := 0; i < 2; i++ {
		if _, err := r.Do(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{runlog.JokesLog, runlog.NewsLog} {
		raw, err := os.ReadFile(r.Log.Path(name))
		if err != nil {
			t.Fatal(err)
		}
		if n := strings.Count(string(raw), "\n"); n != 2 {
			t.Errorf("%s: expected exactly 2 lines after 2 runs, got %d", name, n)
		}
	}
}

func TestRunnerNewsBadgeUsesCategoryAccent(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	if _, err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	svg, err := os.ReadFile(r.Log.Path(runlog.NewsBadge))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), badge.Theme("technology")) {
		t.Error("news badge should carry the technology accent")
	}
	if badge.Theme("technology") == badge.DefaultAccent {
		t.Error("technology accent must differ from the default")
	}
}

func TestRunnerHeadlineFailureIsFatal(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	r.Headlines = stubFetcher{err: &headline.NoHeadlineError{Category: "technology", Err: errors.New("down")}}

	if _, err := r.Do(context.Background()); err == nil {
		t.Fatal("expected fatal error when headline fetch fails")
	}
}

func TestRunnerGenerationFailureSurfaces(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	r.Jokes = stubGen{err: errors.New("all providers exhausted")}

	if _, err := r.Do(context.Background()); err == nil {
		t.Fatal("expected error when joke chain is exhausted")
	}
}

func TestRunnerReactionFileOverwritten(t *testing.T) {
	r := newTestRunner(t, t.TempDir())
	if _, err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	r.Reactions = stubGen{text: "Even more shocking."}
	if _, err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	raw, _ := os.ReadFile(r.Log.Path(runlog.ReactionFile))
	if string(raw) != "Even more shocking.\n" {
		t.Errorf("reaction file should hold only the latest reaction, got %q", raw)
	}
}
