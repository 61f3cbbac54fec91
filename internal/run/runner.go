// Package run sequences one generation pass: headline, joke, reaction,
// logs, badges.
package run

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/badge"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/runlog"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/textwrap"
)

const (
	dateFormat = "2006-01-02"
	wrapWidth  = 56

	jokeTitle = "Joke of the Day"
	newsTitle = "News Reaction"

	jokePrompt = "Tell me a short, original one-liner joke. Reply with only the joke, no preamble."
)

// Fetcher retrieves the day's headline.
type Fetcher interface {
	Fetch(ctx context.Context, category string, day time.Time) (model.Headline, error)
}

// Generator is the fallback chain interface the runner depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Runner wires the pipeline together. Construct it once and call Do.
type Runner struct {
	Headlines Fetcher
	Jokes     Generator
	Reactions Generator
	Category  func(time.Time) string
	Log       *runlog.Writer
	Now       func() time.Time
	Stdout    io.Writer
}

// Do executes one pass. Headline failure is governed by the fetcher's
// policy; generation failure after chain exhaustion surfaces here. All
// filesystem errors are fatal.
func (r *Runner) Do(ctx context.Context) (model.RunResult, error) {
	now := r.Now()
	date := now.Format(dateFormat)
	category := r.Category(now)

	h, err := r.Headlines.Fetch(ctx, category, now)
	if err != nil {
		return model.RunResult{}, fmt.Errorf("fetch headline: %w", err)
	}

	joke, err := r.Jokes.Generate(ctx, jokePrompt)
	if err != nil {
		return model.RunResult{}, fmt.Errorf("generate joke: %w", err)
	}

	reaction, err := r.Reactions.Generate(ctx, reactionPrompt(h))
	if err != nil {
		return model.RunResult{}, fmt.Errorf("generate reaction: %w", err)
	}

	res := model.RunResult{Date: date, Headline: h, Joke: joke, Reaction: reaction}
	if err := r.write(res); err != nil {
		return model.RunResult{}, err
	}

	fmt.Fprintf(r.Stdout, "%s\n%s\n", joke, reaction)
	return res, nil
}

func reactionPrompt(h model.Headline) string {
	return fmt.Sprintf(
		"Today's %s headline is: %q. Write one short sarcastic reaction to it. Reply with only the reaction.",
		h.Category, h.Title,
	)
}

// write appends the run logs and replaces the reaction file and badges.
func (r *Runner) write(res model.RunResult) error {
	if err := r.Log.Append(runlog.JokesLog, fmt.Sprintf("[%s] %s", res.Date, res.Joke)); err != nil {
		return err
	}
	newsLine := fmt.Sprintf("[%s] [%s] %s", res.Date, strings.ToUpper(res.Headline.Category), res.Reaction)
	if err := r.Log.Append(runlog.NewsLog, newsLine); err != nil {
		return err
	}

	if err := r.Log.Overwrite(runlog.ReactionFile, []byte(res.Reaction+"\n")); err != nil {
		return err
	}

	jokeSVG := badge.Render(jokeTitle, textwrap.Wrap(res.Joke, wrapWidth), badge.DefaultAccent, res.Date)
	if err := r.Log.Overwrite(runlog.JokeBadge, []byte(jokeSVG)); err != nil {
		return err
	}

	body := res.Headline.Title + " - " + res.Reaction
	newsSVG := badge.Render(newsTitle, textwrap.Wrap(body, wrapWidth), badge.Theme(res.Headline.Category), res.Date)
	return r.Log.Overwrite(runlog.NewsBadge, []byte(newsSVG))
}
