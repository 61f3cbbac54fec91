// Package headline selects the day's news category, picks a backend, and
// fetches one top headline. Category and backend choice are pure functions
// of the date, so a given day always asks the same source the same question.
package headline

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/model"
)

// rotation maps day-of-week to topic, Sunday first (time.Weekday order).
var rotation = [7]string{
	"technology",
	"business",
	"science",
	"health",
	"sports",
	"entertainment",
	"general",
}

// CategoryFor returns the topic for the given day.
func CategoryFor(t time.Time) string {
	return rotation[int(t.Weekday())]
}

// Source is one news backend.
type Source interface {
	Name() string
	TopHeadline(ctx context.Context, category string) (string, error)
}

// NoHeadlineError reports that no headline could be retrieved for a category.
type NoHeadlineError struct {
	Category string
	Err      error
}

func (e *NoHeadlineError) Error() string {
	return fmt.Sprintf("no headline for %s: %v", e.Category, e.Err)
}

func (e *NoHeadlineError) Unwrap() error { return e.Err }

// Policy controls what happens when headline retrieval fails. The two
// behaviors were shipped side by side historically; both remain available
// until product decides which one wins.
type Policy int

const (
	// PolicyFatal surfaces NoHeadlineError to the caller.
	PolicyFatal Policy = iota
	// PolicyLocal falls back to a built-in headline list.
	PolicyLocal
)

// localHeadlines backs PolicyLocal.
var localHeadlines = []string{
	"Scientists confirm coffee still legal, nation exhales",
	"Local developer fixes bug, introduces three more",
	"Markets react to news about markets reacting to news",
	"Study finds studies find whatever studies want to find",
	"Weather expected to continue happening this week",
}

// Fetcher issues one request per run against the date-selected backend.
type Fetcher struct {
	Primary   Source // NewsAPI, nil when no credential
	Secondary Source // GNews, nil when no credential
	Policy    Policy
	Rand      *rand.Rand // required for PolicyLocal
}

// pick chooses the backend for a day. With both configured, even days of the
// month go to the primary and odd days to the secondary; with one configured
// that one always serves.
func (f *Fetcher) pick(day time.Time) Source {
	switch {
	case f.Primary != nil && f.Secondary != nil:
		if day.Day()%2 == 0 {
			return f.Primary
		}
		return f.Secondary
	case f.Primary != nil:
		return f.Primary
	default:
		return f.Secondary
	}
}

// Fetch returns the first headline the selected backend has for the
// category. On failure PolicyLocal picks a built-in headline at uniform
// random; PolicyFatal returns NoHeadlineError.
func (f *Fetcher) Fetch(ctx context.Context, category string, day time.Time) (model.Headline, error) {
	src := f.pick(day)
	if src == nil {
		return f.fallback(category, &NoHeadlineError{Category: category, Err: fmt.Errorf("no news credentials configured")})
	}

	title, err := src.TopHeadline(ctx, category)
	if err != nil {
		return f.fallback(category, &NoHeadlineError{Category: category, Err: err})
	}
	return model.Headline{Title: title, Category: category, Source: src.Name()}, nil
}

func (f *Fetcher) fallback(category string, err *NoHeadlineError) (model.Headline, error) {
	if f.Policy == PolicyLocal && f.Rand != nil {
		return model.Headline{
			Title:    localHeadlines[f.Rand.Intn(len(localHeadlines))],
			Category: category,
			Source:   "local",
		}, nil
	}
	return model.Headline{}, err
}
