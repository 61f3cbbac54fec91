// Package provider holds the text-generation backends and the fallback chain
// that sequences them.
package provider

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Generator produces a single line of text for a prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError reports a failure from one backend. The chain treats it as
// recoverable and moves on to the next attempt.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// normalize collapses internal line breaks and surrounding whitespace so
// every generated text is a single line.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// readAllLimit reads at most limit bytes from r. Provider responses are
// small; the cap guards against a misbehaving backend.
func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}
