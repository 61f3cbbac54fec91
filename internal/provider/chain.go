package provider

import (
	"context"
	"fmt"
	"math/rand"
)

// WarnFunc receives non-fatal fallback diagnostics.
type WarnFunc func(format string, args ...any)

// Chain tries generators in priority order and falls back to a static local
// list when every remote attempt fails. A single pass, no per-provider
// retries: reliability here is best-effort by design of the product, not an
// availability target.
type Chain struct {
	attempts []Generator
	local    []string
	rng      *rand.Rand
	warn     WarnFunc
}

// NewChain builds a fallback chain. local may be nil, in which case the
// chain fails when all attempts do. rng drives the uniform pick from local
// and must be non-nil when local is set.
func NewChain(attempts []Generator, local []string, rng *rand.Rand, warn WarnFunc) *Chain {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Chain{attempts: attempts, local: local, rng: rng, warn: warn}
}

// Generate returns the first successful non-empty generation. Each failure
// is reported through warn and the next attempt is tried. With a local list
// configured the chain never fails; without one, the last error surfaces.
func (c *Chain) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, g := range c.attempts {
		text, err := g.Generate(ctx, prompt)
		if err != nil {
			lastErr = err
			c.warn("provider %s failed: %v", g.Name(), err)
			continue
		}
		return text, nil
	}

	if len(c.local) > 0 {
		return c.local[c.rng.Intn(len(c.local))], nil
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", fmt.Errorf("no generation attempts configured")
}
