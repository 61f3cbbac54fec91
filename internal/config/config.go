// Package config resolves the environment into one explicit Config at
// startup. Nothing else in the program reads the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/headline"
)

// ErrNoProviders means no generation credential is configured; the run
// cannot produce anything and fails fast.
var ErrNoProviders = errors.New("no generation providers configured (set OPENAI_API_KEY or HF_API_TOKEN)")

// Config is the fully-resolved runtime configuration.
type Config struct {
	// Generation providers. Empty string = not configured.
	OpenAIKey   string
	OpenAIModel string // optional override, empty = provider default
	HFToken     string

	// News sources. Empty string = not configured.
	NewsAPIKey string
	GNewsKey   string

	// HeadlinePolicy decides whether a failed headline fetch is fatal or
	// served from the built-in list.
	HeadlinePolicy headline.Policy

	// OutDir is where all artifacts are written.
	OutDir string
}

// Load reads configuration from the given viper instance. It fails with
// ErrNoProviders when no generation credential is present.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OpenAIKey:   v.GetString("openai_api_key"),
		OpenAIModel: v.GetString("openai_model"),
		HFToken:     v.GetString("hf_api_token"),
		NewsAPIKey:  v.GetString("news_api_key"),
		GNewsKey:    v.GetString("gnews_api_key"),
		OutDir:      v.GetString("jokerepo_out"),
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}

	switch v.GetString("headline_fallback") {
	case "", "fatal":
		cfg.HeadlinePolicy = headline.PolicyFatal
	case "local":
		cfg.HeadlinePolicy = headline.PolicyLocal
	default:
		return nil, fmt.Errorf("invalid HEADLINE_FALLBACK %q (want fatal or local)", v.GetString("headline_fallback"))
	}

	if cfg.OpenAIKey == "" && cfg.HFToken == "" {
		return nil, ErrNoProviders
	}
	return cfg, nil
}
