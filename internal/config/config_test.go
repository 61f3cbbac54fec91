package config

import (
	"errors"
	"testing"

	"github.com/spf13/viper"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/headline"
)

func TestLoadFailsFastWithoutProviders(t *testing.T) {
	v := viper.New()
	v.Set("news_api_key", "present-but-irrelevant")

	_, err := Load(v)
	if !errors.Is(err, ErrNoProviders) {
		t.Fatalf("expected ErrNoProviders, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.Set("openai_api_key", "sk-test")

	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "." {
		t.Errorf("expected default out dir, got %q", cfg.OutDir)
	}
	if cfg.HeadlinePolicy != headline.PolicyFatal {
		t.Error("default headline policy must be fatal")
	}
	if cfg.OpenAIModel != "" {
		t.Errorf("expected empty model override, got %q", cfg.OpenAIModel)
	}
}

func TestLoadLocalPolicy(t *testing.T) {
	v := viper.New()
	v.Set("hf_api_token", "hf-test")
	v.Set("headline_fallback", "local")

	cfg, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HeadlinePolicy != headline.PolicyLocal {
		t.Error("expected local headline policy")
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	v := viper.New()
	v.Set("openai_api_key", "sk-test")
	v.Set("headline_fallback", "retry")

	if _, err := Load(v); err == nil {
		t.Fatal("expected error for unknown policy value")
	}
}
