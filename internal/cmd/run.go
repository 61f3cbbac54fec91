package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/config"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/headline"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/provider"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/run"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/runlog"
)

var (
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // green
)

// localJokes backs the generation chain when every remote provider fails.
var localJokes = []string{
	"I told my computer a joke about UDP. I'm not sure it got it.",
	"There are 10 kinds of people: those who understand binary and those who don't.",
	"A SQL query walks into a bar, approaches two tables and asks: may I join you?",
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I changed my password to 'incorrect' so my computer reminds me when I forget.",
}

// localReactions is the canned last resort for the sarcastic reaction.
var localReactions = []string{
	"Wow, nobody could have possibly seen that coming.",
	"Truly the most important story of our lifetime.",
	"Ah yes, exactly what the world needed today.",
	"Groundbreaking. Someone alert the history books.",
	"And in other news, water remains wet.",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one daily generation pass",
	Long: `Fetch today's headline, generate the joke and the sarcastic reaction
through the provider fallback chain, append the run logs, and write the
SVG badges. Intended to be invoked once per day by an external scheduler.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styleWarn.Render("WARN")+" "+fmt.Sprintf(format, args...))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	log, err := runlog.New(cfg.OutDir)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var gens []provider.Generator
	if cfg.OpenAIKey != "" {
		gens = append(gens, provider.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel))
	}
	if cfg.HFToken != "" {
		gens = append(gens, provider.NewHuggingFace(cfg.HFToken))
	}

	var primary, secondary headline.Source
	if cfg.NewsAPIKey != "" {
		primary = headline.NewNewsAPI(cfg.NewsAPIKey)
	}
	if cfg.GNewsKey != "" {
		secondary = headline.NewGNews(cfg.GNewsKey)
	}

	r := &run.Runner{
		Headlines: &headline.Fetcher{
			Primary:   primary,
			Secondary: secondary,
			Policy:    cfg.HeadlinePolicy,
			Rand:      rng,
		},
		Jokes:     provider.NewChain(gens, localJokes, rng, warnf),
		Reactions: provider.NewChain(gens, localReactions, rng, warnf),
		Category:  headline.CategoryFor,
		Log:       log,
		Now:       time.Now,
		Stdout:    os.Stdout,
	}

	res, err := r.Do(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s badges written to %s (category %s, headline via %s)\n",
		styleOK.Render("OK"), log.Dir(), res.Headline.Category, res.Headline.Source)
	return nil
}
