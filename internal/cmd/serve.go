package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/aggregator"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/hub"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/server"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/watcher"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the generated badges in a browser",
	Long: `Serve a local dashboard showing the current badges and run stats.
The output directory is watched; when a run rewrites a badge the page
updates live. Serving never triggers generation.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8099", "dashboard port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "shutting down")
		cancel()
		os.Exit(0)
	}()

	dir := viper.GetString("jokerepo_out")
	if dir == "" {
		dir = "."
	}

	w, err := watcher.New(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	h := hub.New(w.Events)
	agg := aggregator.New(dir, h.Subscribe(), h.Dropped)

	go w.Start(ctx)
	go h.Start(ctx)
	go agg.Start(ctx)

	fmt.Fprintf(os.Stderr, "%s dashboard on http://localhost:%s (watching %s)\n",
		styleOK.Render("OK"), servePort, dir)

	return server.New(h, agg, dir, servePort).Start()
}
