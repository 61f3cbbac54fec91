package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	outDir  string
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "jokerepo",
	Short: "JokeRepo — daily joke & news-reaction badge generator",
	Long: `JokeRepo generates a daily joke and a sarcastic reaction to a news
headline using a chain of AI providers with local fallback, then renders
both as SVG badges and appends them to run logs. A scheduler (cron, CI)
invokes "jokerepo run" once per day; "jokerepo serve" previews the badges.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleErr.Render("ERROR")+" "+err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.jokerepo.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory for logs and badges (default: JOKEREPO_OUT or .)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".jokerepo")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	// --out wins over JOKEREPO_OUT.
	if outDir != "" {
		viper.Set("jokerepo_out", outDir)
	}
}
