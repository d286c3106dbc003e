package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "newsterms",
	Short: "Find the distinctive terms of annotated news categories",
	Long: `Newsterms scores annotated news articles with TF-IDF and reports the
most distinctive terms of every category.

Pipeline: dedupe → (annotate) → sentiment → score → runs/show`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

var logLevel string

func init() {
	rootCmd.Version = "0.1.0"
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		// A broken config is reported by the command that needs it.
		if cfg, err := config.Load(); err == nil {
			level = cfg.LogLevel
		}
	}
	logging.SetDefaultCLILogger(level)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
