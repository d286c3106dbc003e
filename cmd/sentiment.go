package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/dataset"
	"github.com/julienpequegnot/newsterms/internal/llm"
	"github.com/julienpequegnot/newsterms/internal/retry"
	"github.com/spf13/cobra"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment <input> <output>",
	Short: "Label each article's sentiment using a local LLM",
	Long: `Classifies the text column of every row as positive, neutral or negative
with an Ollama model and writes the table as CSV with the label column added.`,
	Args: cobra.ExactArgs(2),
	RunE: runSentiment,
}

var (
	sentimentColumn       string
	sentimentOutputColumn string
	sentimentModel        string
	sentimentSkipErrors   bool
)

func init() {
	rootCmd.AddCommand(sentimentCmd)
	sentimentCmd.Flags().StringVar(&sentimentColumn, "column", "", "Column to classify (default from config: description)")
	sentimentCmd.Flags().StringVar(&sentimentOutputColumn, "output-column", "", "Column receiving the label (default from config: sentiment)")
	sentimentCmd.Flags().StringVar(&sentimentModel, "model", "", "Ollama model (default from config)")
	sentimentCmd.Flags().BoolVar(&sentimentSkipErrors, "skip-errors", false, "Leave the label empty when classification fails")
}

func runSentiment(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sc := cfg.Sentiment
	if sentimentColumn != "" {
		sc.Column = sentimentColumn
	}
	if sentimentOutputColumn != "" {
		sc.OutputColumn = sentimentOutputColumn
	}
	if sentimentModel != "" {
		sc.Model = sentimentModel
	}

	table, err := dataset.Read(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	col, err := table.Column(sc.Column)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inputPath, err)
	}

	timeout := time.Duration(sc.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = time.Minute
	}
	client := llm.NewClient(sc.BaseURL, sc.Model, timeout)
	policy := retry.Config{MaxAttempts: sc.MaxAttempts, Delay: 2 * time.Second, Backoff: true}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	labels := make([]string, len(table.Rows))
	failed := 0
	for i, row := range table.Rows {
		var label llm.Label
		err := retry.Do(ctx, policy, func() error {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			var err error
			label, err = client.ClassifySentiment(reqCtx, row[col])
			return err
		})
		if err != nil {
			if !sentimentSkipErrors {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			slog.Warn("classification failed", "row", i+1, "error", err)
			failed++
			continue
		}
		labels[i] = string(label)
		slog.Debug("classified", "row", i+1, "label", label)
	}

	if err := table.SetColumn(sc.OutputColumn, labels); err != nil {
		return err
	}
	if err := dataset.WriteCSV(outputPath, table); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Labelled %d rows with %s (%d failed)\n", len(table.Rows)-failed, sc.Model, failed)
	return nil
}
