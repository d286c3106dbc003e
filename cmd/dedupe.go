package cmd

import (
	"fmt"
	"log/slog"

	"github.com/julienpequegnot/newsterms/internal/article"
	"github.com/spf13/cobra"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <input-dir>",
	Short: "Clean and deduplicate NewsAPI dumps",
	Long: `Loads every *.json NewsAPI response in <input-dir>, drops "[Removed]"
placeholders, removes articles with the same title and author, and lists
the distinct source names.`,
	Args: cobra.ExactArgs(1),
	RunE: runDedupe,
}

var (
	dedupeUniqueOutput  string
	dedupeRemovedOutput string
	dedupeSourcesOutput string
)

func init() {
	rootCmd.AddCommand(dedupeCmd)
	dedupeCmd.Flags().StringVar(&dedupeUniqueOutput, "unique-output", "remaining_articles.json", "Output file for unique articles")
	dedupeCmd.Flags().StringVar(&dedupeRemovedOutput, "removed-output", "removed_duplicates.json", "Output file for removed duplicates")
	dedupeCmd.Flags().StringVar(&dedupeSourcesOutput, "sources-output", "source_names.json", "Output file for source names")
}

func runDedupe(cmd *cobra.Command, args []string) error {
	articles, err := article.LoadDir(args[0])
	if err != nil {
		return err
	}

	res := article.Clean(articles)
	log := slog.Default().WithGroup("dedupe")
	log.Info("cleaned articles",
		"loaded", len(articles),
		"placeholders", len(articles)-len(res.Unique)-len(res.Removed),
		"unique", len(res.Unique),
		"duplicates", len(res.Removed),
		"sources", len(res.Sources))

	outputs := []struct {
		path string
		v    any
	}{
		{dedupeUniqueOutput, res.Unique},
		{dedupeRemovedOutput, res.Removed},
		{dedupeSourcesOutput, res.Sources},
	}
	for _, o := range outputs {
		if err := article.WriteJSON(o.path, o.v); err != nil {
			return fmt.Errorf("failed to write %s: %w", o.path, err)
		}
	}

	fmt.Printf("Kept %d unique articles from %d sources (%d duplicates removed)\n",
		len(res.Unique), len(res.Sources), len(res.Removed))
	return nil
}
