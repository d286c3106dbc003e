package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/dataset"
	"github.com/julienpequegnot/newsterms/internal/report"
	"github.com/julienpequegnot/newsterms/internal/run"
	"github.com/julienpequegnot/newsterms/internal/textnorm"
	"github.com/julienpequegnot/newsterms/internal/tfidf"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <input> <output>",
	Short: "Rank the distinctive terms of each category",
	Long: `Reads an annotated table (.csv, .tsv, .json, .rss/.atom/.xml), computes
TF-IDF per category and writes the top terms as JSON to <output>.

IDF is computed over the whole corpus unless --idf-scope category is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

var (
	scoreTopK           int
	scoreIDFScope       string
	scoreCategoryColumn string
	scoreTextColumns    []string
	scoreStopWords      []string
	scoreStripHTML      bool
	scoreStem           bool
	scoreFoldAccents    bool
	scoreSave           bool
	scoreQuiet          bool
)

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().IntVarP(&scoreTopK, "top", "k", tfidf.DefaultTopK, "Number of terms per category")
	scoreCmd.Flags().StringVar(&scoreIDFScope, "idf-scope", string(tfidf.ScopeCorpus), "IDF scope: corpus or category")
	scoreCmd.Flags().StringVar(&scoreCategoryColumn, "category-column", dataset.DefaultCategoryColumn, "Column holding the category label")
	scoreCmd.Flags().StringSliceVar(&scoreTextColumns, "text-columns", dataset.DefaultTextColumns, "Columns joined into the document text")
	scoreCmd.Flags().StringSliceVar(&scoreStopWords, "stop-words", nil, "Extra stop words")
	scoreCmd.Flags().BoolVar(&scoreStripHTML, "strip-html", false, "Strip HTML markup from text columns")
	scoreCmd.Flags().BoolVar(&scoreStem, "stem", false, "Apply English Snowball stemming")
	scoreCmd.Flags().BoolVar(&scoreFoldAccents, "fold-accents", false, "Fold accented letters to ASCII before cleaning")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Save the run to the local database")
	scoreCmd.Flags().BoolVarP(&scoreQuiet, "quiet", "q", false, "Do not print the ranking")
}

// applyScoreFlags overrides config values with flags the user actually set.
func applyScoreFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("top") {
		cfg.Scoring.TopK = scoreTopK
	}
	if flags.Changed("idf-scope") {
		cfg.Scoring.IDFScope = scoreIDFScope
	}
	if flags.Changed("category-column") {
		cfg.Input.CategoryColumn = scoreCategoryColumn
	}
	if flags.Changed("text-columns") {
		cfg.Input.TextColumns = scoreTextColumns
	}
	if flags.Changed("stop-words") {
		cfg.Normalize.ExtraStopWords = append(cfg.Normalize.ExtraStopWords, scoreStopWords...)
	}
	if flags.Changed("strip-html") {
		cfg.Input.StripHTML = scoreStripHTML
	}
	if flags.Changed("stem") {
		cfg.Normalize.Stem = scoreStem
	}
	if flags.Changed("fold-accents") {
		cfg.Normalize.FoldAccents = scoreFoldAccents
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyScoreFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	scope, err := tfidf.ParseScope(cfg.Scoring.IDFScope)
	if err != nil {
		return err
	}

	opts := textnorm.Options{FoldAccents: cfg.Normalize.FoldAccents}
	if cfg.Normalize.Stem {
		stemmer, err := textnorm.NewSnowballStemmer()
		if err != nil {
			return err
		}
		defer stemmer.Close()
		opts.Stemmer = stemmer
	}
	normalizer := textnorm.New(textnorm.Default().Union(cfg.Normalize.ExtraStopWords...), opts)

	table, err := dataset.Read(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	loader := &dataset.Loader{
		TextColumns:    cfg.Input.TextColumns,
		CategoryColumn: cfg.Input.CategoryColumn,
		Normalizer:     normalizer,
		StripHTML:      cfg.Input.StripHTML,
	}
	docs, err := loader.Documents(table)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inputPath, err)
	}
	if len(docs) == 0 {
		slog.Warn("no labelled documents found", "input", inputPath)
	}

	corpus := tfidf.NewCorpus(docs)
	ranking := tfidf.NewScorer(cfg.Scoring.TopK, scope).Score(corpus)
	slog.Debug("scored corpus", "documents", corpus.Len(), "categories", len(ranking), "scope", scope)

	if err := report.WriteJSON(outputPath, ranking); err != nil {
		return err
	}
	slog.Info("wrote ranking", "path", outputPath, "categories", len(ranking))

	if !scoreQuiet {
		if err := report.Print(os.Stdout, ranking, cfg.Scoring.TopK); err != nil {
			return err
		}
	}

	if scoreSave {
		if err := saveRun(inputPath, scope, cfg.Scoring.TopK, corpus.Len(), ranking); err != nil {
			return fmt.Errorf("ranking written to %s but not saved: %w", outputPath, err)
		}
	}
	return nil
}

func saveRun(inputPath string, scope tfidf.Scope, topK, documents int, ranking tfidf.Ranking) error {
	if err := os.MkdirAll(config.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	if abs, err := filepath.Abs(inputPath); err == nil {
		inputPath = abs
	}

	saved, err := run.NewRepository(db).Save(inputPath, scope, topK, documents, ranking)
	if err != nil {
		return err
	}
	slog.Info("saved run", "id", saved.ID, "db", db.Path())
	return nil
}
