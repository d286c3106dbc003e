package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienpequegnot/newsterms/internal/tfidf"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Input     InputConfig     `yaml:"input"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	LogLevel  string          `yaml:"log_level"`
}

type InputConfig struct {
	CategoryColumn string   `yaml:"category_column"`
	TextColumns    []string `yaml:"text_columns"`
	StripHTML      bool     `yaml:"strip_html"`
}

type NormalizeConfig struct {
	ExtraStopWords []string `yaml:"extra_stop_words,omitempty"`
	Stem           bool     `yaml:"stem"`
	FoldAccents    bool     `yaml:"fold_accents"`
}

type ScoringConfig struct {
	TopK     int    `yaml:"top_k"`
	IDFScope string `yaml:"idf_scope"`
}

type SentimentConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	Column         string `yaml:"column"`
	OutputColumn   string `yaml:"output_column"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxAttempts    int    `yaml:"max_attempts"`
}

func Default() *Config {
	return &Config{
		Input: InputConfig{
			CategoryColumn: "coding",
			TextColumns:    []string{"title", "description"},
		},
		Normalize: NormalizeConfig{},
		Scoring: ScoringConfig{
			TopK:     tfidf.DefaultTopK,
			IDFScope: string(tfidf.ScopeCorpus),
		},
		Sentiment: SentimentConfig{
			BaseURL:        "http://localhost:11434",
			Model:          "llama3.2",
			Column:         "description",
			OutputColumn:   "sentiment",
			TimeoutSeconds: 60,
			MaxAttempts:    3,
		},
		LogLevel: "info",
	}
}

// Validate reports every invalid scoring or input setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Scoring.TopK < 1 {
		errs = append(errs, fmt.Errorf("scoring.top_k must be at least 1, got %d", c.Scoring.TopK))
	}
	if _, err := tfidf.ParseScope(c.Scoring.IDFScope); err != nil {
		errs = append(errs, fmt.Errorf("scoring.idf_scope: %w", err))
	}
	if strings.TrimSpace(c.Input.CategoryColumn) == "" {
		errs = append(errs, errors.New("input.category_column must not be blank"))
	}
	if len(c.Input.TextColumns) == 0 {
		errs = append(errs, errors.New("input.text_columns must name at least one column"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func Dir() string {
	if dir := os.Getenv("NEWSTERMS_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".newsterms")
}

func DBPath() string {
	return filepath.Join(Dir(), "newsterms.db")
}

func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", Path(), err)
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0644)
}
