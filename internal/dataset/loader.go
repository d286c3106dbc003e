package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/julienpequegnot/newsterms/internal/textnorm"
	"github.com/julienpequegnot/newsterms/internal/tfidf"
)

const DefaultCategoryColumn = "coding"

var DefaultTextColumns = []string{"title", "description"}

// Loader turns table rows into scoring documents.
type Loader struct {
	TextColumns    []string
	CategoryColumn string
	Normalizer     *textnorm.Normalizer
	StripHTML      bool
}

func NewLoader(n *textnorm.Normalizer) *Loader {
	return &Loader{
		TextColumns:    append([]string(nil), DefaultTextColumns...),
		CategoryColumn: DefaultCategoryColumn,
		Normalizer:     n,
	}
}

// Documents builds one document per row, in row order. The text columns are
// joined with a space and normalized. Rows with a blank category are skipped.
func (l *Loader) Documents(t *Table) ([]tfidf.Document, error) {
	catIdx, err := t.Column(l.CategoryColumn)
	if err != nil {
		return nil, err
	}
	if len(l.TextColumns) == 0 {
		return nil, malformed("no text columns configured")
	}
	textIdx := make([]int, len(l.TextColumns))
	for i, name := range l.TextColumns {
		if textIdx[i], err = t.Column(name); err != nil {
			return nil, err
		}
	}

	n := l.Normalizer
	if n == nil {
		n = textnorm.New(textnorm.Default(), textnorm.Options{})
	}

	docs := make([]tfidf.Document, 0, len(t.Rows))
	skipped := 0
	for i, row := range t.Rows {
		category := strings.TrimSpace(row[catIdx])
		if category == "" {
			slog.Warn("skipped row without category", "row", i+1, "column", l.CategoryColumn)
			skipped++
			continue
		}

		parts := make([]string, len(textIdx))
		for j, idx := range textIdx {
			cell := row[idx]
			if l.StripHTML {
				if cell, err = StripHTML(cell); err != nil {
					return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedInput, i+1, err)
				}
			}
			parts[j] = cell
		}

		docs = append(docs, tfidf.Document{
			Text:     n.Normalize(strings.Join(parts, " ")),
			Category: category,
		})
	}

	slog.Debug("loaded documents", "rows", len(t.Rows), "documents", len(docs), "skipped", skipped)
	return docs, nil
}

// StripHTML returns the text content of an HTML fragment. Text without
// markup is returned unchanged.
func StripHTML(s string) (string, error) {
	if !strings.ContainsRune(s, '<') {
		return s, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style").Remove()
	return doc.Text(), nil
}
