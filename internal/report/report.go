package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/newsterms/internal/output"
	"github.com/julienpequegnot/newsterms/internal/tfidf"
)

const indent = "    "

// MarshalIndent renders the ranking as {category: {term: score}} indented
// with four spaces, keeping category and term order.
func MarshalIndent(r tfidf.Ranking) ([]byte, error) {
	compact, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent ranking: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON writes the ranking to path. The file is replaced atomically;
// nothing is written when encoding fails.
func WriteJSON(path string, r tfidf.Ranking) error {
	data, err := MarshalIndent(r)
	if err != nil {
		return err
	}
	if err := output.WriteBytes(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Print writes the console form of the ranking:
//
//	Top 10 words for category 'A':
//	wins: 0.0676
//
// Styling is dropped when w is not a terminal.
func Print(w io.Writer, r tfidf.Ranking, k int) error {
	renderer := lipgloss.NewRenderer(w)
	headerStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	termStyle := renderer.NewStyle().Foreground(lipgloss.Color("14"))
	scoreStyle := renderer.NewStyle().Foreground(lipgloss.Color("10"))

	for _, c := range r {
		header := fmt.Sprintf("Top %d words for category '%s':", k, c.Category)
		if _, err := fmt.Fprintln(w, headerStyle.Render(header)); err != nil {
			return err
		}
		for _, s := range c.Terms {
			_, err := fmt.Fprintf(w, "%s: %s\n",
				termStyle.Render(s.Term),
				scoreStyle.Render(fmt.Sprintf("%.4f", s.Score)))
			if err != nil {
				return err
			}
		}
		// Two blank lines between categories.
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}
