// cmd/search.go
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/search"
	"github.com/julienpequegnot/newsterms/internal/textnorm"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find saved runs that rank a term",
	Long:  `Looks up a term across the rankings of all saved runs. The term is cleaned the same way document text is.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	searchLimit  int
	searchPrefix bool
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 20, "Maximum results to show")
	searchCmd.Flags().BoolVar(&searchPrefix, "prefix", false, "Match every term starting with <term>")
}

func runSearch(cmd *cobra.Command, args []string) error {
	tokens := textnorm.New(textnorm.NewStopWords(), textnorm.Options{FoldAccents: true}).Tokens(args[0])
	if len(tokens) != 1 {
		return fmt.Errorf("expected a single word, got %q", args[0])
	}
	term := tokens[0]

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	hits, err := search.NewRepository(db).Term(term, searchPrefix, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(hits) == 0 {
		fmt.Printf("No saved ranking contains '%s'\n", term)
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	categoryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	fmt.Printf("\n%s '%s' (%d results)\n\n", titleStyle.Render("TERM:"), term, len(hits))

	for _, h := range hits {
		fmt.Printf("%s %s  %s #%d  %s: %.4f\n",
			idStyle.Render(fmt.Sprintf("[%d]", h.RunID)),
			filepath.Base(h.InputPath),
			categoryStyle.Render(h.Category),
			h.Rank+1,
			h.Term,
			h.Score,
		)
	}

	return nil
}
