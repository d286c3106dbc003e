// cmd/runs.go
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/run"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List saved scoring runs",
	Long:  `List scoring runs saved with 'newsterms score --save', newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

var runsLimit int

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "l", 20, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := run.NewRepository(db).List(runsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No saved runs. Run 'newsterms score <input> <output> --save' first.")
		return nil
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	scopeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// Header
	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-16s  %-8s  %-3s  %-6s  %-4s  %s", "#", "DATE", "SCOPE", "K", "DOCS", "CATS", "INPUT")))
	fmt.Println(strings.Repeat("─", 90))

	for _, r := range runs {
		input := filepath.Base(r.InputPath)
		if len(input) > 40 {
			input = input[:37] + "..."
		}

		fmt.Printf(" %s  %s  %s  %s  %s  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", r.ID)),
			dateStyle.Render(fmt.Sprintf("%-16s", r.CreatedAt.Local().Format("2006-01-02 15:04"))),
			scopeStyle.Render(fmt.Sprintf("%-8s", r.IDFScope)),
			fmt.Sprintf("%-3d", r.TopK),
			countStyle.Render(fmt.Sprintf("%-6d", r.DocumentCount)),
			countStyle.Render(fmt.Sprintf("%-4d", r.Categories)),
			input,
		)
	}

	return nil
}
