// cmd/show.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/report"
	"github.com/julienpequegnot/newsterms/internal/run"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the ranking of a saved run",
	Long:  `Display a saved run's metadata and its ranked terms per category.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the ranking as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID: %s", args[0])
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := run.NewRepository(db)
	r, err := repo.Get(id)
	if err != nil {
		return err
	}
	ranking, err := repo.Ranking(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		data, err := report.MarshalIndent(ranking)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Styles
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	fmt.Fprintln(out, divider)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Run:"), valueStyle.Render(strconv.FormatInt(r.ID, 10)))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Input:"), valueStyle.Render(r.InputPath))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Date:"), valueStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("IDF scope:"), valueStyle.Render(string(r.IDFScope)))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Documents:"), valueStyle.Render(strconv.Itoa(r.DocumentCount)))
	for _, c := range ranking {
		fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(c.Category+":"), valueStyle.Render(fmt.Sprintf("%d docs", c.Documents)))
	}
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out)

	return report.Print(out, ranking, r.TopK)
}
