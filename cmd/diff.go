package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/drift"
	"github.com/julienpequegnot/newsterms/internal/run"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <run-id> <run-id>",
	Short: "Compare the rankings of two saved runs",
	Long:  `Shows, per category, which terms entered or left the top list between two saved runs and how the scores of the others moved.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	var ids [2]int64
	for i, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", arg)
		}
		ids[i] = id
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := run.NewRepository(db)
	before, err := repo.Ranking(ids[0])
	if err != nil {
		return err
	}
	after, err := repo.Ranking(ids[1])
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	upStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	downStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	for _, c := range drift.Compare(before, after) {
		fmt.Println(headerStyle.Render(fmt.Sprintf("Category '%s':", c.Category)))
		for _, ch := range c.Entered {
			fmt.Println(upStyle.Render(fmt.Sprintf("  + %s: %.4f", ch.Term, ch.After)))
		}
		for _, ch := range c.Left {
			fmt.Println(downStyle.Render(fmt.Sprintf("  - %s: %.4f", ch.Term, ch.Before)))
		}
		for _, ch := range c.Kept {
			line := fmt.Sprintf("    %s: %.4f -> %.4f (#%d -> #%d)", ch.Term, ch.Before, ch.After, ch.RankBefore+1, ch.RankAfter+1)
			fmt.Println(dimStyle.Render(line))
		}
		fmt.Println()
	}
	return nil
}
