// cmd/delete.go
package cmd

import (
	"fmt"
	"strconv"

	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/julienpequegnot/newsterms/internal/run"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <run-id>...",
	Short: "Delete saved runs",
	Long:  `Removes saved runs together with their categories and ranked terms.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", arg)
		}
		ids = append(ids, id)
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	repo := run.NewRepository(db)
	for _, id := range ids {
		if err := repo.Delete(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %d\n", id)
	}
	return nil
}
