package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/newsterms/internal/config"
	"github.com/julienpequegnot/newsterms/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize newsterms configuration and database",
	Long:  `Creates the ~/.newsterms directory (or $NEWSTERMS_HOME) with config.yaml and the SQLite database of saved runs.`,
	RunE:  runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config.yaml with defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	// Create directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Create config
	if _, err := os.Stat(config.Path()); err == nil && !initForce {
		fmt.Printf("Keeping existing config at %s\n", config.Path())
	} else {
		if err := config.Save(config.Default()); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Printf("Created config at %s\n", config.Path())
	}

	// Create database
	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s\n", config.DBPath())

	fmt.Println("\nNewsterms initialized! Next steps:")
	fmt.Println("  newsterms score articles.csv tfidf_results.json --save")
	fmt.Println("  newsterms runs")

	return nil
}
