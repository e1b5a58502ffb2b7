package cmd

import (
	"fmt"

	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return database.MigrateUp(config.Database)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}

		config, err := utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return database.MigrateDown(config.Database, steps)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to roll back")
}
