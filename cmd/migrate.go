package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"schemagen/internal/dialect"
	"schemagen/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations, then regenerate schema classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := GetMigrationSettings()

		runner := &migrate.Runner{
			DB:      DB,
			Dialect: dialect.Get(DriverName),
			Dir:     settings.Dir,
			Table:   settings.Table,
			Log:     Log,
		}

		applied, err := runner.Apply(cmd.Context())
		if err != nil {
			return fmt.Errorf("migration failed after %d script(s): %w", len(applied), err)
		}

		if len(applied) == 0 {
			fmt.Println("no pending migrations")
		} else {
			fmt.Printf("applied %d migration(s)\n", len(applied))
			for _, name := range applied {
				fmt.Printf("  up  %s\n", name)
			}
		}

		gen := GetGenerationSettings()
		if !gen.Enabled {
			Log.Debug().Msg("schema generation disabled, skipping")
			return nil
		}
		return runGeneration(cmd)
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
