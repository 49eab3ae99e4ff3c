package cli

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	internaldb "shop-demo/internal/db"
)

func newMigrateCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to a local SQLite file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := internaldb.OpenSQLite(dbPath, internaldb.ModeWrite, 0)
			if err != nil {
				return err
			}
			defer db.Close() //nolint:errcheck

			if err := internaldb.RunMigrations(db); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			v, err := internaldb.MigrationVersion(db)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"status":  "ok",
					"db":      dbPath,
					"version": v,
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s migrated to version %d\n", dbPath, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "shop.sqlite", "SQLite database path")
	return cmd
}
