package cmd

import (
	"context"
	"fmt"

	"vehicle-reconciler/feature/integrity/checks"
	"vehicle-reconciler/feature/vehicle/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCheckOnly bool

// migrateCmd creates or updates the vehicle tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the vehicle tables",
	Long: `Auto-migrates the vehicle tables, then verifies every model column exists.
With --check the schema is only verified and the command fails on drift.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		d, err := bootstrap(ctx, required, skip)
		if err != nil {
			return err
		}
		defer d.sync()

		if !migrateCheckOnly {
			if err := d.migrate(); err != nil {
				return err
			}
			d.log.Info("Vehicle tables migrated", zap.String("driver", d.cfg.Database.Driver))
		}

		report, err := checks.CheckSchema(d.db, store.Tables()...)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd.OutOrStdout(), formatJSON, report); err != nil {
			return err
		}
		if !report.Matched {
			return fmt.Errorf("database schema does not match the vehicle models")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateCheckOnly, "check", false, "Only verify the schema")
	RootCmd.AddCommand(migrateCmd)
}
