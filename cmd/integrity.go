package cmd

import (
	"context"
	"fmt"

	"vehicle-reconciler/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the archive and the database",
	Long:  `Checks the raw response archive in object storage and the vehicle tables in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the raw response archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the vehicle tables against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCmd, schemaCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the archive folder when missing")
}

func runIntegrityChecks(cmd *cobra.Command, withStorage, withSchema bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbDep, storageDep := skip, skip
	if withSchema {
		dbDep = required
	}
	if withStorage {
		storageDep = required
	}
	d, err := bootstrap(ctx, dbDep, storageDep)
	if err != nil {
		return err
	}
	defer d.sync()

	svc := integrity.NewService(d.client, d.cfg.Storage, d.db, d.log)
	report := make(map[string]any)
	healthy := true

	if withStorage {
		storageReport, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}
		if !storageReport.PrefixExists && fixFlag {
			if err := svc.FixStorage(ctx); err != nil {
				return fmt.Errorf("failed to fix storage: %w", err)
			}
			storageReport.PrefixExists = true
		}
		if len(storageReport.Incomplete) > 0 {
			d.log.Warn("Archived vehicles without primary response", zap.Strings("vins", storageReport.Incomplete))
			healthy = false
		}
		report["storage"] = storageReport
	}

	if withSchema {
		schemaReport, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if !schemaReport.Matched {
			d.log.Warn("Schema drift detected, run migrate")
			healthy = false
		}
		report["schema"] = schemaReport
	}

	if err := writeOutput(cmd.OutOrStdout(), formatJSON, report); err != nil {
		return err
	}
	if !healthy {
		return fmt.Errorf("integrity checks found problems")
	}
	return nil
}
