package cmd

import (
	"context"
	"fmt"
	"strings"

	"vehicle-reconciler/feature/vehicle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchVINs   []string
	batchLimit  int
	batchSave   bool
	batchOutput string
)

// batchCmd replays archived raw responses through the engine.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Reconcile archived vehicles again",
	Long: `Reconciles every VIN archived in object storage (or the ones given with --vins)
from its stored raw responses, using the configured worker count and rate.
Manual overrides on stored records are kept.

Examples:
  # Report only
  batch

  # Persist the first 100 results
  batch --limit 100 --save`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchVINs, "vins", nil, "Only these VINs (comma separated)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "Process at most this many VINs (0 = all)")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Persist every result (requires a database)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", formatJSON, "Report format: json or yaml")

	RootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if batchLimit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	dbDep := optional
	if batchSave {
		dbDep = required
	}
	d, err := bootstrap(ctx, dbDep, required)
	if err != nil {
		return err
	}
	defer d.sync()
	if err := d.migrate(); err != nil {
		return err
	}

	vins := make([]string, 0, len(batchVINs))
	for _, v := range batchVINs {
		v = strings.ToUpper(strings.TrimSpace(v))
		if err := vehicle.ValidateVIN(v); err != nil {
			return err
		}
		vins = append(vins, v)
	}

	svc := vehicle.NewFeature(d.client, d.cfg.Storage, d.db, d.cfg.Reconcile, d.log).Service()
	report, err := svc.ReplayBatch(ctx, vehicle.BatchOptions{VINs: vins, Limit: batchLimit, Save: batchSave})
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		d.log.Warn("Some vehicles failed", zap.Int("failed", report.Failed))
	}
	return writeOutput(cmd.OutOrStdout(), batchOutput, report)
}
