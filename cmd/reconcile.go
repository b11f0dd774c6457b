package cmd

import (
	"context"
	"strings"

	"vehicle-reconciler/feature/vehicle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	primaryFile   string
	secondaryFile string
	overridesFile string
	outputFormat  string
	saveResult    bool
	archiveRaw    bool
)

// reconcileCmd reconciles one VIN from local provider responses.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <vin>",
	Short: "Reconcile one vehicle from local provider responses",
	Long: `Reconcile a VIN decode response and an optional fuel-economy response into one
canonical vehicle record and print it.

Examples:
  # Primary response only
  reconcile 1FTBW9CK5PKA12345 --primary decode.json

  # Both providers, manual values on top, YAML output
  reconcile 1FTBW9CK5PKA12345 --primary decode.json --secondary economy.json \
    --overrides overrides.yaml --output yaml

  # Persist the result and archive the raw responses
  reconcile 1FTBW9CK5PKA12345 --primary decode.json --save --archive`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&primaryFile, "primary", "", "VIN decode response (JSON or YAML)")
	reconcileCmd.Flags().StringVar(&secondaryFile, "secondary", "", "Fuel-economy response (JSON or YAML)")
	reconcileCmd.Flags().StringVar(&overridesFile, "overrides", "", "Manual field values keyed by canonical name (JSON or YAML)")
	reconcileCmd.Flags().StringVarP(&outputFormat, "output", "o", formatJSON, "Output format: json or yaml")
	reconcileCmd.Flags().BoolVar(&saveResult, "save", false, "Persist the result (requires a database)")
	reconcileCmd.Flags().BoolVar(&archiveRaw, "archive", false, "Archive the raw responses (requires object storage)")
	_ = reconcileCmd.MarkFlagRequired("primary")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	vin := strings.ToUpper(strings.TrimSpace(args[0]))

	primary, err := readRaw(primaryFile)
	if err != nil {
		return err
	}
	secondary, err := readRaw(secondaryFile)
	if err != nil {
		return err
	}
	overrides, err := readDocument(overridesFile)
	if err != nil {
		return err
	}

	dbDep, storageDep := skip, skip
	if saveResult {
		dbDep = required
	}
	if archiveRaw {
		storageDep = required
	}
	d, err := bootstrap(ctx, dbDep, storageDep)
	if err != nil {
		return err
	}
	defer d.sync()
	if err := d.migrate(); err != nil {
		return err
	}

	rcfg := d.cfg.Reconcile
	rcfg.Archive = archiveRaw
	feature := vehicle.NewFeature(d.client, d.cfg.Storage, d.db, rcfg, d.log)
	svc := feature.Service()

	result, err := svc.Reconcile(ctx, vehicle.ReconcileRequest{VIN: vin, Primary: primary, Secondary: secondary, Save: saveResult})
	if err != nil {
		return err
	}
	if len(overrides) > 0 {
		if saveResult {
			result, err = svc.Override(ctx, vin, overrides)
		} else {
			result, err = vehicle.ApplyOverrides(result, overrides)
		}
		if err != nil {
			return err
		}
	}

	d.log.Debug("Reconciled", zap.String("vin", vin), zap.String("confidence", string(result.Metadata.Confidence)))
	return writeOutput(cmd.OutOrStdout(), outputFormat, result)
}
