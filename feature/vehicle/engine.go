package vehicle

import (
	"fmt"
	"strings"
	"time"

	"vehicle-reconciler/core/reconcile"
	"vehicle-reconciler/feature/vehicle/mapping"
	"vehicle-reconciler/feature/vehicle/models"
)

// SecondaryAuthoritative lists the fields where the fuel-economy registry replaces decoder values.
var SecondaryAuthoritative = []string{
	models.FieldMPGCity,
	models.FieldMPGHighway,
}

// Engine reconciles provider responses into canonical vehicle records.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	// Primary describes the identifier-decode provider.
	Primary reconcile.Adapter
	// Secondary describes the fuel-economy provider.
	Secondary reconcile.Adapter
	// Authoritative lists configuration fields where the secondary value wins.
	Authoritative []string
	// Policy classifies the completeness of the merged record.
	Policy reconcile.ConfidencePolicy
	// Now stamps Metadata.DecodedAt.
	Now func() time.Time
}

// NewEngine returns an engine wired with the shipped provider tables.
func NewEngine() *Engine {
	return &Engine{
		Primary:       mapping.Primary{},
		Secondary:     mapping.Secondary{},
		Authoritative: SecondaryAuthoritative,
		Policy:        ConfidencePolicy,
		Now:           func() time.Time { return time.Now().UTC() },
	}
}

var defaultEngine = NewEngine()

// Reconcile runs the default engine. See Engine.Reconcile.
func Reconcile(vin string, primary, secondary reconcile.RawResponse) (*models.Result, error) {
	return defaultEngine.Reconcile(vin, primary, secondary)
}

// Reconcile merges a decode response and an optional fuel-economy response for vin.
//
// The only error returned for caller input is a *ValidationError for a malformed VIN.
// Provider data problems never fail the call: a primary response with no usable field
// yields an all-null record with low confidence, and an unusable secondary response is
// simply left out of SourcesUsed.
func (e *Engine) Reconcile(vin string, primary, secondary reconcile.RawResponse) (*models.Result, error) {
	if err := ValidateVIN(vin); err != nil {
		return nil, err
	}

	a := reconcile.ExtractSource(primary, e.Primary)
	b := reconcile.Extraction{
		Source:        e.Secondary.Name(),
		Identity:      reconcile.NewFragment(),
		Configuration: reconcile.NewFragment(),
	}
	if secondary != nil && !a.Empty() {
		b = reconcile.ExtractSource(secondary, e.Secondary)
		if !sameVehicle(a.Identity, b.Identity) {
			b.Configuration = reconcile.NewFragment()
		}
	}

	merged := reconcile.Merge(a.Configuration, b.Configuration, e.Authoritative)

	identity, err := models.DecodeIdentity(a.Identity.Values)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", vin, err)
	}
	cfg, err := models.DecodeConfiguration(merged.Values)
	if err != nil {
		return nil, fmt.Errorf("reconcile %s: %w", vin, err)
	}
	cfg, derived := DeriveFields(cfg)

	meta := models.Metadata{
		SourcesUsed:              []reconcile.Source{},
		DecodedAt:                e.now(),
		FieldsFromPrimary:        append(append([]string{}, a.Identity.Populated...), merged.FromPrimary...),
		FieldsFromSecondary:      append([]string{}, merged.FromSecondary...),
		FieldsDerived:            derived,
		FieldsManuallyOverridden: []string{},
		CheckDigitValid:          CheckDigitValid(vin),
	}
	meta.SourcesUsed = sourcesUsed(meta)
	meta.Confidence = e.Policy.Classify(meta.Populated())

	return &models.Result{
		VIN:           vin,
		Identity:      identity,
		Configuration: cfg,
		Metadata:      meta,
	}, nil
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now()
}

// sourcesUsed lists the providers that contributed at least one field.
func sourcesUsed(meta models.Metadata) []reconcile.Source {
	used := []reconcile.Source{}
	if len(meta.FieldsFromPrimary) > 0 {
		used = append(used, reconcile.SourcePrimary)
	}
	if len(meta.FieldsFromSecondary) > 0 {
		used = append(used, reconcile.SourceSecondary)
	}
	return used
}

// sameVehicle reports whether two identity fragments can describe the same vehicle.
// Only fields present on both sides are compared.
func sameVehicle(a, b reconcile.Fragment) bool {
	for _, name := range []string{models.FieldModelYear, models.FieldMakeName} {
		av, aok := a.Values[name]
		bv, bok := b.Values[name]
		if !aok || !bok {
			continue
		}
		as, aIsString := av.(string)
		bs, bIsString := bv.(string)
		if aIsString && bIsString {
			if !strings.EqualFold(as, bs) {
				return false
			}
			continue
		}
		if av != bv {
			return false
		}
	}
	return true
}
