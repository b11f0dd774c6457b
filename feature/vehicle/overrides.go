package vehicle

import (
	"fmt"
	"sort"

	"vehicle-reconciler/core/coerce"
	"vehicle-reconciler/feature/vehicle/models"
)

// ApplyOverrides sets operator-supplied values on a copy of result.
//
// Every key must be a canonical identity or configuration field and every value must
// coerce to that field's kind. Overridden fields move to FieldsManuallyOverridden.
// Derived fields are recomputed from the updated configuration and confidence is
// classified again. The input result is not modified.
func ApplyOverrides(result *models.Result, overrides map[string]any) (*models.Result, error) {
	if result == nil {
		return nil, fmt.Errorf("apply overrides: nil result")
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	identity := models.IdentityValues(result.Identity)
	cfg := models.ConfigurationValues(result.Configuration)
	for _, name := range result.Metadata.FieldsDerived {
		delete(cfg, name)
	}

	for _, name := range names {
		kind, ok := models.KindOf(name)
		if !ok {
			return nil, &ValidationError{
				Op:     "override",
				Field:  name,
				Value:  fmt.Sprint(overrides[name]),
				Reason: "not a canonical field",
				Err:    ErrUnknownField,
			}
		}
		v := coerce.Coerce(overrides[name], kind)
		if v == nil {
			return nil, &ValidationError{
				Op:     "override",
				Field:  name,
				Value:  fmt.Sprint(overrides[name]),
				Reason: fmt.Sprintf("cannot be read as %s", kind),
				Err:    ErrInvalidValue,
			}
		}
		if models.IsIdentityField(name) {
			identity[name] = v
		} else {
			cfg[name] = v
		}
	}

	id, err := models.DecodeIdentity(identity)
	if err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}
	conf, err := models.DecodeConfiguration(cfg)
	if err != nil {
		return nil, fmt.Errorf("apply overrides: %w", err)
	}
	conf, derived := DeriveFields(conf)

	meta := result.Metadata
	meta.FieldsFromPrimary = without(meta.FieldsFromPrimary, names)
	meta.FieldsFromSecondary = without(meta.FieldsFromSecondary, names)
	meta.FieldsDerived = derived
	meta.FieldsManuallyOverridden = union(meta.FieldsManuallyOverridden, names)
	meta.SourcesUsed = sourcesUsed(meta)
	meta.Confidence = ConfidencePolicy.Classify(meta.Populated())

	return &models.Result{
		VIN:           result.VIN,
		Identity:      id,
		Configuration: conf,
		Metadata:      meta,
	}, nil
}

// without returns list minus the names in drop, preserving order.
func without(list, drop []string) []string {
	skip := make(map[string]struct{}, len(drop))
	for _, n := range drop {
		skip[n] = struct{}{}
	}
	out := make([]string, 0, len(list))
	for _, n := range list {
		if _, ok := skip[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// union appends the names in add that list does not already hold.
func union(list, add []string) []string {
	out := append(make([]string, 0, len(list)+len(add)), list...)
	seen := make(map[string]struct{}, len(list))
	for _, n := range list {
		seen[n] = struct{}{}
	}
	for _, n := range add {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
