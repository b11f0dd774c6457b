package reconcile

import (
	"sort"

	"vehicle-reconciler/core/coerce"
)

// RawResponse is an untyped provider payload keyed by provider field name.
// The engine treats it as read-only.
type RawResponse map[string]any

// FieldMapping binds one canonical field to a provider field and its known spelling variants.
type FieldMapping struct {
	// Canonical is the provider-independent field name (e.g., "grossVehicleWeightRating").
	Canonical string

	// Field is the provider's primary key for this field (e.g., "GVWR").
	Field string

	// Aliases are alternative keys, consulted in declared order after Field.
	Aliases []string

	// Kind is the type the raw value is coerced into.
	Kind coerce.Kind
}

// Table is an ordered list of field mappings for one provider and one record type.
type Table []FieldMapping

// Names returns the canonical names of the table in declared order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, m := range t {
		names = append(names, m.Canonical)
	}
	return names
}

// Find returns the mapping for a canonical field name.
func (t Table) Find(canonical string) (FieldMapping, bool) {
	for _, m := range t {
		if m.Canonical == canonical {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// Fragment is a partial canonical record produced from one source.
type Fragment struct {
	// Values holds coerced, non-nil values keyed by canonical name.
	Values map[string]any

	// Populated lists the canonical names present in Values, in table order.
	Populated []string
}

// NewFragment returns an empty fragment.
func NewFragment() Fragment {
	return Fragment{Values: make(map[string]any)}
}

// Has reports whether the fragment carries a value for the canonical name.
func (f Fragment) Has(name string) bool {
	_, ok := f.Values[name]
	return ok
}

// Len returns the number of populated fields.
func (f Fragment) Len() int {
	return len(f.Populated)
}

// Source identifies where a canonical value came from.
type Source string

const (
	// SourcePrimary is the identifier-decode provider.
	SourcePrimary Source = "primary"
	// SourceSecondary is the fuel-economy provider.
	SourceSecondary Source = "secondary"
	// SourceDerived marks values computed from other canonical values.
	SourceDerived Source = "derived"
	// SourceManual marks values set by a downstream override.
	SourceManual Source = "manual"
)

// Confidence is the coarse completeness level of a reconciled record.
type Confidence string

const (
	// ConfidenceHigh means all critical fields and most important fields are present.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium means most critical and half the important fields are present.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow covers everything else.
	ConfidenceLow Confidence = "low"
)

// rank orders confidence levels from low to high.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether c is the same level as other or higher.
func (c Confidence) AtLeast(other Confidence) bool {
	return c.rank() >= other.rank()
}

// sortedKeys returns the response keys in byte order so case-insensitive scans are deterministic.
func sortedKeys(raw RawResponse) []string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
