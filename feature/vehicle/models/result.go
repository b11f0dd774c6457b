package models

import (
	"time"

	"vehicle-reconciler/core/reconcile"
)

// Metadata is the audit trail of a reconciled record.
// Every populated field appears in exactly one of the Fields* lists.
type Metadata struct {
	Confidence               reconcile.Confidence `json:"confidence"`
	SourcesUsed              []reconcile.Source   `json:"sourcesUsed"`
	DecodedAt                time.Time            `json:"decodedAt"`
	FieldsFromPrimary        []string             `json:"fieldsFromPrimary"`
	FieldsFromSecondary      []string             `json:"fieldsFromSecondary"`
	FieldsDerived            []string             `json:"fieldsDerived"`
	FieldsManuallyOverridden []string             `json:"fieldsManuallyOverridden"`
	// CheckDigitValid reports whether position 9 of the VIN matches the computed check digit.
	CheckDigitValid bool `json:"checkDigitValid"`
}

// SourceOf returns where the value of a canonical field came from.
func (m Metadata) SourceOf(field string) (reconcile.Source, bool) {
	lists := []struct {
		source reconcile.Source
		names  []string
	}{
		{reconcile.SourceManual, m.FieldsManuallyOverridden},
		{reconcile.SourcePrimary, m.FieldsFromPrimary},
		{reconcile.SourceSecondary, m.FieldsFromSecondary},
		{reconcile.SourceDerived, m.FieldsDerived},
	}
	for _, l := range lists {
		for _, n := range l.names {
			if n == field {
				return l.source, true
			}
		}
	}
	return "", false
}

// Populated returns every field name carried by the record, in source order.
func (m Metadata) Populated() []string {
	out := make([]string, 0, len(m.FieldsFromPrimary)+len(m.FieldsFromSecondary)+len(m.FieldsDerived)+len(m.FieldsManuallyOverridden))
	out = append(out, m.FieldsFromPrimary...)
	out = append(out, m.FieldsFromSecondary...)
	out = append(out, m.FieldsDerived...)
	out = append(out, m.FieldsManuallyOverridden...)
	return out
}

// Result is the canonical output of one reconciliation.
type Result struct {
	VIN           string        `json:"vin"`
	Identity      Identity      `json:"identity"`
	Configuration Configuration `json:"configuration"`
	Metadata      Metadata      `json:"metadata"`
}
