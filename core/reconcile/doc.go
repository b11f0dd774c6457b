// Package reconcile provides the provider-agnostic machinery for turning raw provider
// payloads into canonical records.
//
// # Architecture
//
// The package has four parts, each a pure function over its inputs:
//
//  1. Lookup: resolves a canonical field against a raw payload using an ordered list of
//     candidate keys (exact key, case-insensitive key, then aliases in declared order).
//
//  2. Extract: applies a mapping Table to a payload, coercing every matched value through
//     core/coerce, and returns a Fragment with the populated field names in table order.
//
//  3. Merge: combines a primary and a secondary Fragment. Primary wins, except for fields the
//     caller declares secondary-authoritative. The result records which fields were actually
//     taken from each side.
//
// 4. ConfidencePolicy: classifies a set of populated field names as high, medium or low.
//
// Provider-specific knowledge lives in Adapters (see feature/vehicle/mapping), which only
// supply mapping tables.
//
// # Usage Example
//
//	primary := reconcile.ExtractSource(raw, mapping.Primary{})
//	secondary := reconcile.ExtractSource(rawFuel, mapping.Secondary{})
//	merged := reconcile.Merge(primary.Configuration, secondary.Configuration, []string{"mpgCity", "mpgHighway"})
//
// Nothing in this package keeps state between calls, so it is safe for concurrent use.
package reconcile
