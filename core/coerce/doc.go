// Package coerce converts untyped provider values into typed canonical values.
//
// Vehicle-data providers return loosely typed payloads: numbers arrive as strings with
// unit suffixes ("5620 lb"), ranges ("6001 - 7000 lb"), comma lists, or the marker
// "Not Applicable". Every rule for turning such a value into a string, integer, float or
// boolean lives here so that no caller special-cases provider quirks.
//
// # Contract
//
// Coercion never panics and never returns an error. Anything that cannot be parsed, and
// every sentinel (nil, "", "Not Applicable"), yields nil. Booleans keep the distinction
// between unknown (nil) and an explicit negative (false).
//
// # Usage
//
//	coerce.Coerce("26001 - 7000 lb", coerce.KindInt) // 26001
//	coerce.Coerce("Not Applicable", coerce.KindString) // nil
//	coerce.Bool("")                                    // nil
package coerce
