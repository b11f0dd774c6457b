package coerce

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the declared target type of a raw provider value.
type Kind string

const (
	// KindString trims and returns the value as text.
	KindString Kind = "string"
	// KindInt parses the first numeric component as an integer.
	KindInt Kind = "integer"
	// KindFloat parses the first numeric component as a float.
	KindFloat Kind = "float"
	// KindBool matches affirmative strings.
	KindBool Kind = "boolean"
)

// NotApplicable is the marker providers use for fields that do not apply to a vehicle.
const NotApplicable = "Not Applicable"

var (
	// componentSplit separates ranges ("6001 - 7000", "6001 to 7000") and lists ("1, 2, 3").
	componentSplit = regexp.MustCompile(`(?i)-|–|—|,|\bto\b`)
	// leadingNumber captures the first numeric run, skipping any non-numeric prefix.
	leadingNumber = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?|\.[0-9]+)`)
)

// Coerce converts a raw provider value into the declared kind.
// It returns nil for sentinels, absent values and anything it cannot parse,
// otherwise a string, int, float64 or bool.
func Coerce(raw any, kind Kind) any {
	switch kind {
	case KindString:
		if v := String(raw); v != nil {
			return *v
		}
	case KindInt:
		if v := Int(raw); v != nil {
			return *v
		}
	case KindFloat:
		if v := Float(raw); v != nil {
			return *v
		}
	case KindBool:
		if v := Bool(raw); v != nil {
			return *v
		}
	}
	return nil
}

// IsSentinel reports whether raw is one of the "no value" markers.
func IsSentinel(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return isSentinelText(v)
	case []byte:
		return isSentinelText(string(v))
	case *string:
		return v == nil || isSentinelText(*v)
	}
	return false
}

func isSentinelText(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, NotApplicable)
}

// String returns the trimmed text form of raw.
func String(raw any) *string {
	if IsSentinel(raw) {
		return nil
	}
	s, ok := text(raw)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if isSentinelText(s) {
		return nil
	}
	return &s
}

// Int returns the first integer component of raw.
// Floats are truncated toward zero; values outside the range of int are nil.
func Int(raw any) *int {
	f := Float(raw)
	if f == nil {
		return nil
	}
	if *f >= math.MaxInt || *f < math.MinInt {
		return nil
	}
	i := int(*f)
	return &i
}

// Float returns the first numeric component of raw.
func Float(raw any) *float64 {
	if IsSentinel(raw) {
		return nil
	}
	if f, ok := number(raw); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	s, ok := text(raw)
	if !ok {
		return nil
	}
	return parseLeading(s)
}

// Bool returns true for "yes"/"true", false for any other value and nil when absent.
func Bool(raw any) *bool {
	if IsSentinel(raw) {
		return nil
	}
	if b, ok := raw.(bool); ok {
		return &b
	}
	if p, ok := raw.(*bool); ok {
		if p == nil {
			return nil
		}
		b := *p
		return &b
	}
	s, ok := text(raw)
	if !ok {
		return nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	b := s == "yes" || s == "true"
	return &b
}

func parseLeading(s string) *float64 {
	first := componentSplit.Split(s, 2)[0]
	m := leadingNumber.FindStringSubmatch(first)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &f
}

// number extracts native numeric values.
func number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case interface{ Float64() (float64, error) }:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// text renders scalars as strings. Composite values are rejected.
func text(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	if f, ok := number(raw); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}
