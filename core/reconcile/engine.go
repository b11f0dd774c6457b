package reconcile

import (
	"strings"

	"vehicle-reconciler/core/coerce"
)

// Lookup resolves the raw value for a mapping.
//
// Resolution order: the exact Field key, then a case-insensitive scan over all response
// keys, then each alias in declared order (exact, then case-insensitive). The first key
// that exists wins even if its value later coerces to nil; later candidates are not consulted.
// It returns the value, the key that matched, and whether any key matched.
func Lookup(raw RawResponse, m FieldMapping) (any, string, bool) {
	return lookup(raw, sortedKeys(raw), m)
}

func lookup(raw RawResponse, keys []string, m FieldMapping) (any, string, bool) {
	candidates := make([]string, 0, 1+len(m.Aliases))
	if m.Field != "" {
		candidates = append(candidates, m.Field)
	}
	candidates = append(candidates, m.Aliases...)

	for _, name := range candidates {
		if v, ok := raw[name]; ok {
			return v, name, true
		}
		for _, k := range keys {
			if strings.EqualFold(k, name) {
				return raw[k], k, true
			}
		}
	}
	return nil, "", false
}

// Extract applies a mapping table to a raw response.
// Each matched value is coerced with the mapping's kind; only non-nil results are kept.
// Extract knows nothing about which provider produced raw.
func Extract(raw RawResponse, table Table) Fragment {
	frag := NewFragment()
	if len(raw) == 0 {
		return frag
	}

	keys := sortedKeys(raw)
	for _, m := range table {
		if frag.Has(m.Canonical) {
			continue
		}
		v, _, ok := lookup(raw, keys, m)
		if !ok {
			continue
		}
		if c := coerce.Coerce(v, m.Kind); c != nil {
			frag.Values[m.Canonical] = c
			frag.Populated = append(frag.Populated, m.Canonical)
		}
	}
	return frag
}
