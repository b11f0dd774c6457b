package reconcile

// ConfidencePolicy defines the field sets a record is judged by.
type ConfidencePolicy struct {
	// Critical fields must all be present for high confidence.
	Critical []string

	// Important fields raise confidence when most are present.
	Important []string
}

// Classify returns the confidence level for a set of populated field names.
//
//   - high:   every critical field and at least 75% of important fields
//   - medium: at least 75% of critical fields and at least 50% of important fields,
//     or every critical field regardless of important fields
//   - low:    otherwise
//
// Only presence counts; values are never inspected.
func (p ConfidencePolicy) Classify(populated []string) Confidence {
	present := make(map[string]struct{}, len(populated))
	for _, name := range populated {
		present[name] = struct{}{}
	}

	critical := ratio(p.Critical, present)
	important := ratio(p.Important, present)

	switch {
	case critical == 1.0 && important >= 0.75:
		return ConfidenceHigh
	case critical == 1.0, critical >= 0.75 && important >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ratio is the fraction of set found in present. An empty set counts as complete.
func ratio(set []string, present map[string]struct{}) float64 {
	if len(set) == 0 {
		return 1.0
	}
	found := 0
	for _, name := range set {
		if _, ok := present[name]; ok {
			found++
		}
	}
	return float64(found) / float64(len(set))
}
