package reconcile

// MergeResult is the outcome of merging two configuration fragments.
type MergeResult struct {
	// Values holds the merged canonical values.
	Values map[string]any

	// FromPrimary lists fields whose final value came from the primary fragment.
	FromPrimary []string

	// FromSecondary lists fields whose final value came from the secondary fragment.
	// Fields present in both but kept from primary are not listed.
	FromSecondary []string
}

// Merge combines a primary and a secondary fragment.
//
// The primary fragment is the base. A secondary value is taken only when the primary
// fragment lacks the field, or when the field is listed in authoritative, in which case
// the secondary value replaces the primary one. Neither input is modified.
func Merge(primary, secondary Fragment, authoritative []string) MergeResult {
	auth := make(map[string]struct{}, len(authoritative))
	for _, name := range authoritative {
		auth[name] = struct{}{}
	}

	values := make(map[string]any, len(primary.Values)+len(secondary.Values))
	for k, v := range primary.Values {
		values[k] = v
	}

	taken := make(map[string]struct{})
	var fromSecondary []string
	for _, name := range secondary.Populated {
		v, ok := secondary.Values[name]
		if !ok {
			continue
		}
		_, isAuth := auth[name]
		if primary.Has(name) && !isAuth {
			continue
		}
		values[name] = v
		taken[name] = struct{}{}
		fromSecondary = append(fromSecondary, name)
	}

	fromPrimary := make([]string, 0, len(primary.Populated))
	for _, name := range primary.Populated {
		if _, replaced := taken[name]; replaced {
			continue
		}
		fromPrimary = append(fromPrimary, name)
	}

	return MergeResult{
		Values:        values,
		FromPrimary:   fromPrimary,
		FromSecondary: fromSecondary,
	}
}
