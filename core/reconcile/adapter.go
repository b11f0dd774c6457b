package reconcile

// Adapter describes one provider's field layout.
// Each provider (e.g., the VIN decoder, the fuel-economy registry) implements this with
// static mapping tables; extraction itself is shared.
type Adapter interface {
	// Name returns the source this adapter describes.
	Name() Source

	// IdentityTable maps provider fields to base-vehicle identity fields.
	IdentityTable() Table

	// ConfigurationTable maps provider fields to configuration fields.
	ConfigurationTable() Table
}

// Extraction is the result of running both tables of an adapter over one response.
type Extraction struct {
	// Source is the adapter that produced the extraction.
	Source Source

	// Identity holds the identity fields found in the response.
	Identity Fragment

	// Configuration holds the configuration fields found in the response.
	Configuration Fragment
}

// ExtractSource runs the identity and configuration tables of an adapter over raw.
// A nil response yields an empty extraction.
func ExtractSource(raw RawResponse, adapter Adapter) Extraction {
	return Extraction{
		Source:        adapter.Name(),
		Identity:      Extract(raw, adapter.IdentityTable()),
		Configuration: Extract(raw, adapter.ConfigurationTable()),
	}
}

// Populated returns identity then configuration field names.
func (e Extraction) Populated() []string {
	out := make([]string, 0, e.Identity.Len()+e.Configuration.Len())
	out = append(out, e.Identity.Populated...)
	out = append(out, e.Configuration.Populated...)
	return out
}

// Empty reports whether the source yielded no usable field.
func (e Extraction) Empty() bool {
	return e.Identity.Len() == 0 && e.Configuration.Len() == 0
}
