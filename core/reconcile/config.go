package reconcile

// Config tunes the service around the reconciliation engine.
type Config struct {
	// Workers bounds concurrent reconciliations in batch runs.
	Workers int `mapstructure:"workers" default:"4"`
	// RatePerSecond throttles batch reconciliations. Zero means unlimited.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0"`
	// Archive stores raw responses and results in object storage.
	Archive bool `mapstructure:"archive" default:"true"`
	// RequireCheckDigit rejects VINs whose position-9 check digit does not match.
	RequireCheckDigit bool `mapstructure:"require_check_digit" default:"false"`
}
