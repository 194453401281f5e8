package domain

const unknownDescription = "Unknown"

// StoreBackend selects which record store implementation backs the
// services.
type StoreBackend string

// Available store backends.
const (
	// StoreBackendSeed rebuilds the fixture dataset on every call and
	// quietly discards writes. This is the default.
	StoreBackendSeed StoreBackend = "seed"

	// StoreBackendMemory keeps records in process memory for the life
	// of the run.
	StoreBackendMemory StoreBackend = "memory"

	// StoreBackendSQLite keeps records in a local SQLite database
	// across runs.
	StoreBackendSQLite StoreBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreBackendSeed, StoreBackendMemory, StoreBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StoreBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StoreBackend) Description() string {
	switch b {
	case StoreBackendSeed:
		return "Seed (fixture dataset, writes discarded)"
	case StoreBackendMemory:
		return "Memory (kept for this run only)"
	case StoreBackendSQLite:
		return "SQLite (kept across runs)"
	default:
		return unknownDescription
	}
}

// Settings captures the user-configurable application options.
type Settings struct {
	// StoreBackend selects the record store implementation.
	StoreBackend StoreBackend

	// Currency is the display currency code for amounts.
	Currency string

	// TaxRate is the flat rate used for order quotes.
	TaxRate float64

	// EventLimit caps how many activity events listings show by default.
	EventLimit int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		StoreBackend: StoreBackendSeed,
		Currency:     DefaultCurrency,
		TaxRate:      DefaultTaxRate,
		EventLimit:   20,
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if !s.StoreBackend.IsValid() {
		return ErrInvalidBackend
	}
	if s.TaxRate < 0 || s.TaxRate >= 1 {
		return ErrInvalidTaxRate
	}
	if s.EventLimit < 0 {
		return ErrInvalidEventLimit
	}
	return nil
}
