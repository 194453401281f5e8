package driving

import "github.com/caopengau/aiready-skills/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetStoreBackend selects the record store implementation used on
	// the next start.
	SetStoreBackend(backend domain.StoreBackend) error

	// SetCurrency updates the display currency code.
	SetCurrency(code string) error

	// SetTaxRate updates the quote tax rate.
	SetTaxRate(rate float64) error

	// SetEventLimit updates the default activity listing size.
	SetEventLimit(limit int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Validate checks if current settings are usable.
	Validate() error
}
