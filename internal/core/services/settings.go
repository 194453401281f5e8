package services

import (
	"fmt"

	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStoreBackend = "store.backend"
	keyCurrency     = "currency.default"
	keyTaxRate      = "tax.rate"
	keyEventLimit   = "events.limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Keys missing from the
// config file fall back to the defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		StoreBackend: s.getBackend(defaults.StoreBackend),
		Currency:     s.getString(keyCurrency, defaults.Currency),
		TaxRate:      s.getFloat(keyTaxRate, defaults.TaxRate),
		EventLimit:   s.getInt(keyEventLimit, defaults.EventLimit),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyStoreBackend, settings.StoreBackend.String()); err != nil {
		return fmt.Errorf("save store backend: %w", err)
	}
	if err := s.configStore.Set(keyCurrency, settings.Currency); err != nil {
		return fmt.Errorf("save currency: %w", err)
	}
	if err := s.configStore.Set(keyTaxRate, settings.TaxRate); err != nil {
		return fmt.Errorf("save tax rate: %w", err)
	}
	if err := s.configStore.Set(keyEventLimit, settings.EventLimit); err != nil {
		return fmt.Errorf("save event limit: %w", err)
	}

	return nil
}

// SetStoreBackend selects the record store implementation used on the
// next start.
func (s *SettingsService) SetStoreBackend(backend domain.StoreBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBackend, backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.StoreBackend = backend
	return s.Save(settings)
}

// SetCurrency updates the display currency code.
func (s *SettingsService) SetCurrency(code string) error {
	if code == "" {
		return fmt.Errorf("currency code must not be empty")
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Currency = code
	return s.Save(settings)
}

// SetTaxRate updates the quote tax rate.
func (s *SettingsService) SetTaxRate(rate float64) error {
	if rate < 0 || rate >= 1 {
		return fmt.Errorf("%w: %g", domain.ErrInvalidTaxRate, rate)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.TaxRate = rate
	return s.Save(settings)
}

// SetEventLimit updates the default activity listing size.
func (s *SettingsService) SetEventLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidEventLimit, limit)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.EventLimit = limit
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// getString returns the configured string or the fallback when unset.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

// getFloat returns the configured number or the fallback when unset.
func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return fallback
}

// getInt returns the configured integer or the fallback when unset.
func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return fallback
}

// getBackend returns the configured backend, falling back when the
// value is missing or unrecognised.
func (s *SettingsService) getBackend(fallback domain.StoreBackend) domain.StoreBackend {
	backend := domain.StoreBackend(s.configStore.GetString(keyStoreBackend))
	if !backend.IsValid() {
		return fallback
	}
	return backend
}
