package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the store backend, currency, tax rate and
activity listing size.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend [name]",
	Short: "Set the record store backend",
	Long: `Set the record store backend used on the next start.

Available backends:
  seed    - Fixture dataset rebuilt on every call; writes discarded (default)
  memory  - Kept in process memory for this run only
  sqlite  - Kept across runs in a local database`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBackend,
}

var settingsCurrencyCmd = &cobra.Command{
	Use:   "currency [code]",
	Short: "Set the display currency",
	Long:  `Set the display currency code, e.g. USD, EUR or GBP.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsCurrency,
}

var settingsTaxCmd = &cobra.Command{
	Use:   "tax [rate]",
	Short: "Set the quote tax rate",
	Long:  `Set the flat tax rate used for order quotes, at least 0 and below 1.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTax,
}

var settingsEventsCmd = &cobra.Command{
	Use:   "events [limit]",
	Short: "Set the activity listing size",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsEvents,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	settingsCmd.AddCommand(settingsCurrencyCmd)
	settingsCmd.AddCommand(settingsTaxCmd)
	settingsCmd.AddCommand(settingsEventsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Store]")
	cmd.Printf("  Backend: %s\n", settings.StoreBackend.Description())
	cmd.Println()

	cmd.Println("[Pricing]")
	cmd.Printf("  Currency: %s\n", settings.Currency)
	cmd.Printf("  Tax rate: %.2f\n", settings.TaxRate)
	cmd.Println()

	cmd.Println("[Activity]")
	cmd.Printf("  Event limit: %d\n", settings.EventLimit)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend := domain.StoreBackend(args[0])
	if err := settingsService.SetStoreBackend(backend); err != nil {
		return fmt.Errorf("failed to set store backend: %w", err)
	}

	cmd.Printf("Store backend set to: %s\n", backend.Description())
	return nil
}

func runSettingsCurrency(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	code := args[0]
	if err := settingsService.SetCurrency(code); err != nil {
		return fmt.Errorf("failed to set currency: %w", err)
	}

	cmd.Printf("Currency set to: %s (%s)\n", code, domain.FormatCurrency(1, code))
	return nil
}

func runSettingsTax(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q: want a number", args[0])
	}
	if err := settingsService.SetTaxRate(rate); err != nil {
		return fmt.Errorf("failed to set tax rate: %w", err)
	}

	cmd.Printf("Tax rate set to: %.2f\n", rate)
	return nil
}

func runSettingsEvents(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	limit, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid limit %q: want an integer", args[0])
	}
	if err := settingsService.SetEventLimit(limit); err != nil {
		return fmt.Errorf("failed to set event limit: %w", err)
	}

	cmd.Printf("Event limit set to: %d\n", limit)
	return nil
}
