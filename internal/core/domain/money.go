package domain

import "fmt"

// Currency and tax defaults.
const (
	// DefaultCurrency is the currency code assumed when none is given.
	DefaultCurrency = "USD"

	// DefaultTaxRate is the flat rate applied when no rate is supplied.
	DefaultTaxRate = 0.08
)

// currencySymbols maps supported currency codes to display symbols.
// Codes not listed here fall back to the dollar sign.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCurrency renders amount with the symbol for the given currency
// code, fixed to two decimal places. Unknown codes fall back to "$".
func FormatCurrency(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Tax returns the tax due on amount at the given rate.
func Tax(amount, rate float64) float64 {
	return amount * rate
}
