package domain

import "fmt"

// Quote is the priced breakdown of a single order.
type Quote struct {
	// Order is the order being quoted.
	Order Order

	// Currency is the display currency code.
	Currency string

	// TaxRate is the rate applied to the order amount.
	TaxRate float64

	// TaxAmount is Order.Amount times TaxRate.
	TaxAmount float64

	// Total is Order.Amount plus TaxAmount.
	Total float64
}

// NewQuote prices an order at the given rate.
func NewQuote(order Order, currency string, rate float64) Quote {
	tax := Tax(order.Amount, rate)
	return Quote{
		Order:     order,
		Currency:  currency,
		TaxRate:   rate,
		TaxAmount: tax,
		Total:     order.Amount + tax,
	}
}

// String renders the quote on one line,
// e.g. "Laptop: $999.99 + $80.00 tax = $1079.99".
func (q Quote) String() string {
	return fmt.Sprintf("%s: %s + %s tax = %s",
		q.Order.Product,
		FormatCurrency(q.Order.Amount, q.Currency),
		FormatCurrency(q.TaxAmount, q.Currency),
		FormatCurrency(q.Total, q.Currency))
}
