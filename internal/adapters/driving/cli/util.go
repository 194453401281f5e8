package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

var utilCmd = &cobra.Command{
	Use:   "util",
	Short: "Utility helpers",
	Long:  `Standalone helpers for emails, currency formatting, tax and IDs.`,
}

var utilEmailCmd = &cobra.Command{
	Use:   "email [address]",
	Short: "Check an email address",
	Args:  cobra.ExactArgs(1),
	RunE:  runUtilEmail,
}

var utilCurrencyCmd = &cobra.Command{
	Use:   "currency [amount] [code]",
	Short: "Format an amount as currency",
	Long:  `Format an amount with the symbol for the given currency code. Unknown codes fall back to the dollar sign.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runUtilCurrency,
}

var utilTaxCmd = &cobra.Command{
	Use:   "tax [amount] [rate]",
	Short: "Calculate tax on an amount",
	Long:  `Calculate tax on an amount. Without a rate the default rate applies.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runUtilTax,
}

var utilIDCmd = &cobra.Command{
	Use:   "id [value]",
	Short: "Check an ID",
	Long:  `Check that a value is a positive integer ID. Anything else, fractions included, is invalid.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUtilID,
}

func init() {
	utilCmd.AddCommand(utilEmailCmd)
	utilCmd.AddCommand(utilCurrencyCmd)
	utilCmd.AddCommand(utilTaxCmd)
	utilCmd.AddCommand(utilIDCmd)
	rootCmd.AddCommand(utilCmd)
}

func runUtilEmail(cmd *cobra.Command, args []string) error {
	address := args[0]

	if domain.ValidEmail(address) {
		cmd.Printf("%s is valid\n", address)
	} else {
		cmd.Printf("%s is invalid\n", address)
	}
	return nil
}

func runUtilCurrency(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: want a number", args[0])
	}
	code := args[1]

	cmd.Println(domain.FormatCurrency(amount, code))
	return nil
}

func runUtilTax(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: want a number", args[0])
	}

	rate := domain.DefaultTaxRate
	if len(args) > 1 {
		rate, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid rate %q: want a number", args[1])
		}
	}

	cmd.Printf("%.2f\n", domain.Tax(amount, rate))
	return nil
}

func runUtilID(cmd *cobra.Command, args []string) error {
	value := args[0]

	// Integer-looking input is checked as an int; anything else is
	// handed to ValidID as-is and fails the integer-kind check.
	var candidate any = value
	if id, err := strconv.Atoi(value); err == nil {
		candidate = id
	}

	if domain.ValidID(candidate) {
		cmd.Printf("%s is valid\n", value)
	} else {
		cmd.Printf("%s is invalid\n", value)
	}
	return nil
}
