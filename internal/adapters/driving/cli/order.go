package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
	Long:  `List, view, create, cancel, or quote orders.`,
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE:  runOrderList,
}

var orderGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderGet,
}

var orderCreateCmd = &cobra.Command{
	Use:   "create [user-id] [product] [amount]",
	Short: "Create an order",
	Long:  `Create a pending order. The user reference is not checked.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runOrderCreate,
}

var orderCancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderCancel,
}

var orderQuoteCmd = &cobra.Command{
	Use:   "quote [id]",
	Short: "Price an order with tax",
	Long:  `Price an order with the configured currency and tax rate.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderQuote,
}

func init() {
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderGetCmd)
	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderCancelCmd)
	orderCmd.AddCommand(orderQuoteCmd)
	rootCmd.AddCommand(orderCmd)
}

func runOrderList(cmd *cobra.Command, _ []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	ctx := context.Background()

	orders, err := orderService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(orders) == 0 {
		cmd.Println("No orders found.")
		return nil
	}

	for i := range orders {
		cmd.Printf("  %s\n", orders[i])
	}
	cmd.Printf("\nTotal: %d orders\n", len(orders))
	return nil
}

func runOrderGet(cmd *cobra.Command, args []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	order, err := orderService.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		cmd.Printf("Order %d not found.\n", id)
		return nil
	}

	cmd.Printf("%s\n", order)
	return nil
}

func runOrderCreate(cmd *cobra.Command, args []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	userID, err := parseID(args[0])
	if err != nil {
		return err
	}
	product := args[1]
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: want a number", args[2])
	}
	ctx := context.Background()

	order, err := orderService.Create(ctx, userID, product, amount)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	cmd.Printf("Created %s\n", order)
	return nil
}

func runOrderCancel(cmd *cobra.Command, args []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	cancelled, err := orderService.Cancel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	if !cancelled {
		cmd.Printf("Order %d not found.\n", id)
		return nil
	}

	cmd.Printf("Cancelled order %d.\n", id)
	return nil
}

func runOrderQuote(cmd *cobra.Command, args []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()

	quote, err := orderService.Quote(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to quote order: %w", err)
	}
	if quote == nil {
		cmd.Printf("Order %d not found.\n", id)
		return nil
	}

	cmd.Printf("%s\n", quote)
	return nil
}
