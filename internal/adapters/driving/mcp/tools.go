package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/caopengau/aiready-skills/internal/core/domain"
)

// UserOutput represents a user in tool results.
type UserOutput struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderOutput represents an order in tool results.
type OrderOutput struct {
	ID      int     `json:"id"`
	UserID  int     `json:"user_id"`
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// ListUsersInput is the input schema for the list_users tool.
type ListUsersInput struct{}

// ListUsersOutput is the output schema for the list_users tool.
type ListUsersOutput struct {
	Users []UserOutput `json:"users"`
	Count int          `json:"count"`
}

// GetUserInput is the input schema for the get_user tool.
type GetUserInput struct {
	ID int `json:"id" jsonschema:"the user ID to look up"`
}

// GetUserOutput is the output schema for the get_user tool.
type GetUserOutput struct {
	User  *UserOutput `json:"user,omitempty"`
	Found bool        `json:"found"`
}

// CreateUserInput is the input schema for the create_user tool.
type CreateUserInput struct {
	Name  string `json:"name" jsonschema:"the user's display name"`
	Email string `json:"email" jsonschema:"the user's email address"`
}

// CreateUserOutput is the output schema for the create_user tool.
type CreateUserOutput struct {
	User UserOutput `json:"user"`
}

// ListOrdersInput is the input schema for the list_orders tool.
type ListOrdersInput struct{}

// ListOrdersOutput is the output schema for the list_orders tool.
type ListOrdersOutput struct {
	Orders []OrderOutput `json:"orders"`
	Count  int           `json:"count"`
}

// GetOrderInput is the input schema for the get_order tool.
type GetOrderInput struct {
	ID int `json:"id" jsonschema:"the order ID to look up"`
}

// GetOrderOutput is the output schema for the get_order tool.
type GetOrderOutput struct {
	Order *OrderOutput `json:"order,omitempty"`
	Found bool         `json:"found"`
}

// CreateOrderInput is the input schema for the create_order tool.
type CreateOrderInput struct {
	UserID  int     `json:"user_id" jsonschema:"the ID of the user placing the order"`
	Product string  `json:"product" jsonschema:"the product name"`
	Amount  float64 `json:"amount" jsonschema:"the order amount, must be positive"`
}

// CreateOrderOutput is the output schema for the create_order tool.
type CreateOrderOutput struct {
	Order OrderOutput `json:"order"`
}

// CancelOrderInput is the input schema for the cancel_order tool.
type CancelOrderInput struct {
	ID int `json:"id" jsonschema:"the order ID to cancel"`
}

// CancelOrderOutput is the output schema for the cancel_order tool.
type CancelOrderOutput struct {
	Cancelled bool `json:"cancelled"`
}

// OrderQuoteInput is the input schema for the order_quote tool.
type OrderQuoteInput struct {
	ID int `json:"id" jsonschema:"the order ID to price"`
}

// OrderQuoteOutput is the output schema for the order_quote tool.
type OrderQuoteOutput struct {
	Order     *OrderOutput `json:"order,omitempty"`
	Currency  string       `json:"currency,omitempty"`
	TaxRate   float64      `json:"tax_rate,omitempty"`
	TaxAmount float64      `json:"tax_amount,omitempty"`
	Total     float64      `json:"total,omitempty"`
	Formatted string       `json:"formatted,omitempty"`
	Found     bool         `json:"found"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users in the shop",
	}, s.handleListUsers)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_user",
		Description: "Get a single user by ID",
	}, s.handleGetUser)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a new user with a name and email",
	}, s.handleCreateUser)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_orders",
		Description: "List all orders in the shop",
	}, s.handleListOrders)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_order",
		Description: "Get a single order by ID",
	}, s.handleGetOrder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_order",
		Description: "Place a new order for a user",
	}, s.handleCreateOrder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cancel_order",
		Description: "Cancel an order by ID",
	}, s.handleCancelOrder)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "order_quote",
		Description: "Price an order with the configured currency and tax rate",
	}, s.handleOrderQuote)
}

func userOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func orderOutput(order *domain.Order) *OrderOutput {
	return &OrderOutput{
		ID:      order.ID,
		UserID:  order.UserID,
		Product: order.Product,
		Amount:  order.Amount,
		Status:  order.Status.String(),
	}
}

// handleListUsers handles the list_users tool invocation.
func (s *Server) handleListUsers(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListUsersInput,
) (*mcp.CallToolResult, ListUsersOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, ListUsersOutput{}, err
	}

	users, err := s.ports.Users.List(ctx)
	if err != nil {
		return nil, ListUsersOutput{}, err
	}

	output := ListUsersOutput{
		Users: make([]UserOutput, len(users)),
		Count: len(users),
	}
	for i := range users {
		output.Users[i] = *userOutput(&users[i])
	}

	return nil, output, nil
}

// handleGetUser handles the get_user tool invocation.
func (s *Server) handleGetUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetUserInput,
) (*mcp.CallToolResult, GetUserOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, GetUserOutput{}, err
	}

	user, err := s.ports.Users.Get(ctx, input.ID)
	if err != nil {
		return nil, GetUserOutput{}, err
	}
	if user == nil {
		return nil, GetUserOutput{Found: false}, nil
	}

	return nil, GetUserOutput{User: userOutput(user), Found: true}, nil
}

// handleCreateUser handles the create_user tool invocation.
func (s *Server) handleCreateUser(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateUserInput,
) (*mcp.CallToolResult, CreateUserOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, CreateUserOutput{}, err
	}

	user, err := s.ports.Users.Create(ctx, input.Name, input.Email)
	if err != nil {
		return nil, CreateUserOutput{}, err
	}

	return nil, CreateUserOutput{User: *userOutput(user)}, nil
}

// handleListOrders handles the list_orders tool invocation.
func (s *Server) handleListOrders(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListOrdersInput,
) (*mcp.CallToolResult, ListOrdersOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, ListOrdersOutput{}, err
	}

	orders, err := s.ports.Orders.List(ctx)
	if err != nil {
		return nil, ListOrdersOutput{}, err
	}

	output := ListOrdersOutput{
		Orders: make([]OrderOutput, len(orders)),
		Count:  len(orders),
	}
	for i := range orders {
		output.Orders[i] = *orderOutput(&orders[i])
	}

	return nil, output, nil
}

// handleGetOrder handles the get_order tool invocation.
func (s *Server) handleGetOrder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetOrderInput,
) (*mcp.CallToolResult, GetOrderOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, GetOrderOutput{}, err
	}

	order, err := s.ports.Orders.Get(ctx, input.ID)
	if err != nil {
		return nil, GetOrderOutput{}, err
	}
	if order == nil {
		return nil, GetOrderOutput{Found: false}, nil
	}

	return nil, GetOrderOutput{Order: orderOutput(order), Found: true}, nil
}

// handleCreateOrder handles the create_order tool invocation.
func (s *Server) handleCreateOrder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateOrderInput,
) (*mcp.CallToolResult, CreateOrderOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, CreateOrderOutput{}, err
	}

	order, err := s.ports.Orders.Create(ctx, input.UserID, input.Product, input.Amount)
	if err != nil {
		return nil, CreateOrderOutput{}, err
	}

	return nil, CreateOrderOutput{Order: *orderOutput(order)}, nil
}

// handleCancelOrder handles the cancel_order tool invocation.
func (s *Server) handleCancelOrder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CancelOrderInput,
) (*mcp.CallToolResult, CancelOrderOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, CancelOrderOutput{}, err
	}

	existed, err := s.ports.Orders.Cancel(ctx, input.ID)
	if err != nil {
		return nil, CancelOrderOutput{}, err
	}

	return nil, CancelOrderOutput{Cancelled: existed}, nil
}

// handleOrderQuote handles the order_quote tool invocation.
func (s *Server) handleOrderQuote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OrderQuoteInput,
) (*mcp.CallToolResult, OrderQuoteOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, OrderQuoteOutput{}, err
	}

	quote, err := s.ports.Orders.Quote(ctx, input.ID)
	if err != nil {
		return nil, OrderQuoteOutput{}, err
	}
	if quote == nil {
		return nil, OrderQuoteOutput{Found: false}, nil
	}

	return nil, OrderQuoteOutput{
		Order:     orderOutput(&quote.Order),
		Currency:  quote.Currency,
		TaxRate:   quote.TaxRate,
		TaxAmount: quote.TaxAmount,
		Total:     quote.Total,
		Formatted: quote.String(),
		Found:     true,
	}, nil
}
