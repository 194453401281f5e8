// Package orders provides the order list view component for the TUI.
package orders

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/components/status"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/messages"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/styles"
	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// View is the order list view.
type View struct {
	styles       *styles.Styles
	orderService driving.OrderService

	orders   []domain.Order
	bar      *status.Bar
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new orders view.
func NewView(s *styles.Styles, orderService driving.OrderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:       s,
		orderService: orderService,
		orders:       []domain.Order{},
		bar:          status.NewBar(s, nil),
	}
}

// Init initialises the view and loads orders.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.bar.SetState(status.StateLoading)
	return v.loadOrders()
}

// loadOrders returns a command that loads orders from the service.
func (v *View) loadOrders() tea.Cmd {
	return func() tea.Msg {
		if v.orderService == nil {
			return messages.OrdersLoaded{Err: fmt.Errorf("order service not available")}
		}

		orders, err := v.orderService.List(context.Background())
		return messages.OrdersLoaded{Orders: orders, Err: err}
	}
}

// cancelOrder returns a command that cancels an order.
func (v *View) cancelOrder(id int) tea.Cmd {
	return func() tea.Msg {
		if v.orderService == nil {
			return messages.OrderCancelled{ID: id, Err: fmt.Errorf("order service not available")}
		}

		existed, err := v.orderService.Cancel(context.Background(), id)
		return messages.OrderCancelled{ID: id, Existed: existed, Err: err}
	}
}

// Update handles messages for the orders view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.bar.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.OrdersLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
		} else {
			v.orders = msg.Orders
			v.err = nil
			if v.selected >= len(v.orders) && v.selected > 0 {
				v.selected = len(v.orders) - 1
			}
			v.bar.SetState(status.StateReady)
			v.bar.SetCount(len(v.orders), "orders")
		}
		return v, nil

	case messages.OrderCancelled:
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.loading = true
		v.bar.SetState(status.StateLoading)
		return v, v.loadOrders()
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.orders)-1 {
			v.selected++
		}
	case "c":
		if len(v.orders) > 0 && v.selected < len(v.orders) {
			return v, v.cancelOrder(v.orders[v.selected].ID)
		}
	case "r":
		v.loading = true
		v.bar.SetState(status.StateLoading)
		return v, v.loadOrders()
	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// View renders the orders view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Orders"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading orders..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.orders) == 0:
		b.WriteString(v.styles.Muted.Render("No orders found."))
		b.WriteString("\n")
	default:
		for i := range v.orders {
			b.WriteString(v.renderOrder(i, &v.orders[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[c] cancel  [r] reload  [esc] back  [q] quit"))
	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

// renderOrder renders a single order line.
func (v *View) renderOrder(index int, order *domain.Order) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	amount := domain.FormatCurrency(order.Amount, domain.DefaultCurrency)
	line := fmt.Sprintf("%s#%-4d %-20s %10s  %-9s user %d",
		indicator, order.ID, order.Product, amount, order.Status, order.UserID)

	if index == v.selected {
		return v.styles.Selected.Render(line)
	}
	if order.Status == domain.OrderStatusCancelled {
		return v.styles.Muted.Render(line)
	}
	return v.styles.Normal.Render(line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.SetWidth(width)
}

// Orders returns the current list of orders.
func (v *View) Orders() []domain.Order {
	return v.orders
}

// SelectedIndex returns the currently selected order index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
