package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/messages"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/styles"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/views/activity"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/views/menu"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/views/orders"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/views/users"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// usersView is the user list view component.
	usersView *users.View

	// ordersView is the order list view component.
	ordersView *orders.View

	// activityView is the activity log view component.
	activityView *activity.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		usersView:    users.NewView(s, ports.Users),
		ordersView:   orders.NewView(s, ports.Orders),
		activityView: activity.NewView(s, ports.Activity, ports.Settings),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("minishop - Users & Orders"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.usersView.SetDimensions(msg.Width, msg.Height)
		a.ordersView.SetDimensions(msg.Width, msg.Height)
		a.activityView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Esc returns to the menu from any view
		if msg.Type == tea.KeyEsc && a.currentView != messages.ViewMenu {
			a.currentView = messages.ViewMenu
			return a, nil
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewUsers:
			a.usersView, cmd = a.usersView.Update(msg)
			a.err = a.usersView.Err()
			return a, cmd

		case messages.ViewOrders:
			a.ordersView, cmd = a.ordersView.Update(msg)
			a.err = a.ordersView.Err()
			return a, cmd

		case messages.ViewActivity:
			a.activityView, cmd = a.activityView.Update(msg)
			a.err = a.activityView.Err()
			return a, cmd

		case messages.ViewHelp:
			if msg.String() == "q" {
				return a, tea.Quit
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewUsers:
			return a, a.usersView.Init()
		case messages.ViewOrders:
			return a, a.ordersView.Init()
		case messages.ViewActivity:
			return a, a.activityView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed
		}
		return a, nil

	case messages.UsersLoaded, messages.UserRemoved:
		a.usersView, cmd = a.usersView.Update(msg)
		a.err = a.usersView.Err()
		return a, cmd

	case messages.OrdersLoaded, messages.OrderCancelled:
		a.ordersView, cmd = a.ordersView.Update(msg)
		a.err = a.ordersView.Err()
		return a, cmd

	case messages.ActivityLoaded:
		a.activityView, cmd = a.activityView.Update(msg)
		a.err = a.activityView.Err()
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewUsers:
		a.usersView, cmd = a.usersView.Update(msg)
	case messages.ViewOrders:
		a.ordersView, cmd = a.ordersView.Update(msg)
	case messages.ViewActivity:
		a.activityView, cmd = a.activityView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewUsers:
		return a.usersView.View()
	case messages.ViewOrders:
		return a.ordersView.View()
	case messages.ViewActivity:
		return a.activityView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Users:
  j/k, ↑/↓    Navigate users
  d           Delete selected user
  r           Reload
  esc         Back to Menu

Orders:
  j/k, ↑/↓    Navigate orders
  c           Cancel selected order
  r           Reload
  esc         Back to Menu

Activity:
  r           Reload
  esc         Back to Menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.usersView.SetDimensions(width, height)
	a.ordersView.SetDimensions(width, height)
	a.activityView.SetDimensions(width, height)
}
