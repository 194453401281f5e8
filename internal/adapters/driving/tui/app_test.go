package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/messages"
	"github.com/caopengau/aiready-skills/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Users:    &MockUserService{},
		Orders:   &MockOrderService{},
		Activity: &MockActivityService{},
		Settings: &MockSettingsService{},
	}
}

func TestNewApp_Success(t *testing.T) {
	ports := newTestPorts()

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := &Ports{
		Users:    nil,
		Orders:   &MockOrderService{},
		Activity: &MockActivityService{},
	}

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	cmd := app.Init()

	// Init returns a batch command
	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	model, cmd := app.Update(msg)

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CtrlC_Quits(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	msg := tea.KeyMsg{Type: tea.KeyCtrlC}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged_Users(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewUsers})

	assert.Equal(t, messages.ViewUsers, app.CurrentView())
	// Switching to users kicks off a load
	require.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged_Orders(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewOrders})

	assert.Equal(t, messages.ViewOrders, app.CurrentView())
	require.NotNil(t, cmd)
}

func TestApp_Update_ViewChanged_Activity(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewActivity})

	assert.Equal(t, messages.ViewActivity, app.CurrentView())
	require.NotNil(t, cmd)
}

func TestApp_Update_EscReturnsToMenu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewUsers})

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	app.Update(msg)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_UsersLoaded(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewUsers})

	msg := messages.UsersLoaded{Users: []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
	}}
	app.Update(msg)

	assert.NoError(t, app.Err())
	output := renderAt(app)
	assert.Contains(t, output, "Alice")
}

// renderAt renders the app with dimensions applied so the ready gate passes.
func renderAt(app *App) string {
	app.SetDimensions(80, 24)
	return app.View()
}

func TestApp_Update_UsersLoaded_Error(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewUsers})

	msg := messages.UsersLoaded{Err: errors.New("store unavailable")}
	app.Update(msg)

	assert.Error(t, app.Err())
}

func TestApp_Update_OrdersLoaded(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewOrders})

	msg := messages.OrdersLoaded{Orders: []domain.Order{
		{ID: 1, UserID: 1, Product: "Laptop", Amount: 999.99, Status: domain.OrderStatusPending},
	}}
	app.Update(msg)

	assert.NoError(t, app.Err())
	output := renderAt(app)
	assert.Contains(t, output, "Laptop")
}

func TestApp_Update_ActivityLoaded(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewActivity})

	msg := messages.ActivityLoaded{Events: []domain.Event{
		{ID: "a", Action: "user.create", Entity: "user 3"},
	}}
	app.Update(msg)

	output := renderAt(app)
	assert.Contains(t, output, "user.create")
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	err := errors.New("boom")
	app.Update(messages.ErrorOccurred{Err: err})

	assert.Equal(t, err, app.Err())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_View_NotReady(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	output := app.View()

	assert.Contains(t, output, "Initialising")
}

func TestApp_View_Menu(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.menuView.SetDimensions(80, 24)

	output := app.View()

	assert.Contains(t, output, "Minishop")
	assert.Contains(t, output, "Users")
	assert.Contains(t, output, "Orders")
	assert.Contains(t, output, "Activity")
}

func TestApp_View_Help(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	output := app.View()

	assert.Contains(t, output, "Help")
	assert.Contains(t, output, "Navigation")
	assert.Contains(t, output, "ctrl+c")
}

func TestApp_HelpView_QKeyQuits(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	_, cmd := app.Update(msg)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_SetDimensions(t *testing.T) {
	ports := newTestPorts()
	app, _ := NewApp(ports)

	app.SetDimensions(120, 60)

	assert.True(t, app.Ready())
}
