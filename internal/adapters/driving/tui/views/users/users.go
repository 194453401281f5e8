// Package users provides the user list view component for the TUI.
package users

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

// View is the user list view.
type View struct {
	styles      *styles.Styles
	userService driving.UserService

	users    []domain.User
	bar      *status.Bar
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new users view.
func NewView(s *styles.Styles, userService driving.UserService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:      s,
		userService: userService,
		users:       []domain.User{},
		bar:         status.NewBar(s, nil),
	}
}

// Init initialises the view and loads users.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.bar.SetState(status.StateLoading)
	return v.loadUsers()
}

// loadUsers returns a command that loads users from the service.
func (v *View) loadUsers() tea.Cmd {
	return func() tea.Msg {
		if v.userService == nil {
			return messages.UsersLoaded{Err: fmt.Errorf("user service not available")}
		}

		users, err := v.userService.List(context.Background())
		return messages.UsersLoaded{Users: users, Err: err}
	}
}

// deleteUser returns a command that deletes a user.
func (v *View) deleteUser(id int) tea.Cmd {
	return func() tea.Msg {
		if v.userService == nil {
			return messages.UserRemoved{ID: id, Err: fmt.Errorf("user service not available")}
		}

		existed, err := v.userService.Delete(context.Background(), id)
		return messages.UserRemoved{ID: id, Existed: existed, Err: err}
	}
}

// Update handles messages for the users view.
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

	case messages.UsersLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
		} else {
			v.users = msg.Users
			v.err = nil
			if v.selected >= len(v.users) && v.selected > 0 {
				v.selected = len(v.users) - 1
			}
			v.bar.SetState(status.StateReady)
			v.bar.SetCount(len(v.users), "users")
		}
		return v, nil

	case messages.UserRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		// Reload after removal, whether or not the user existed
		v.loading = true
		v.bar.SetState(status.StateLoading)
		return v, v.loadUsers()
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
		if v.selected < len(v.users)-1 {
			v.selected++
		}
	case "d", "delete", "backspace":
		if len(v.users) > 0 && v.selected < len(v.users) {
			return v, v.deleteUser(v.users[v.selected].ID)
		}
	case "r":
		v.loading = true
		v.bar.SetState(status.StateLoading)
		return v, v.loadUsers()
	case "q":
		return v, tea.Quit
	}

	return v, nil
}

// View renders the users view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Users"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading users..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.users) == 0:
		b.WriteString(v.styles.Muted.Render("No users found."))
		b.WriteString("\n")
	default:
		for i := range v.users {
			b.WriteString(v.renderUser(i, &v.users[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[d] delete  [r] reload  [esc] back  [q] quit"))
	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

// renderUser renders a single user line.
func (v *View) renderUser(index int, user *domain.User) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	line := fmt.Sprintf("%s#%-4d %-16s %s", indicator, user.ID, user.Name, user.Email)
	if index == v.selected {
		return v.styles.Selected.Render(line)
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

// Users returns the current list of users.
func (v *View) Users() []domain.User {
	return v.users
}

// SelectedIndex returns the currently selected user index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
