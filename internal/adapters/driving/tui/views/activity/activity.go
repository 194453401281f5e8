// Package activity provides the activity log view component for the TUI.
package activity

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/messages"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui/styles"
	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
)

// View is the activity log view. It lists recent events newest first.
type View struct {
	styles          *styles.Styles
	activityService driving.ActivityService
	settingsService driving.SettingsService

	events  []domain.Event
	width   int
	height  int
	ready   bool
	err     error
	loading bool
}

// NewView creates a new activity view.
func NewView(
	s *styles.Styles,
	activityService driving.ActivityService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:          s,
		activityService: activityService,
		settingsService: settingsService,
		events:          []domain.Event{},
	}
}

// Init initialises the view and loads recent events.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadEvents()
}

// loadEvents returns a command that loads recent events.
// The listing size comes from the configured event limit when a
// settings service is available.
func (v *View) loadEvents() tea.Cmd {
	return func() tea.Msg {
		if v.activityService == nil {
			return messages.ActivityLoaded{Err: fmt.Errorf("activity service not available")}
		}

		limit := 0
		if v.settingsService != nil {
			if settings, err := v.settingsService.Get(); err == nil {
				limit = settings.EventLimit
			}
		}

		events, err := v.activityService.Recent(context.Background(), limit)
		return messages.ActivityLoaded{Events: events, Err: err}
	}
}

// Update handles messages for the activity view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			v.loading = true
			return v, v.loadEvents()
		case "q":
			return v, tea.Quit
		}
		return v, nil

	case messages.ActivityLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.events = msg.Events
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// View renders the activity view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Activity"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading activity..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.events) == 0:
		b.WriteString(v.styles.Muted.Render("No activity recorded yet."))
		b.WriteString("\n")
	default:
		for i := range v.events {
			b.WriteString(v.renderEvent(&v.events[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[r] reload  [esc] back  [q] quit"))

	return b.String()
}

// renderEvent renders a single event line.
func (v *View) renderEvent(event *domain.Event) string {
	stamp := v.styles.Muted.Render(event.OccurredAt.Format("2006-01-02 15:04:05"))
	return fmt.Sprintf("%s  %s", stamp, v.styles.Normal.Render(event.String()))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Events returns the currently loaded events.
func (v *View) Events() []domain.Event {
	return v.events
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
