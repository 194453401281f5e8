package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caopengau/aiready-skills/internal/adapters/driven/config/file"
	"github.com/caopengau/aiready-skills/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for minishop.

The TUI provides a visual interface for browsing users and orders and
reviewing recent activity with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate lists
  Enter    - Select
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal")
	}

	// Reload settings while the TUI runs so config edits take effect
	// without a restart
	if configStore != nil {
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()

		watcher := file.NewWatcher(configStore, nil)
		go func() {
			if err := watcher.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				// Log but don't fail - watch errors shouldn't block the TUI
				fmt.Fprintf(os.Stderr, "config watch stopped: %v\n", err)
			}
		}()
	}

	// Build ports from the wired services
	ports := &tui.Ports{
		Users:    userService,
		Orders:   orderService,
		Activity: activityService,
		Settings: settingsService,
	}

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	// Create and run the bubbletea program
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
