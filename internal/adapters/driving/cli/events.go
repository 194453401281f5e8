package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// eventsLimit is a flag for the events command. Zero means "use the
// configured listing size".
var eventsLimit int

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent activity",
	Long:  `Show the most recent recorded operations, newest first.`,
	RunE:  runEvents,
}

func init() {
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 0, "maximum number of events (default from settings)")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, _ []string) error {
	if activityService == nil {
		return errors.New("activity service not configured")
	}

	limit := eventsLimit
	if limit <= 0 && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			limit = settings.EventLimit
		}
	}

	ctx := context.Background()

	events, err := activityService.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		cmd.Println("No activity recorded.")
		return nil
	}

	for i := range events {
		cmd.Printf("  %s  %s\n", events[i].OccurredAt.Format("2006-01-02 15:04:05"), events[i])
	}
	cmd.Printf("\nTotal: %d events\n", len(events))
	return nil
}
