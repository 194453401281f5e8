// Package cli implements the minishop command line interface.
// Commands talk to the core through the driving ports; the store
// backend behind those ports is chosen per run from settings or the
// --store flag.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/caopengau/aiready-skills/internal/adapters/driven/config/file"
	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/memory"
	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/seed"
	"github.com/caopengau/aiready-skills/internal/adapters/driven/storage/sqlite"
	"github.com/caopengau/aiready-skills/internal/core/domain"
	"github.com/caopengau/aiready-skills/internal/core/ports/driven"
	"github.com/caopengau/aiready-skills/internal/core/ports/driving"
	"github.com/caopengau/aiready-skills/internal/core/services"
	"github.com/caopengau/aiready-skills/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// Services used by the commands. Wired on first run; tests install
// their own instances, which makes wiring a no-op.
var (
	userService     driving.UserService
	orderService    driving.OrderService
	activityService driving.ActivityService
	settingsService driving.SettingsService

	configStore *file.ConfigStore
	sqliteStore *sqlite.Store
)

var (
	flagVerbose   bool
	flagStore     string
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "minishop",
	Short: "A small user and order demo service",
	Long: `minishop is a deliberately small shop demo: two seeded users, two
seeded orders, and the handful of operations around them.

By default the dataset is rebuilt on every command and writes are
discarded, so the demo always starts from the same state. Select a
different backend with --store (or settings) to make writes stick:

  seed    fixture dataset, writes discarded (default)
  memory  kept for this run only
  sqlite  kept across runs in ~/.minishop/data`,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		logger.SetVerbose(flagVerbose)
		return wireServices()
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return closeStores()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "record store backend: seed, memory or sqlite (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.minishop)")
}

// Execute runs the root command. v overrides the reported version when
// non-empty.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}

// SetServices installs the given services, replacing any wired stack.
func SetServices(users driving.UserService, orders driving.OrderService, activity driving.ActivityService, settings driving.SettingsService) {
	userService = users
	orderService = orders
	activityService = activity
	settingsService = settings
}

// wireServices builds the service stack behind the driving ports.
func wireServices() error {
	if userService != nil {
		return nil
	}

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = store
	logger.Debug("Config: %s", store.Path())

	settings := services.NewSettingsService(store)
	settingsService = settings

	backend, err := resolveBackend(settings)
	if err != nil {
		return err
	}
	logger.Debug("Record store backend: %s", backend)

	var (
		users  driven.RecordStore[domain.User]
		orders driven.RecordStore[domain.Order]
		events driven.EventLog
	)

	switch backend {
	case domain.StoreBackendMemory:
		users = memory.NewSeededRecordStore(seed.Users())
		orders = memory.NewSeededRecordStore(seed.Orders())
		events = memory.NewEventLog(0)
	case domain.StoreBackendSQLite:
		dataDir := ""
		if flagConfigDir != "" {
			dataDir = filepath.Join(flagConfigDir, "data")
		}
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("open sqlite store: %w", err)
		}
		sqliteStore = db
		logger.Debug("Database: %s", db.Path())
		users = db.UserStore()
		orders = db.OrderStore()
		events = db.EventLog()

		ctx := context.Background()
		if err := ensureSeeded(ctx, users, seed.Users()); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if err := ensureSeeded(ctx, orders, seed.Orders()); err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	default:
		users = seed.NewUserStore()
		orders = seed.NewOrderStore()
		events = memory.NewEventLog(0)
	}

	activity := services.NewActivityService(events)
	activityService = activity

	userSvc := services.NewUserService(users)
	userSvc.SetActivity(activity)
	userService = userSvc

	orderSvc := services.NewOrderService(orders)
	orderSvc.SetActivity(activity)
	orderSvc.SetSettings(settings)
	orderService = orderSvc

	return nil
}

// resolveBackend picks the record store backend: the --store flag
// wins, then settings, then the seed default.
func resolveBackend(settings driving.SettingsService) (domain.StoreBackend, error) {
	if flagStore != "" {
		backend := domain.StoreBackend(flagStore)
		if !backend.IsValid() {
			return "", fmt.Errorf("%w: %q (want seed, memory or sqlite)", domain.ErrInvalidBackend, flagStore)
		}
		return backend, nil
	}

	current, err := settings.Get()
	if err != nil {
		return domain.StoreBackendSeed, nil
	}
	return current.StoreBackend, nil
}

// ensureSeeded loads the fixtures into an empty persistent store so
// every backend starts from the same dataset.
func ensureSeeded[R domain.Record[R]](ctx context.Context, store driven.RecordStore[R], records []R) error {
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, record := range records {
		if err := store.Put(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// closeStores releases any store opened by wiring.
func closeStores() error {
	if sqliteStore == nil {
		return nil
	}
	err := sqliteStore.Close()
	sqliteStore = nil
	return err
}
