// Command bizday resolves business days against a holiday calendar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/bizday/internal/adapters/driven/calendar"
	"github.com/custodia-labs/bizday/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bizday/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bizday/internal/adapters/driving/cli"
	"github.com/custodia-labs/bizday/internal/core/services"
	"github.com/custodia-labs/bizday/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetWiring(wire)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// wire builds the services from the configuration in configDir.
//
// A calendar that cannot be built from the settings leaves the resolving
// commands unconfigured but keeps the settings commands usable, so a bad
// setting can be fixed from the CLI.
func wire(configDir string) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" && configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening calendar store: %w", err)
	}
	logger.Debug("Calendar store: %s", store.Path())

	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing calendar store: %v", err)
		}
	}

	out := &cli.Services{Settings: settingsService}

	source, err := calendar.NewSource(*settings, store.CalendarStore())
	if err != nil {
		logger.Warn("calendar provider %q unavailable: %v", settings.Calendar.Provider, err)
	} else {
		logger.Debug("Calendar provider: %s", source.Name())
		cache := services.NewWorkdayCache(source, services.WithFetchTimeout(settings.Calendar.FetchTimeout))
		out.Workday = services.NewWorkdayService(cache)
	}

	importSource, err := calendar.NewImportSource(*settings)
	if err != nil {
		logger.Warn("calendar import unavailable: %v", err)
	} else {
		out.Calendar = services.NewCalendarService(
			importSource, store.CalendarStore(), settings.Calendar.Region, settings.Calendar.FetchTimeout)
	}

	return out, closeFn, nil
}
