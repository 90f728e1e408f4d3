// Package cli provides the bizday command-line interface built on cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bizday/internal/core/ports/driving"
	"github.com/custodia-labs/bizday/internal/logger"
)

var version = "dev"

// Services wired into the commands. Nil services make their commands fail
// with a "not configured" error.
var (
	workdayService  driving.WorkdayService
	calendarService driving.CalendarService
	settingsService driving.SettingsService
)

var (
	verbose   bool
	configDir string
)

// Services groups the driving ports used by the commands.
type Services struct {
	Workday  driving.WorkdayService
	Calendar driving.CalendarService
	Settings driving.SettingsService
}

// WiringFunc builds the services for a config directory. The returned
// cleanup releases what the services hold open.
type WiringFunc func(configDir string) (*Services, func(), error)

var (
	wiring  WiringFunc
	cleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "bizday",
	Short: "Resolve business days against a holiday calendar",
	Long: `bizday answers business-day questions for a region's working calendar:
the nearest business day on or after a date, the business day N days later,
and whether a date is a business day.

Calendars come from the apihubs holiday API, from offline weekend and holiday
rules, or from years previously imported into the local database.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.bizday)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	workdayService = s.Workday
	calendarService = s.Calendar
	settingsService = s.Settings
}

// SetWiring registers a function that builds the services once flags are
// parsed. It is not called when no wiring is registered.
func SetWiring(fn WiringFunc) {
	wiring = fn
}

// Execute runs the root command with ctx and releases the wired services.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if wiring == nil || cleanup != nil {
		return nil
	}

	services, closeFn, err := wiring(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	if services == nil {
		return errors.New("failed to initialise: no services")
	}
	SetServices(*services)

	cleanup = closeFn
	if cleanup == nil {
		cleanup = func() {}
	}
	return nil
}

func closeServices() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}
