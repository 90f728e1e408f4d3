package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the calendar provider, its options and local storage.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. List values such as rules.extra_holidays are
comma-separated YYYYMMDD dates; an empty value clears them.

Run 'bizday settings keys' to list the recognised keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to choose and configure the calendar provider.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Calendar]")
	cmd.Printf("  Provider: %s\n", settings.Calendar.Provider.Description())
	cmd.Printf("  Region: %s\n", settings.Calendar.Region)
	cmd.Printf("  Fetch timeout: %s\n", settings.Calendar.FetchTimeout)
	cmd.Println()

	cmd.Println("[apihubs]")
	cmd.Printf("  Base URL: %s\n", settings.APIHubs.BaseURL)
	cmd.Printf("  Rate: %d req/s (burst %d)\n", settings.APIHubs.RequestsPerSecond, settings.APIHubs.Burst)
	cmd.Println()

	cmd.Println("[Rules]")
	cmd.Printf("  Country: %s\n", settings.Rules.Country)
	cmd.Printf("  Extra holidays: %s\n", formatList(settings.Rules.ExtraHolidays))
	cmd.Printf("  Extra workdays: %s\n", formatList(settings.Rules.ExtraWorkdays))
	cmd.Println()

	cmd.Println("[Storage]")
	if settings.Storage.DataDir == "" {
		cmd.Println("  Data dir: ~/.bizday/data (default)")
	} else {
		cmd.Printf("  Data dir: %s\n", settings.Storage.DataDir)
	}
	cmd.Println()

	if settings.Calendar.Provider == domain.CalendarProviderStore {
		cmd.Println("Business days are served from imported calendars.")
		cmd.Println("Run 'bizday calendar import <year>' to import a year.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	in := cmd.InOrStdin()
	w := &wizard{
		cmd:         cmd,
		reader:      bufio.NewReader(in),
		interactive: isTerminal(in),
	}

	w.println("bizday Settings Wizard")
	w.println("======================")
	w.println()

	// Step 1: provider
	w.println("Step 1: Select Calendar Provider")
	w.println("--------------------------------")
	providers := domain.AllCalendarProviders()
	defaultIdx := 1
	for i, p := range providers {
		if p == current.Calendar.Provider {
			defaultIdx = i + 1
		}
		w.printf("  %d. %s\n", i+1, p.Description())
	}
	w.printf("\nEnter choice [%d]: ", defaultIdx)
	provider := providers[parseChoice(readLine(w.reader), len(providers), defaultIdx)-1]
	if err := w.set("calendar.provider", provider.String()); err != nil {
		return err
	}
	w.println()

	// Step 2: provider options
	w.printf("Step 2: Configure %s\n", provider.Description())
	w.println("------------------------")
	switch provider {
	case domain.CalendarProviderAPIHubs:
		if err := w.ask("calendar.region", "Region", current.Calendar.Region); err != nil {
			return err
		}
		if err := w.ask("apihubs.base_url", "Base URL", current.APIHubs.BaseURL); err != nil {
			return err
		}
	case domain.CalendarProviderRules:
		countries := domain.RulesCountries()
		countryIdx := 1
		for i, c := range countries {
			if c == current.Rules.Country {
				countryIdx = i + 1
			}
			w.printf("  %d. %s\n", i+1, c)
		}
		w.printf("\nEnter country [%d]: ", countryIdx)
		country := countries[parseChoice(readLine(w.reader), len(countries), countryIdx)-1]
		if err := w.set("rules.country", country); err != nil {
			return err
		}
		if err := w.ask("rules.extra_holidays", "Extra holidays (YYYYMMDD, comma-separated)",
			strings.Join(current.Rules.ExtraHolidays, ",")); err != nil {
			return err
		}
		if err := w.ask("rules.extra_workdays", "Extra workdays (YYYYMMDD, comma-separated)",
			strings.Join(current.Rules.ExtraWorkdays, ",")); err != nil {
			return err
		}
	case domain.CalendarProviderStore:
		if err := w.ask("calendar.region", "Region", current.Calendar.Region); err != nil {
			return err
		}
		w.println("Import years with 'bizday calendar import <year>'.")
	}
	w.println()

	cmd.Println("Configuration Complete!")
	cmd.Printf("Calendar provider: %s\n", provider.Description())
	return nil
}

// wizard holds the state of an interactive settings session. Prompts are
// only written when reading from a terminal, so answers can be piped in.
type wizard struct {
	cmd         *cobra.Command
	reader      *bufio.Reader
	interactive bool
}

func (w *wizard) println(args ...any) {
	if w.interactive {
		w.cmd.Println(args...)
	}
}

func (w *wizard) printf(format string, args ...any) {
	if w.interactive {
		w.cmd.Printf(format, args...)
	}
}

// ask prompts for key, keeping current when the answer is empty.
func (w *wizard) ask(key, label, current string) error {
	w.printf("%s [%s]: ", label, current)
	answer := readLine(w.reader)
	if answer == "" {
		return nil
	}
	return w.set(key, answer)
}

func (w *wizard) set(key, value string) error {
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
