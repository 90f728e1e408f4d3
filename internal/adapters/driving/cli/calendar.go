package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage imported calendars",
	Long: `Import business-day calendars into the local database for offline use.

Imported years are served by the "store" calendar provider:
  bizday settings set calendar.provider store`,
}

var calendarImportCmd = &cobra.Command{
	Use:   "import <year> [year...]",
	Short: "Import the business days of one or more years",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCalendarImport,
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported years",
	Args:  cobra.NoArgs,
	RunE:  runCalendarList,
}

var calendarShowCmd = &cobra.Command{
	Use:   "show <year>",
	Short: "Show the business days of an imported year",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarShow,
}

var calendarRemoveCmd = &cobra.Command{
	Use:   "remove <year>",
	Short: "Remove an imported year",
	Args:  cobra.ExactArgs(1),
	RunE:  runCalendarRemove,
}

func init() {
	calendarShowCmd.Flags().BoolVar(&asJSON, "json", false, "output the business days as JSON")
	calendarCmd.AddCommand(calendarImportCmd)
	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarShowCmd)
	calendarCmd.AddCommand(calendarRemoveCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendarImport(cmd *cobra.Command, args []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	years := make([]int, len(args))
	for i, arg := range args {
		year, err := parseYear(arg)
		if err != nil {
			return err
		}
		years[i] = year
	}

	for _, year := range years {
		n, err := calendarService.Import(cmd.Context(), year)
		if err != nil {
			return fmt.Errorf("failed to import %d: %w", year, err)
		}
		cmd.Printf("Imported %d: %d business days\n", year, n)
	}
	return nil
}

func runCalendarList(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	years, err := calendarService.Years(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}

	if len(years) == 0 {
		cmd.Println("No calendars imported.")
		cmd.Println("Run 'bizday calendar import <year>' to import one.")
		return nil
	}

	cmd.Println("Imported years:")
	for _, year := range years {
		cmd.Printf("  %d\n", year)
	}
	return nil
}

func runCalendarShow(cmd *cobra.Command, args []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	list, err := calendarService.Show(cmd.Context(), year)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no calendar imported for %d", year)
	}
	if err != nil {
		return fmt.Errorf("failed to show calendar: %w", err)
	}

	if asJSON {
		return outputJSON(cmd, list)
	}

	cmd.Printf("%d: %d business days\n", year, len(list))
	printMonths(cmd, list)
	return nil
}

func runCalendarRemove(cmd *cobra.Command, args []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	year, err := parseYear(args[0])
	if err != nil {
		return err
	}

	if err := calendarService.Remove(cmd.Context(), year); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no calendar imported for %d", year)
		}
		return fmt.Errorf("failed to remove calendar: %w", err)
	}

	cmd.Printf("Removed %d\n", year)
	return nil
}

// printMonths prints one line per month listing its business days.
func printMonths(cmd *cobra.Command, list domain.WorkdayList) {
	var (
		month string
		days  []string
	)
	flush := func() {
		if month != "" {
			cmd.Printf("  %s-%s  %s\n", month[:4], month[4:], strings.Join(days, " "))
		}
	}
	for _, code := range list {
		s := code.String()
		if s[:6] != month {
			flush()
			month, days = s[:6], nil
		}
		days = append(days, s[6:])
	}
	flush()
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
