package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

var (
	nextYear  bool
	nextCount int
	asJSON    bool
)

var recentCmd = &cobra.Command{
	Use:   "recent [date]",
	Short: "Show the nearest business day on or after a date",
	Long: `Shows the nearest business day on or after the given date (today if
omitted). Dates are written as YYYY-MM-DD or YYYYMMDD.

Answers after the current year are only given with --next-year.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecent,
}

var nextCmd = &cobra.Command{
	Use:   "next [date]",
	Short: "Show the business day N business days after a date",
	Long: `Shows the business day that lies N business days after the given date
(today if omitted). When the date is not a business day, the nearest later
business day counts as the first one. A count of 0 shows the date itself if it
is a business day, otherwise the nearest later one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNext,
}

var checkCmd = &cobra.Command{
	Use:   "check [date]",
	Short: "Check whether a date is a business day",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	for _, cmd := range []*cobra.Command{recentCmd, nextCmd, checkCmd} {
		cmd.Flags().BoolVar(&nextYear, "next-year", false, "allow answers in years after the current one")
		cmd.Flags().BoolVar(&asJSON, "json", false, "output the result as JSON")
		rootCmd.AddCommand(cmd)
	}
	nextCmd.Flags().IntVarP(&nextCount, "count", "n", 1, "number of business days to advance")
}

// workdayResult is the JSON output of the resolving commands.
type workdayResult struct {
	Input   string `json:"input"`
	Found   bool   `json:"found"`
	Date    string `json:"date,omitempty"`
	Code    string `json:"code,omitempty"`
	Workday *bool  `json:"workday,omitempty"`
}

func runRecent(cmd *cobra.Command, args []string) error {
	if workdayService == nil {
		return errors.New("workday service not configured")
	}

	date, err := dateArg(args)
	if err != nil {
		return err
	}

	code, found, err := workdayService.RecentWorkday(cmd.Context(), date, nextYear)
	if err != nil {
		return resolveError("failed to resolve business day", err)
	}

	result := workdayResult{Input: date.Format(time.DateOnly), Found: found}
	if found {
		result.Date = code.Date().Format(time.DateOnly)
		result.Code = code.String()
	}
	if asJSON {
		return outputJSON(cmd, result)
	}

	if !found {
		cmd.Printf("No business day found on or after %s within %d.\n", result.Input, time.Now().Year())
		cmd.Println("Use --next-year to look into the following year.")
		return nil
	}
	cmd.Println(result.Date)
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	if workdayService == nil {
		return errors.New("workday service not configured")
	}
	if nextCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", nextCount)
	}

	date, err := dateArg(args)
	if err != nil {
		return err
	}

	next, found, err := workdayService.NextWorkday(cmd.Context(), date, nextCount, nextYear)
	if err != nil {
		return resolveError("failed to resolve business day", err)
	}

	result := workdayResult{Input: date.Format(time.DateOnly), Found: found}
	if found {
		result.Date = next.Format(time.DateOnly)
		result.Code = domain.DateToCode(next).String()
	}
	if asJSON {
		return outputJSON(cmd, result)
	}

	if !found {
		cmd.Printf("No business day found %d business days after %s within %d.\n",
			nextCount, result.Input, time.Now().Year())
		cmd.Println("Use --next-year to look into the following year.")
		return nil
	}
	cmd.Println(result.Date)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if workdayService == nil {
		return errors.New("workday service not configured")
	}

	date, err := dateArg(args)
	if err != nil {
		return err
	}

	// Resolve instead of asking IsWorkday so a date beyond the horizon
	// reads as unknown rather than as a day off.
	code, found, err := workdayService.RecentWorkday(cmd.Context(), date, nextYear)
	if err != nil {
		return resolveError("failed to check business day", err)
	}

	result := workdayResult{Input: date.Format(time.DateOnly), Found: found}
	if found {
		ok := code == domain.DateToCode(date)
		result.Workday = &ok
	}
	if asJSON {
		return outputJSON(cmd, result)
	}

	switch {
	case !found:
		cmd.Printf("Cannot tell whether %s is a business day within %d.\n", result.Input, time.Now().Year())
		cmd.Println("Use --next-year to look into the following year.")
	case *result.Workday:
		cmd.Printf("%s is a business day.\n", result.Input)
	default:
		cmd.Printf("%s is not a business day.\n", result.Input)
	}
	return nil
}

// resolveError wraps a resolution failure, adding a hint when the calendar
// provider is rate limiting.
func resolveError(msg string, err error) error {
	if errors.Is(err, domain.ErrRateLimited) {
		return fmt.Errorf("%s: %w (the calendar provider is rate limiting requests, try again shortly)", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// dateArg parses the optional date argument, defaulting to today.
func dateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return domain.ParseDate(args[0])
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
