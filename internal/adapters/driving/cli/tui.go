package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bizday/internal/adapters/driving/tui"
	"github.com/custodia-labs/bizday/internal/core/domain"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [date]",
	Short: "Browse business days in an interactive calendar",
	Long: `Launch an interactive month calendar opened at the given date (today if
omitted). Business days, holidays and weekend compensation workdays are
coloured differently.

Controls:
  ←/h, →/l  - Previous / next day
  ↑/k, ↓/j  - Previous / next week
  [, ]      - Previous / next month
  Enter     - Jump to the next business day
  t         - Today
  y         - Toggle answers in the following year
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&nextYear, "next-year", false, "allow answers in years after the current one")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if workdayService == nil {
		return errors.New("workday service not configured")
	}

	var start time.Time
	if len(args) == 1 {
		var err error
		if start, err = domain.ParseDate(args[0]); err != nil {
			return err
		}
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{Workday: workdayService}, start)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(cmd.Context()).WithNextYear(nextYear).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
