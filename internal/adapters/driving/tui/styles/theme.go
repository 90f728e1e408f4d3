// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Workday marks business days.
	Workday lipgloss.Color

	// Holiday marks weekdays that are not business days.
	Holiday lipgloss.Color

	// Compensation marks weekend days that are business days.
	Compensation lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:      lipgloss.Color("#7C3AED"), // Purple
		Secondary:    lipgloss.Color("#06B6D4"), // Cyan
		Foreground:   lipgloss.Color("#CDD6F4"), // Light gray
		Muted:        lipgloss.Color("#6C7086"), // Medium gray
		Workday:      lipgloss.Color("#A6E3A1"), // Green
		Holiday:      lipgloss.Color("#F38BA8"), // Red
		Compensation: lipgloss.Color("#F9E2AF"), // Yellow
		Error:        lipgloss.Color("#F38BA8"), // Red
		Border:       lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the month header.
	Title lipgloss.Style

	// Weekday style for the day-of-week header row.
	Weekday lipgloss.Style

	// Workday, Holiday, Weekend and Compensation style day cells.
	Workday      lipgloss.Style
	Holiday      lipgloss.Style
	Weekend      lipgloss.Style
	Compensation lipgloss.Style

	// Unknown styles days beyond the permitted horizon.
	Unknown lipgloss.Style

	// Cursor highlights the selected day.
	Cursor lipgloss.Style

	// Status style for the line describing the selected day.
	Status lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Border style for the calendar frame.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Weekday: cell.
			Foreground(theme.Secondary),

		Workday: cell.
			Foreground(theme.Workday),

		Holiday: cell.
			Foreground(theme.Holiday),

		Weekend: cell.
			Foreground(theme.Muted),

		Compensation: cell.
			Bold(true).
			Foreground(theme.Compensation),

		Unknown: cell.
			Foreground(theme.Muted).
			Faint(true),

		Cursor: cell.
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Status: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
