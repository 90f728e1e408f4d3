package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/bizday/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/bizday/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bizday/internal/adapters/driving/tui/styles"
)

// App is the month calendar following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	spinner spinner.Model

	// cursor is the selected day, midnight UTC.
	cursor time.Time

	// month is the first day of the displayed month.
	month    time.Time
	workdays map[int]bool
	complete bool
	loading  bool

	// next is the business day after the cursor, when known.
	next      time.Time
	nextFound bool

	considerNextYear bool
	now              func() time.Time

	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a month calendar opened at start.
// A zero start opens today.
func NewApp(ports *Ports, start time.Time) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		now:     time.Now,
	}
	if start.IsZero() {
		start = a.today()
	}
	a.cursor = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithNextYear allows answers beyond the current year.
func (a *App) WithNextYear(considerNextYear bool) *App {
	a.considerNextYear = considerNextYear
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("bizday"),
		a.spinner.Tick,
		a.moveTo(a.cursor),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.MonthLoaded:
		if !msg.Month.Equal(a.month) {
			// A stale answer for a month already left.
			return a, nil
		}
		a.loading = false
		a.err = msg.Err
		a.workdays = msg.Workdays
		a.complete = msg.Complete
		return a, nil

	case messages.DayResolved:
		if !msg.Date.Equal(a.cursor) {
			return a, nil
		}
		a.next, a.nextFound = msg.Next, msg.Found
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(msg, a.keys.Left):
		return a.moveTo(a.cursor.AddDate(0, 0, -1))
	case key.Matches(msg, a.keys.Right):
		return a.moveTo(a.cursor.AddDate(0, 0, 1))
	case key.Matches(msg, a.keys.Up):
		return a.moveTo(a.cursor.AddDate(0, 0, -7))
	case key.Matches(msg, a.keys.Down):
		return a.moveTo(a.cursor.AddDate(0, 0, 7))
	case key.Matches(msg, a.keys.PrevMonth):
		return a.moveTo(firstOfMonth(a.cursor).AddDate(0, -1, 0))
	case key.Matches(msg, a.keys.NextMonth):
		return a.moveTo(firstOfMonth(a.cursor).AddDate(0, 1, 0))
	case key.Matches(msg, a.keys.Today):
		return a.moveTo(a.today())
	case key.Matches(msg, a.keys.NextWorkday):
		if a.nextFound {
			return a.moveTo(a.next)
		}
		return nil
	case key.Matches(msg, a.keys.NextYear):
		a.considerNextYear = !a.considerNextYear
		a.month = time.Time{}
		return a.moveTo(a.cursor)
	}
	return nil
}

// moveTo selects date, loading its month when it changes.
func (a *App) moveTo(date time.Time) tea.Cmd {
	a.cursor = date
	a.nextFound = false

	cmds := []tea.Cmd{a.resolveDay(date)}
	if month := firstOfMonth(date); !month.Equal(a.month) {
		a.month = month
		a.workdays = nil
		a.loading = true
		a.err = nil
		cmds = append(cmds, a.loadMonth(month))
	}
	return tea.Batch(cmds...)
}

func (a *App) loadMonth(month time.Time) tea.Cmd {
	ctx, svc, considerNextYear := a.ctx, a.ports.Workday, a.considerNextYear
	return func() tea.Msg {
		days, complete, err := monthWorkdays(ctx, svc, month, considerNextYear)
		return messages.MonthLoaded{Month: month, Workdays: days, Complete: complete, Err: err}
	}
}

func (a *App) resolveDay(date time.Time) tea.Cmd {
	ctx, svc, considerNextYear := a.ctx, a.ports.Workday, a.considerNextYear
	return func() tea.Msg {
		next, found, err := svc.NextWorkday(ctx, date, 1, considerNextYear)
		return messages.DayResolved{Date: date, Next: next, Found: found, Err: err}
	}
}

func (a *App) today() time.Time {
	now := a.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(a.month.Format("January 2006")))
	if a.loading {
		b.WriteString(" " + a.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(a.styles.Border.Render(a.grid()))
	b.WriteString("\n")
	b.WriteString(a.status())
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

// grid renders the month with weeks starting on Monday.
func (a *App) grid() string {
	var rows []string

	header := make([]string, 0, 7)
	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		header = append(header, a.styles.Weekday.Render(d))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	offset := (int(a.month.Weekday()) + 6) % 7
	week := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, a.styles.Weekend.Render(""))
	}

	for d := a.month; d.Month() == a.month.Month(); d = d.AddDate(0, 0, 1) {
		week = append(week, a.cell(d))
		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) cell(d time.Time) string {
	label := fmt.Sprintf("%d", d.Day())
	if d.Equal(a.cursor) {
		return a.styles.Cursor.Render(label)
	}
	return a.dayStyle(d).Render(label)
}

// dayStyle picks the style describing d's business day status.
func (a *App) dayStyle(d time.Time) lipgloss.Style {
	switch a.dayKind(d) {
	case kindWorkday:
		return a.styles.Workday
	case kindCompensation:
		return a.styles.Compensation
	case kindHoliday:
		return a.styles.Holiday
	case kindWeekend:
		return a.styles.Weekend
	default:
		return a.styles.Unknown
	}
}

type dayKind int

const (
	kindUnknown dayKind = iota
	kindWorkday
	kindCompensation
	kindHoliday
	kindWeekend
)

func (k dayKind) String() string {
	switch k {
	case kindWorkday:
		return "business day"
	case kindCompensation:
		return "business day (weekend compensation)"
	case kindHoliday:
		return "holiday"
	case kindWeekend:
		return "weekend"
	default:
		return "unknown"
	}
}

func (a *App) dayKind(d time.Time) dayKind {
	if a.workdays == nil || !firstOfMonth(d).Equal(a.month) {
		return kindUnknown
	}
	// Past the horizon nothing is known. Before it, a walk that stopped
	// early means no business day is left in the year.
	if !a.complete && d.Year() > a.today().Year() {
		return kindUnknown
	}
	workday := a.workdays[d.Day()]
	switch {
	case workday && isWeekend(d):
		return kindCompensation
	case workday:
		return kindWorkday
	case isWeekend(d):
		return kindWeekend
	default:
		return kindHoliday
	}
}

// status describes the selected day.
func (a *App) status() string {
	if a.err != nil {
		return a.styles.Error.Render("Error: " + a.err.Error())
	}

	line := fmt.Sprintf("%s %s  %s",
		a.cursor.Format(time.DateOnly), a.cursor.Format("Mon"), a.dayKind(a.cursor))
	if a.nextFound {
		line += "  next: " + a.next.Format(time.DateOnly)
	}
	if a.considerNextYear {
		line += "  [next year]"
	}
	return a.styles.Status.Render(line)
}

// Cursor returns the selected day.
func (a *App) Cursor() time.Time {
	return a.cursor
}

// Month returns the first day of the displayed month.
func (a *App) Month() time.Time {
	return a.month
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}
