package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

func TestCalendarCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(calendarCmd.Commands()))
	for _, c := range calendarCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"import", "list", "show", "remove"}, names)
}

func TestCalendarImportCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "calendar", "import", "2024", "2025")

	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, mocks.calendar.imported)
	assert.Contains(t, out, "Imported 2024: 1 business days")
	assert.Contains(t, out, "Imported 2025: 1 business days")
}

func TestCalendarImportCmd_InvalidYearImportsNothing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "calendar", "import", "2024", "next")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid year "next"`)
	assert.Empty(t, mocks.calendar.imported)
}

func TestCalendarImportCmd_Failure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mocks.calendar.err = domain.ErrDataUnavailable

	_, err := execute(t, "calendar", "import", "2024")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Contains(t, err.Error(), "failed to import 2024")
}

func TestCalendarImportCmd_RequiresYear(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "calendar", "import")

	assert.Error(t, err)
}

func TestCalendarListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "calendar", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Imported years:")
	assert.Contains(t, out, "  2023\n")
}

func TestCalendarListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mocks.calendar.years = map[int]domain.WorkdayList{}

	out, err := execute(t, "calendar", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No calendars imported.")
}

func TestCalendarShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "calendar", "show", "2023")

	require.NoError(t, err)
	assert.Contains(t, out, "2023: 6 business days")
	assert.Contains(t, out, "  2023-09  27 28\n")
	assert.Contains(t, out, "  2023-10  07 08 09 10\n")
}

func TestCalendarShowCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "calendar", "show", "2023", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"20230927"`)
	assert.NotContains(t, out, "business days")
}

func TestCalendarShowCmd_NotImported(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "calendar", "show", "2030")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calendar imported for 2030")
}

func TestCalendarRemoveCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "calendar", "remove", "2023")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed 2023")
	assert.Empty(t, mocks.calendar.years)
}

func TestCalendarRemoveCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "calendar", "remove", "2030")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calendar imported for 2030")

	mocks.calendar.err = errors.New("database is locked")
	_, err = execute(t, "calendar", "remove", "2023")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestCalendarCmds_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(Services{})

	for _, args := range [][]string{
		{"calendar", "import", "2024"},
		{"calendar", "list"},
		{"calendar", "show", "2024"},
		{"calendar", "remove", "2024"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, "args %v", args)
		assert.Contains(t, err.Error(), "calendar service not configured")
	}
}

func TestParseYear(t *testing.T) {
	year, err := parseYear("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	for _, bad := range []string{"", "0", "10000", "24.0", "twenty"} {
		_, err := parseYear(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
