package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateToCode(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want BusinessDayCode
	}{
		{"ordinary date", time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), "20230215"},
		{"clock is ignored", time.Date(2023, 5, 1, 23, 59, 59, 0, time.UTC), "20230501"},
		{"location is ignored", time.Date(2023, 12, 31, 22, 0, 0, 0, time.FixedZone("CST", 8*3600)), "20231231"},
		{"leap day", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "20240229"},
		{"small year is zero padded", time.Date(987, 1, 2, 0, 0, 0, 0, time.UTC), "09870102"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateToCode(tt.date))
		})
	}
}

func TestCodeToDate_RoundTrip(t *testing.T) {
	start := time.Date(2019, 12, 25, 0, 0, 0, 0, time.UTC)
	for d := start; d.Before(start.AddDate(5, 0, 0)); d = d.AddDate(0, 0, 1) {
		got := CodeToDate(DateToCode(d))
		require.True(t, got.Equal(d), "round trip of %s gave %s", d, got)
	}
}

func TestCodeToDate_Malformed(t *testing.T) {
	assert.True(t, CodeToDate("2023-01-01").IsZero())
	assert.True(t, CodeToDate("").IsZero())
	assert.True(t, CodeToDate("20230230").IsZero())
}

func TestParseCode(t *testing.T) {
	code, err := ParseCode("20230506")
	require.NoError(t, err)
	assert.Equal(t, BusinessDayCode("20230506"), code)

	for _, bad := range []string{"", "2023056", "2023-05-06", "20231301", "20230229", "abcdefgh"} {
		_, err := ParseCode(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024-02-29", "20240229"} {
		got, err := ParseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, want.Equal(got), "input %q", in)
	}

	for _, bad := range []string{"", "2023-02-29", "29/02/2024", "2024-2-29", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}
}

func TestBusinessDayCode_Year(t *testing.T) {
	assert.Equal(t, 2023, BusinessDayCode("20230101").Year())
	assert.Equal(t, 0, BusinessDayCode("").Year())
	assert.Equal(t, 0, BusinessDayCode("x0230101").Year())
}

func TestBusinessDayCode_OrderingMatchesChronology(t *testing.T) {
	a := DateToCode(time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC))
	b := DateToCode(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC))
	c := DateToCode(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Less(t, string(a), string(b))
	assert.Less(t, string(b), string(c))
}

func TestCodec(t *testing.T) {
	var c Codec
	d := time.Date(2023, 5, 6, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, BusinessDayCode("20230506"), c.DateToCode(d))
	assert.True(t, c.CodeToDate("20230506").Equal(d))
}

func TestNewWorkdayList(t *testing.T) {
	t.Run("sorts and drops duplicates", func(t *testing.T) {
		list, err := NewWorkdayList(2023, []BusinessDayCode{"20230105", "20230103", "20230104", "20230103"})
		require.NoError(t, err)
		assert.Equal(t, WorkdayList{"20230103", "20230104", "20230105"}, list)
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []BusinessDayCode{"20230105", "20230103"}
		_, err := NewWorkdayList(2023, in)
		require.NoError(t, err)
		assert.Equal(t, []BusinessDayCode{"20230105", "20230103"}, in)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewWorkdayList(2023, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects other year", func(t *testing.T) {
		_, err := NewWorkdayList(2023, []BusinessDayCode{"20230103", "20240102"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, err := NewWorkdayList(2023, []BusinessDayCode{"2023-01-03"})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestWorkdayList_Search(t *testing.T) {
	list := WorkdayList{"20230428", "20230504", "20230505", "20230506"}

	tests := []struct {
		name      string
		code      BusinessDayCode
		wantIndex int
		wantFound bool
	}{
		{"exact match", "20230504", 1, true},
		{"holiday resolves to next business day", "20230501", 1, true},
		{"before first", "20230101", 0, true},
		{"compensation saturday", "20230506", 3, true},
		{"after last", "20230507", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, found := list.Search(tt.code)
			assert.Equal(t, tt.wantIndex, i)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestWorkdayList_IndexOfAndContains(t *testing.T) {
	list := WorkdayList{"20230428", "20230504"}

	assert.Equal(t, 1, list.IndexOf("20230504"))
	assert.Equal(t, -1, list.IndexOf("20230501"))
	assert.Equal(t, -1, list.IndexOf("20231231"))
	assert.True(t, list.Contains("20230428"))
	assert.False(t, list.Contains("20230429"))
}

func TestWorkdayList_Year(t *testing.T) {
	assert.Equal(t, 0, WorkdayList(nil).Year())
	assert.Equal(t, 2023, WorkdayList{"20230103"}.Year())
}

func TestWorkdayList_Validate(t *testing.T) {
	assert.NoError(t, WorkdayList{"20230103", "20230104"}.Validate(2023))
	assert.ErrorIs(t, WorkdayList{"20230104", "20230103"}.Validate(2023), ErrInvalidInput)
	assert.ErrorIs(t, WorkdayList{"20230103", "20230103"}.Validate(2023), ErrInvalidInput)
	assert.ErrorIs(t, WorkdayList{}.Validate(2023), ErrInvalidInput)
}
