package domain

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"time"
)

// CodeLayout is the time layout of a BusinessDayCode.
const CodeLayout = "20060102"

// BusinessDayCode identifies a calendar date as YYYYMMDD.
// Ordering codes as strings orders the dates chronologically.
type BusinessDayCode string

// DateToCode converts a date to its code.
// Only the year, month and day of t are read; the clock and location are ignored.
func DateToCode(t time.Time) BusinessDayCode {
	return BusinessDayCode(fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day()))
}

// CodeToDate converts a code to midnight UTC of its date.
// Returns the zero time for a malformed code.
func CodeToDate(c BusinessDayCode) time.Time {
	t, err := time.Parse(CodeLayout, string(c))
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseCode validates s as a BusinessDayCode.
func ParseCode(s string) (BusinessDayCode, error) {
	if len(s) != len(CodeLayout) {
		return "", fmt.Errorf("%w: business day code %q must be YYYYMMDD", ErrInvalidInput, s)
	}
	t, err := time.Parse(CodeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: business day code %q: %v", ErrInvalidInput, s, err)
	}
	return DateToCode(t), nil
}

// ParseDate parses a calendar date written as YYYY-MM-DD or YYYYMMDD.
// The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	layout := time.DateOnly
	if len(s) == len(CodeLayout) {
		layout = CodeLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or YYYYMMDD", ErrInvalidInput, s)
	}
	return t, nil
}

// Year returns the year encoded in the code, or 0 if malformed.
func (c BusinessDayCode) Year() int {
	if len(c) < 4 {
		return 0
	}
	year, err := strconv.Atoi(string(c[:4]))
	if err != nil {
		return 0
	}
	return year
}

// Date returns the code as a date.
func (c BusinessDayCode) Date() time.Time {
	return CodeToDate(c)
}

// String returns the string representation.
func (c BusinessDayCode) String() string {
	return string(c)
}

// Codec implements the date/code conversions of a calendar source.
// Calendar adapters embed it.
type Codec struct{}

// DateToCode converts a date to its code.
func (Codec) DateToCode(t time.Time) BusinessDayCode {
	return DateToCode(t)
}

// CodeToDate converts a code to a date.
func (Codec) CodeToDate(c BusinessDayCode) time.Time {
	return CodeToDate(c)
}

// WorkdayList is the ascending, duplicate-free list of business days of one year.
// Lists are replaced, never modified in place.
type WorkdayList []BusinessDayCode

// NewWorkdayList builds a list for year from codes in any order.
// Duplicates are dropped.
func NewWorkdayList(year int, codes []BusinessDayCode) (WorkdayList, error) {
	list := make(WorkdayList, len(codes))
	copy(list, codes)
	slices.Sort(list)
	list = slices.Compact(list)

	if err := list.Validate(year); err != nil {
		return nil, err
	}
	return list, nil
}

// Year returns the year of the first business day, or 0 for an empty list.
func (l WorkdayList) Year() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Year()
}

// Search returns the index of the first business day on or after code.
// The bool is false when every business day in the list is before code.
func (l WorkdayList) Search(code BusinessDayCode) (int, bool) {
	i := sort.Search(len(l), func(i int) bool { return l[i] >= code })
	return i, i < len(l)
}

// IndexOf returns the position of code, or -1 if it is not a business day in the list.
func (l WorkdayList) IndexOf(code BusinessDayCode) int {
	i, ok := l.Search(code)
	if !ok || l[i] != code {
		return -1
	}
	return i
}

// Contains reports whether code is a business day in the list.
func (l WorkdayList) Contains(code BusinessDayCode) bool {
	return l.IndexOf(code) >= 0
}

// Validate checks that the list is non-empty, strictly ascending, and
// contains only well-formed codes of the given year.
func (l WorkdayList) Validate(year int) error {
	if len(l) == 0 {
		return fmt.Errorf("%w: no business days for %d", ErrInvalidInput, year)
	}
	for i, code := range l {
		if _, err := ParseCode(string(code)); err != nil {
			return err
		}
		if code.Year() != year {
			return fmt.Errorf("%w: business day %s is not in %d", ErrInvalidInput, code, year)
		}
		if i > 0 && l[i-1] >= code {
			return fmt.Errorf("%w: business days not strictly ascending at %s", ErrInvalidInput, code)
		}
	}
	return nil
}
