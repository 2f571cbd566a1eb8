// Package period computes the calendar query windows the reporting services
// filter on.
package period

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidFormat is returned when a period string cannot be read as
// "YYYY-MM".
var ErrInvalidFormat = errors.New("invalid period format")

// Range is a calendar query window. Whether End is inclusive or exclusive
// depends on how the range was built: MonthRange produces a half-open
// [Start, End), YearRange an inclusive [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

// MonthRange resolves an optional "YYYY-MM" string into the half-open window
// [first of month, first of next month) plus the normalized zero-padded form.
// An empty month defaults to the calendar month of now.
//
// Out-of-range numeric months (e.g. "2025-13") roll over through date
// arithmetic instead of failing; only non-numeric input is rejected.
func MonthRange(month string, now time.Time) (Range, string, error) {
	year, mon := now.Year(), int(now.Month())

	if month != "" {
		if len(month) < 7 {
			return Range{}, "", fmt.Errorf("%w: %q", ErrInvalidFormat, month)
		}

		var err error

		year, err = strconv.Atoi(month[:4])
		if err != nil {
			return Range{}, "", fmt.Errorf("%w: %q", ErrInvalidFormat, month)
		}

		mon, err = strconv.Atoi(month[5:7])
		if err != nil {
			return Range{}, "", fmt.Errorf("%w: %q", ErrInvalidFormat, month)
		}
	}

	start := time.Date(year, time.Month(mon), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	normalized := fmt.Sprintf("%04d-%02d", start.Year(), int(start.Month()))

	return Range{Start: start, End: end}, normalized, nil
}

// YearRange returns the inclusive window [Jan 1 00:00:00, Dec 31 23:59:59.999]
// of the given year. Note the closed upper bound; settlement queries match
// with <= on this range.
func YearRange(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
	}
}
