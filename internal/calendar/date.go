// Package calendar handles calendar days without time-of-day: tolerant parsing,
// safe construction and the month grid arithmetic used by the date picker.
//
// Months are zero-based (0 = January) throughout the package.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hy4ri/datepick/internal/debuglog"
)

const (
	minYear = 1
	maxYear = 9999

	// minParsedYear bounds the years accepted from strings; years at or
	// below it are rejected in both string forms.
	minParsedYear = 1900
)

// Date is a single calendar day. The zero value is not a valid date;
// values are obtained from Make, Parse or FromTime.
type Date struct {
	year  int
	month int
	day   int
}

// Make builds the date for (year, month, day). It reports false when the
// triple is not a real calendar day, e.g. February 30 or month 12.
func Make(year, month, day int) (Date, bool) {
	if year < minYear || year > maxYear || month < 0 || month > 11 {
		debuglog.Printf("calendar: invalid date %d/%d/%d", month+1, day, year)
		return Date{}, false
	}
	if day < 1 || day > DaysInMonth(month, year) {
		debuglog.Printf("calendar: invalid date %d/%d/%d", month+1, day, year)
		return Date{}, false
	}
	return Date{year: year, month: month, day: day}, true
}

// FromTime returns the calendar day of t in t's own location.
// The time-of-day is dropped.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: int(m) - 1, day: d}
}

// Parse accepts a time.Time, a Date, pointers to either, or a string in
// "M/D/YYYY" (or "YYYY-MM-DD") form. Empty, nil, out-of-range and malformed
// input all report false.
func Parse(input any) (Date, bool) {
	switch v := input.(type) {
	case nil:
		return Date{}, false
	case string:
		return parseString(v)
	case time.Time:
		if v.IsZero() {
			return Date{}, false
		}
		d := FromTime(v)
		return Make(d.year, d.month, d.day)
	case *time.Time:
		if v == nil {
			return Date{}, false
		}
		return Parse(*v)
	case Date:
		return Make(v.year, v.month, v.day)
	case *Date:
		if v == nil {
			return Date{}, false
		}
		return Make(v.year, v.month, v.day)
	default:
		return Date{}, false
	}
}

func parseString(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	if strings.Contains(s, "-") {
		t, err := time.Parse("2006-01-02", s)
		if err != nil || t.Year() <= minParsedYear {
			return Date{}, false
		}
		return Make(t.Year(), int(t.Month())-1, t.Day())
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Date{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, false
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 || year <= minParsedYear {
		return Date{}, false
	}
	return Make(year, month-1, day)
}

// Year returns the four-digit year.
func (d Date) Year() int { return d.year }

// Month returns the zero-based month.
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight of d in loc. A nil loc means time.Local.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, time.Month(d.month+1), d.day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(d.month - o.month)
	default:
		return sign(d.day - o.day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// SameMonth reports whether d falls in the given month and year.
func (d Date) SameMonth(month, year int) bool {
	return d.month == month && d.year == year
}

// AddDays returns d shifted by n days. It reports false when the result
// falls outside the representable years.
func (d Date) AddDays(n int) (Date, bool) {
	return Parse(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week, 0 = Sunday.
func (d Date) Weekday() int {
	return int(d.Time(time.UTC).Weekday())
}

// String formats d as M/D/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%04d", d.month+1, d.day, d.year)
}

// ISO formats d as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month+1, d.day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
