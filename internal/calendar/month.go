package calendar

import "time"

// DaysInMonth returns the number of days in the zero-based month of year,
// or 0 for a month outside 0..11.
func DaysInMonth(month, year int) int {
	if month < 0 || month > 11 {
		return 0
	}
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the 1st, 0 = Sunday.
func FirstWeekdayOfMonth(month, year int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Position is the place of a day in the 7-column month grid.
type Position struct {
	Column int
	Row    int
}

// Grid is the layout of one month: Leading blank cells followed by days 1..Days.
type Grid struct {
	Month   int
	Year    int
	Leading int
	Days    int
}

// NewGrid computes the grid for the zero-based month of year.
func NewGrid(month, year int) Grid {
	return Grid{
		Month:   month,
		Year:    year,
		Leading: FirstWeekdayOfMonth(month, year),
		Days:    DaysInMonth(month, year),
	}
}

// Cells returns the flat cell sequence; blanks are 0.
func (g Grid) Cells() []int {
	cells := make([]int, g.Leading+g.Days)
	for d := 1; d <= g.Days; d++ {
		cells[g.Leading+d-1] = d
	}
	return cells
}

// Rows returns the number of week rows the month occupies.
func (g Grid) Rows() int {
	return (g.Leading + g.Days + 6) / 7
}

// Position places day in the grid.
func (g Grid) Position(day int) Position {
	index := g.Leading + day - 1
	return Position{Column: index % 7, Row: index / 7}
}

// DayAt is the inverse of Position. It reports false for blank cells and
// coordinates outside the grid.
func (g Grid) DayAt(column, row int) (int, bool) {
	if column < 0 || column > 6 || row < 0 {
		return 0, false
	}
	day := row*7 + column - g.Leading + 1
	if day < 1 || day > g.Days {
		return 0, false
	}
	return day, true
}
