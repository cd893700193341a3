package calendar

import "time"

// Bounds is an inclusive [Min, Max] range of selectable days.
// Either end may be absent.
type Bounds struct {
	min, max       Date
	hasMin, hasMax bool
}

// NewBounds builds bounds from anything Parse accepts. Unparsable ends are
// treated as absent.
func NewBounds(min, max any) Bounds {
	var b Bounds
	b.min, b.hasMin = Parse(min)
	b.max, b.hasMax = Parse(max)
	return b
}

// Min returns the lower bound, if any.
func (b Bounds) Min() (Date, bool) { return b.min, b.hasMin }

// Max returns the upper bound, if any.
func (b Bounds) Max() (Date, bool) { return b.max, b.hasMax }

// Contains reports whether d lies within the bounds.
func (b Bounds) Contains(d Date) bool {
	if b.hasMin && d.Before(b.min) {
		return false
	}
	if b.hasMax && d.After(b.max) {
		return false
	}
	return true
}

// Clock supplies the current time. It exists so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// Today returns the current day according to c. A nil clock uses RealClock.
func Today(c Clock) Date {
	if c == nil {
		c = RealClock{}
	}
	return FromTime(c.Now())
}
