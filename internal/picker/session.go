package picker

import "github.com/hy4ri/datepick/internal/calendar"

// Session is the state of one open picker. It is created on open and
// dropped on close.
type Session struct {
	View ViewState

	temp    calendar.Date
	hasTemp bool

	bounds calendar.Bounds
	clock  calendar.Clock
}

// NewSession seeds a session from the caller's value, or today when there
// is none. The seed becomes the provisional selection only if it lies
// within bounds.
func NewSession(value *calendar.Date, bounds calendar.Bounds, clock calendar.Clock) *Session {
	if clock == nil {
		clock = calendar.RealClock{}
	}

	seed, ok := calendar.Parse(value)
	if !ok {
		seed = calendar.Today(clock)
	}

	s := &Session{
		View:   newViewState(seed),
		bounds: bounds,
		clock:  clock,
	}
	if bounds.Contains(seed) {
		s.temp, s.hasTemp = seed, true
	}
	return s
}

// Temp returns the provisional selection.
func (s *Session) Temp() (calendar.Date, bool) {
	return s.temp, s.hasTemp
}

// Bounds returns the selectable range.
func (s *Session) Bounds() calendar.Bounds {
	return s.bounds
}

// SetBounds replaces the selectable range. A provisional selection outside
// the new range is dropped.
func (s *Session) SetBounds(b calendar.Bounds) {
	s.bounds = b
	if s.hasTemp && !b.Contains(s.temp) {
		s.temp, s.hasTemp = calendar.Date{}, false
	}
}

// dateFor builds the date of day in the viewed month.
func (s *Session) dateFor(day int) (calendar.Date, bool) {
	return calendar.Make(s.View.Year, s.View.Month, day)
}

// IsDisabled reports whether day of the viewed month cannot be selected:
// it does not exist or lies outside the bounds.
func (s *Session) IsDisabled(day int) bool {
	d, ok := s.dateFor(day)
	if !ok {
		return true
	}
	return !s.bounds.Contains(d)
}

// Select makes day of the viewed month the provisional selection.
// Disabled days are ignored. The view does not change.
func (s *Session) Select(day int) bool {
	if s.IsDisabled(day) {
		return false
	}
	s.temp, _ = s.dateFor(day)
	s.hasTemp = true
	return true
}

// IsSelected reports whether day of the viewed month is the provisional selection.
func (s *Session) IsSelected(day int) bool {
	return s.hasTemp && s.temp.SameMonth(s.View.Month, s.View.Year) && s.temp.Day() == day
}

// IsToday reports whether day of the viewed month is today.
func (s *Session) IsToday(day int) bool {
	today := calendar.Today(s.clock)
	return today.SameMonth(s.View.Month, s.View.Year) && today.Day() == day
}

// IsMonthDisabled reports whether no day of month in the viewed year is selectable.
func (s *Session) IsMonthDisabled(month int) bool {
	first, ok := calendar.Make(s.View.Year, month, 1)
	if !ok {
		return true
	}
	last, _ := calendar.Make(s.View.Year, month, calendar.DaysInMonth(month, s.View.Year))
	return !s.overlaps(first, last)
}

// IsYearDisabled reports whether no day of year is selectable.
func (s *Session) IsYearDisabled(year int) bool {
	first, ok := calendar.Make(year, 0, 1)
	if !ok {
		return true
	}
	last, _ := calendar.Make(year, 11, 31)
	return !s.overlaps(first, last)
}

func (s *Session) overlaps(first, last calendar.Date) bool {
	if lo, ok := s.bounds.Min(); ok && last.Before(lo) {
		return false
	}
	if hi, ok := s.bounds.Max(); ok && first.After(hi) {
		return false
	}
	return true
}

// Indicator returns where the selection marker belongs: the grid position
// of the provisional selection when it lies in the viewed month.
func (s *Session) Indicator() (calendar.Position, bool) {
	if !s.hasTemp || !s.temp.SameMonth(s.View.Month, s.View.Year) {
		return calendar.Position{}, false
	}
	return s.View.Grid().Position(s.temp.Day()), true
}

// MoveSelection moves the provisional selection by delta days, following it
// into the neighbouring month when needed. Without a visible selection the
// move starts from the first selectable day of the viewed month. Targets
// outside the bounds are refused.
func (s *Session) MoveSelection(delta int) bool {
	from, ok := s.anchor()
	if !ok {
		return false
	}

	to := from
	if s.hasTemp && s.temp.SameMonth(s.View.Month, s.View.Year) {
		if to, ok = from.AddDays(delta); !ok {
			return false
		}
	}
	if !s.bounds.Contains(to) {
		return false
	}

	s.View.Show(to)
	s.temp, s.hasTemp = to, true
	return true
}

func (s *Session) anchor() (calendar.Date, bool) {
	if s.hasTemp && s.temp.SameMonth(s.View.Month, s.View.Year) {
		return s.temp, true
	}
	days := calendar.DaysInMonth(s.View.Month, s.View.Year)
	for day := 1; day <= days; day++ {
		if !s.IsDisabled(day) {
			return s.dateFor(day)
		}
	}
	return calendar.Date{}, false
}

// JumpToToday shows today's month and selects today when it is within
// bounds. Nothing is confirmed.
func (s *Session) JumpToToday() bool {
	today := calendar.Today(s.clock)
	s.View.Mode = ModeDays
	s.View.Show(today)
	s.View.RangeStart = RangeStartFor(today.Year())
	if !s.bounds.Contains(today) {
		return false
	}
	s.temp, s.hasTemp = today, true
	return true
}
