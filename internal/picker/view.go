// Package picker is the input-agnostic core of the date picker: the
// Days/Months/Years view state machine, the provisional selection with its
// bounds, and the controller that opens, confirms and cancels a session.
//
// Every transition is synchronous and returns the list of side effects
// (haptics, indicator updates, open/close notifications) for a runner to
// execute, so the core stays deterministic.
package picker

import "github.com/hy4ri/datepick/internal/calendar"

// Mode is the picker currently displayed.
type Mode int

const (
	ModeDays Mode = iota
	ModeMonths
	ModeYears
)

// YearsPerPage is the size of the Years view window.
const YearsPerPage = 12

func (m Mode) String() string {
	switch m {
	case ModeDays:
		return "days"
	case ModeMonths:
		return "months"
	case ModeYears:
		return "years"
	default:
		return "unknown"
	}
}

// ViewState is what the picker shows: the mode, the viewed month and year,
// and the first year of the Years window.
type ViewState struct {
	Mode       Mode
	Year       int
	Month      int
	RangeStart int
}

// RangeStartFor floors year to a multiple of YearsPerPage.
func RangeStartFor(year int) int {
	return floorDiv(year, YearsPerPage) * YearsPerPage
}

func newViewState(d calendar.Date) ViewState {
	return ViewState{
		Mode:       ModeDays,
		Year:       d.Year(),
		Month:      d.Month(),
		RangeStart: RangeStartFor(d.Year()),
	}
}

// Grid returns the month grid of the viewed month.
func (v ViewState) Grid() calendar.Grid {
	return calendar.NewGrid(v.Month, v.Year)
}

// YearRange lists the 12 years of the Years window.
func (v ViewState) YearRange() []int {
	years := make([]int, YearsPerPage)
	for i := range years {
		years[i] = v.RangeStart + i
	}
	return years
}

// ToggleMode cycles Days -> Months -> Years -> Days. The viewed month and
// year are kept; entering Years re-centres the window on the viewed year.
func (v *ViewState) ToggleMode() {
	switch v.Mode {
	case ModeDays:
		v.Mode = ModeMonths
	case ModeMonths:
		v.Mode = ModeYears
		v.RangeStart = RangeStartFor(v.Year)
	default:
		v.Mode = ModeDays
	}
}

// SelectMonth shows month in the Days view. Months outside 0..11 are ignored.
func (v *ViewState) SelectMonth(month int) bool {
	if month < 0 || month > 11 {
		return false
	}
	v.Month = month
	v.Mode = ModeDays
	return true
}

// SelectYear shows year in the Months view.
func (v *ViewState) SelectYear(year int) {
	v.Year = year
	v.Mode = ModeMonths
}

// Prev pages backwards: a month in Days, a year in Months, a window in Years.
func (v *ViewState) Prev() { v.page(-1) }

// Next pages forwards: a month in Days, a year in Months, a window in Years.
func (v *ViewState) Next() { v.page(1) }

func (v *ViewState) page(dir int) {
	switch v.Mode {
	case ModeDays:
		v.shiftMonth(dir)
	case ModeMonths:
		v.Year += dir
	case ModeYears:
		// The cursor keeps its slot in the window.
		v.RangeStart += dir * YearsPerPage
		v.Year += dir * YearsPerPage
	}
}

func (v *ViewState) shiftMonth(delta int) {
	total := v.Year*12 + v.Month + delta
	v.Year = floorDiv(total, 12)
	v.Month = total - v.Year*12
}

// Show moves the Days view to the month containing d.
func (v *ViewState) Show(d calendar.Date) {
	v.Year = d.Year()
	v.Month = d.Month()
}

// MoveCursor moves the highlighted month (Months view) or year (Years view)
// by delta. The Years window follows the cursor one page at a time.
func (v *ViewState) MoveCursor(delta int) {
	switch v.Mode {
	case ModeMonths:
		m := v.Month + delta
		if m < 0 || m > 11 {
			return
		}
		v.Month = m
	case ModeYears:
		v.Year += delta
		for v.Year < v.RangeStart {
			v.RangeStart -= YearsPerPage
		}
		for v.Year >= v.RangeStart+YearsPerPage {
			v.RangeStart += YearsPerPage
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
