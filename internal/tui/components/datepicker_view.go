package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/picker"
	"github.com/hy4ri/datepick/internal/picker/anim"
	"github.com/hy4ri/datepick/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// Dialog body geometry, in lines from the top of the content area.
const (
	titleLine   = 0
	headerLine  = 2
	weekdayLine = 4
	gridLine    = 5
	gridRows    = 6 // day rows reserved so the dialog never changes height
	bodyLines   = gridLine + gridRows

	monthColumns = 3
	monthRows    = 4

	minCellWidth = 4
	maxCellWidth = 6
)

// pickerLayout is the geometry of the open dialog for the current terminal size.
type pickerLayout struct {
	cell int
}

func (p *DatePicker) layout() pickerLayout {
	cell := (p.size.Width - 10) / 7
	if cell < minCellWidth {
		cell = minCellWidth
	}
	if cell > maxCellWidth {
		cell = maxCellWidth
	}
	return pickerLayout{cell: cell}
}

func (l pickerLayout) gridWidth() int { return 7 * l.cell }

func (l pickerLayout) wideCell() int { return l.gridWidth() / monthColumns }

// anim returns the indicator geometry: one grid row per line, columns of
// cell width, offsets relative to the first day row.
func (l pickerLayout) anim() anim.Layout {
	return anim.Layout{CellWidth: l.cell, CellHeight: 1}
}

// View implements Component. A closed controlled picker renders nothing; a
// closed wrapper renders its trigger; an open picker renders the dialog
// centred on the terminal.
func (p *DatePicker) View() string {
	s := p.ctrl.Session()
	if s == nil {
		if p.ctrl.Kind() == picker.KindWrapper {
			d, ok := p.ctrl.Value()
			return p.trigger(d, ok, p.focused)
		}
		return ""
	}
	return lipgloss.Place(p.size.Width, p.size.Height, lipgloss.Center, lipgloss.Center, p.renderDialog(s))
}

func (p *DatePicker) defaultTrigger(d calendar.Date, ok, focused bool) string {
	text := p.labels.T("NoSelection")
	if ok {
		text = d.String()
	}
	box := styles.Input
	if focused {
		box = styles.InputFocused
	}
	return styles.InputLabel.Render(p.ctrl.Title()) + "\n" + box.Render("📅 "+text)
}

func (p *DatePicker) renderDialog(s *picker.Session) string {
	l := p.layout()
	width := l.gridWidth()

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(runewidth.Truncate(p.ctrl.Title(), width, "…")))
	b.WriteString("\n\n")
	b.WriteString(p.renderHeader(s, width))
	b.WriteString("\n\n")

	var body []string
	switch s.View.Mode {
	case picker.ModeMonths:
		body = p.renderMonths(s, l)
	case picker.ModeYears:
		body = p.renderYears(s, l)
	default:
		body = p.renderDays(s, l)
	}
	for len(body) < bodyLines-weekdayLine {
		body = append(body, "")
	}
	b.WriteString(strings.Join(body, "\n"))
	b.WriteString("\n\n")

	if s.View.Mode == picker.ModeDays {
		p.keys.Confirm.SetHelp("enter", p.labels.T("HelpConfirm"))
	} else {
		p.keys.Confirm.SetHelp("enter", p.labels.T("HelpSelect"))
	}
	b.WriteString(p.help.View(p.keys))

	return styles.Dialog.Render(b.String())
}

// renderHeader renders "‹ label ›"; the label is the mode toggle.
func (p *DatePicker) renderHeader(s *picker.Session, width int) string {
	var label string
	switch s.View.Mode {
	case picker.ModeMonths:
		label = strconv.Itoa(s.View.Year)
	case picker.ModeYears:
		years := s.View.YearRange()
		label = fmt.Sprintf("%d-%d", years[0], years[len(years)-1])
	default:
		label = p.labels.Month(s.View.Month) + " " + strconv.Itoa(s.View.Year)
	}
	middle := styles.CalendarHeader.Width(width - 2).Render(label)
	return styles.HelpKey.Render("‹") + middle + styles.HelpKey.Render("›")
}

func (p *DatePicker) renderDays(s *picker.Session, l pickerLayout) []string {
	lines := make([]string, 0, 1+gridRows)

	var wd strings.Builder
	for i := 0; i < 7; i++ {
		wd.WriteString(styles.CalendarWeekday.Render(center(p.labels.Weekday(i), l.cell)))
	}
	lines = append(lines, wd.String())

	grid := s.View.Grid()
	cells := grid.Cells()
	marker, markerOK := p.markerCell(l)
	st := p.anim.State()

	for row := 0; row < grid.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < 7; col++ {
			day := 0
			if i := row*7 + col; i < len(cells) {
				day = cells[i]
			}
			text := strings.Repeat(" ", l.cell)
			style := styles.CalendarDay
			if day > 0 {
				text = center(fmt.Sprintf("%2d", day), l.cell)
				switch {
				case s.IsDisabled(day):
					style = styles.CalendarDayDisabled
				case s.IsToday(day):
					style = styles.CalendarDayToday
				case col == 0 || col == 6:
					style = styles.CalendarDayWeekend
				}
				if s.IsSelected(day) {
					style = style.Bold(true)
				}
			}

			if markerOK && marker == (calendar.Position{Column: col, Row: row}) {
				line.WriteString(renderMarker(text, style, st))
				continue
			}
			line.WriteString(style.Render(text))
		}
		lines = append(lines, line.String())
	}
	return lines
}

// markerCell returns the grid cell the animated indicator currently covers.
func (p *DatePicker) markerCell(l pickerLayout) (calendar.Position, bool) {
	st := p.anim.State()
	if st.Opacity <= 0 {
		return calendar.Position{}, false
	}
	al := l.anim()
	col := int(math.Round((st.X - float64(al.PadX)) / float64(al.CellWidth)))
	row := int(math.Round((st.Y - float64(al.PadY)) / float64(al.CellHeight)))
	if col < 0 || col > 6 || row < 0 || row >= gridRows {
		return calendar.Position{}, false
	}
	return calendar.Position{Column: col, Row: row}, true
}

// renderMarker paints the indicator behind a cell. A pulsing marker shrinks
// to the text itself.
func renderMarker(text string, base lipgloss.Style, st anim.State) string {
	marker := base.Bold(true).Background(styles.IndicatorColor(st.Opacity))
	if st.Scale >= 0.95 {
		return marker.Render(text)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return marker.Render(text)
	}
	left := strings.Index(text, trimmed)
	right := len(text) - left - len(trimmed)
	return strings.Repeat(" ", left) + marker.Render(trimmed) + strings.Repeat(" ", right)
}

func (p *DatePicker) renderMonths(s *picker.Session, l pickerLayout) []string {
	lines := []string{""}
	temp, hasTemp := s.Temp()
	for row := 0; row < monthRows; row++ {
		var line strings.Builder
		for col := 0; col < monthColumns; col++ {
			m := row*monthColumns + col
			style := styles.CalendarDay
			switch {
			case m == s.View.Month:
				style = styles.CalendarCursor
			case s.IsMonthDisabled(m):
				style = styles.CalendarDayDisabled
			}
			if hasTemp && temp.SameMonth(m, s.View.Year) {
				style = style.Bold(true)
			}
			line.WriteString(style.Render(center(p.labels.ShortMonth(m), l.wideCell())))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func (p *DatePicker) renderYears(s *picker.Session, l pickerLayout) []string {
	lines := []string{""}
	temp, hasTemp := s.Temp()
	years := s.View.YearRange()
	for row := 0; row < monthRows; row++ {
		var line strings.Builder
		for col := 0; col < monthColumns; col++ {
			y := years[row*monthColumns+col]
			style := styles.CalendarDay
			switch {
			case y == s.View.Year:
				style = styles.CalendarCursor
			case s.IsYearDisabled(y):
				style = styles.CalendarDayDisabled
			}
			if hasTemp && temp.Year() == y {
				style = style.Bold(true)
			}
			line.WriteString(style.Render(center(strconv.Itoa(y), l.wideCell())))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

type hitTarget int

const (
	hitNone hitTarget = iota
	hitBackdrop
	hitPrev
	hitNext
	hitHeader
	hitDay
	hitMonth
	hitYear
)

type hit struct {
	target hitTarget
	value  int
}

// hitTest maps a terminal cell to the part of the dialog under it. The
// dialog is laid out exactly as View places it.
func (p *DatePicker) hitTest(s *picker.Session, x, y int) hit {
	l := p.layout()
	dialog := p.renderDialog(s)
	dw, dh := lipgloss.Width(dialog), lipgloss.Height(dialog)
	dx, dy := max(0, (p.size.Width-dw)/2), max(0, (p.size.Height-dh)/2)

	if x < dx || x >= dx+dw || y < dy || y >= dy+dh {
		return hit{target: hitBackdrop}
	}

	cx := x - dx - styles.Dialog.GetBorderLeftSize() - styles.Dialog.GetPaddingLeft()
	cy := y - dy - styles.Dialog.GetBorderTopSize() - styles.Dialog.GetPaddingTop()
	width := l.gridWidth()
	if cx < 0 || cx >= width {
		return hit{}
	}

	switch {
	case cy == headerLine:
		switch {
		case cx == 0:
			return hit{target: hitPrev}
		case cx == width-1:
			return hit{target: hitNext}
		}
		return hit{target: hitHeader}
	case cy == titleLine:
		return hit{}
	}

	switch s.View.Mode {
	case picker.ModeDays:
		row := cy - gridLine
		if day, ok := s.View.Grid().DayAt(cx/l.cell, row); ok {
			return hit{target: hitDay, value: day}
		}
	case picker.ModeMonths, picker.ModeYears:
		row := cy - gridLine
		col := cx / l.wideCell()
		if row < 0 || row >= monthRows || col >= monthColumns {
			return hit{}
		}
		idx := row*monthColumns + col
		if s.View.Mode == picker.ModeMonths {
			return hit{target: hitMonth, value: idx}
		}
		return hit{target: hitYear, value: s.View.RangeStart + idx}
	}
	return hit{}
}
