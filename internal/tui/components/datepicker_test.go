package components

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/picker"
	"github.com/hy4ri/datepick/internal/tui/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "today" to 2024-06-10.
var fixedClock = calendar.ClockFunc(func() time.Time {
	return time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
})

type fakeHaptics struct {
	selections int
	impacts    int
}

func (f *fakeHaptics) Selection() { f.selections++ }
func (f *fakeHaptics) Impact()    { f.impacts++ }

func date(t *testing.T, s string) calendar.Date {
	t.Helper()
	d, ok := calendar.Parse(s)
	require.True(t, ok, s)
	return d
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// drain runs cmd and everything it batches or sequences, returning the
// messages in order. Frame ticks are dropped.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if _, ok := msg.(FrameMsg); ok {
		return nil
	}
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, drain(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, p *DatePicker, keys ...string) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	for _, k := range keys {
		_, cmd := p.Update(keyPress(k))
		out = append(out, drain(t, cmd)...)
	}
	return out
}

func click(t *testing.T, p *DatePicker, x, y int) []tea.Msg {
	t.Helper()
	_, cmd := p.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return drain(t, cmd)
}

func newControlled(t *testing.T, value string, h *fakeHaptics) *DatePicker {
	t.Helper()
	var selected *calendar.Date
	if value != "" {
		d := date(t, value)
		selected = &d
	}
	p := NewControlledPicker(ControlledPickerConfig{
		PickerOptions: PickerOptions{
			ID:      "start",
			Title:   "Start date",
			Bounds:  calendar.NewBounds("3/10/2024", "12/31/2024"),
			Clock:   fixedClock,
			Haptics: h,
			VimMode: true,
		},
		Selected: selected,
	})
	p.SetSize(80, 24)
	return p
}

func TestDatePicker_ControlledConfirm(t *testing.T) {
	h := &fakeHaptics{}
	p := newControlled(t, "3/15/2024", h)

	assert.Empty(t, drain(t, p.SetVisible(true)))
	require.True(t, p.IsOpen())

	press(t, p, "l")
	msgs := press(t, p, "enter")

	want := date(t, "3/16/2024")
	assert.Equal(t, []tea.Msg{
		DateSelectedMsg{ID: "start", Date: want},
		PickerClosedMsg{ID: "start"},
	}, msgs)
	assert.False(t, p.IsOpen())
	assert.Equal(t, 1, h.selections)
	assert.Equal(t, 1, h.impacts)

	// The host owns the value; until it stores the date, the old one stays.
	v, _ := p.Value()
	assert.Equal(t, "3/15/2024", v.String())
}

func TestDatePicker_CancelOnlyAsksToClose(t *testing.T) {
	h := &fakeHaptics{}
	p := newControlled(t, "3/15/2024", h)
	drain(t, p.SetVisible(true))

	press(t, p, "right", "right")
	msgs := press(t, p, "esc")

	assert.Equal(t, []tea.Msg{PickerClosedMsg{ID: "start"}}, msgs)
	assert.Zero(t, h.impacts)

	// Reopening shows the caller's value, not the abandoned edit.
	drain(t, p.SetVisible(false))
	drain(t, p.SetVisible(true))
	temp, ok := p.Controller().Session().Temp()
	require.True(t, ok)
	assert.Equal(t, "3/15/2024", temp.String())
}

func TestDatePicker_ClosedControlledIgnoresInput(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	assert.Empty(t, press(t, p, "enter", "l", "esc"))
	assert.False(t, p.IsOpen())
	assert.Empty(t, p.View())
}

func TestDatePicker_DisabledDayKeepsSelection(t *testing.T) {
	p := newControlled(t, "3/10/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))

	press(t, p, "h", "k")
	temp, ok := p.Controller().Session().Temp()
	require.True(t, ok)
	assert.Equal(t, "3/10/2024", temp.String())
}

func TestDatePicker_HeaderCycleAndDrillDown(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))
	s := p.Controller().Session()

	press(t, p, "tab")
	assert.Equal(t, picker.ModeMonths, s.View.Mode)
	assert.Contains(t, ansi.Strip(p.View()), "2024")

	press(t, p, "right", "down")
	assert.Equal(t, 6, s.View.Month)

	press(t, p, "enter")
	assert.Equal(t, picker.ModeDays, s.View.Mode)
	assert.Equal(t, 6, s.View.Month)
	assert.Contains(t, ansi.Strip(p.View()), "July 2024")

	press(t, p, "m", "m")
	assert.Equal(t, picker.ModeYears, s.View.Mode)
	assert.Contains(t, ansi.Strip(p.View()), "2016-2027")

	press(t, p, "]")
	assert.Equal(t, 2028, s.View.RangeStart)
	press(t, p, "[")
	assert.Equal(t, 2016, s.View.RangeStart)

	press(t, p, "tab")
	assert.Equal(t, picker.ModeDays, s.View.Mode)
	assert.Equal(t, 2024, s.View.Year)
	assert.Equal(t, 6, s.View.Month)
}

func TestDatePicker_YearsPagingSelectsVisibleYear(t *testing.T) {
	initial := date(t, "3/15/2024")
	p := NewWrapperPicker(WrapperPickerConfig{
		PickerOptions: PickerOptions{ID: "deadline", Clock: fixedClock},
		Initial:       &initial,
	})
	p.SetSize(80, 24)
	drain(t, p.Tap())
	s := p.Controller().Session()

	press(t, p, "tab", "tab", "]")
	require.Equal(t, picker.ModeYears, s.View.Mode)
	view := ansi.Strip(p.View())
	assert.Contains(t, view, "2028-2039")
	assert.Contains(t, view, "2036")
	assert.NotContains(t, view, "2024")
	assert.Contains(t, s.View.YearRange(), s.View.Year)

	press(t, p, "enter")
	assert.Equal(t, picker.ModeMonths, s.View.Mode)
	assert.Equal(t, 2036, s.View.Year)
}

func TestDatePicker_TodayDoesNotConfirm(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))

	assert.Empty(t, press(t, p, "t"))
	require.True(t, p.IsOpen())
	temp, ok := p.Controller().Session().Temp()
	require.True(t, ok)
	assert.Equal(t, "6/10/2024", temp.String())
}

func TestDatePicker_WrapperOpensFromTrigger(t *testing.T) {
	h := &fakeHaptics{}
	initial := date(t, "1/5/2024")
	p := NewWrapperPicker(WrapperPickerConfig{
		PickerOptions: PickerOptions{ID: "deadline", Title: "Deadline", Clock: fixedClock, Haptics: h},
		Initial:       &initial,
	})
	p.SetSize(80, 24)

	assert.Contains(t, ansi.Strip(p.View()), "1/5/2024")

	// Unfocused triggers ignore keys.
	assert.Empty(t, press(t, p, "enter"))
	assert.False(t, p.IsOpen())

	p.Focus()
	press(t, p, "enter")
	require.True(t, p.IsOpen())
	assert.Contains(t, ansi.Strip(p.View()), "January 2024")
	assert.Equal(t, 1, h.selections)

	press(t, p, "t")
	msgs := press(t, p, "enter")
	assert.Equal(t, []tea.Msg{DateSelectedMsg{ID: "deadline", Date: date(t, "6/10/2024")}}, msgs)
	assert.False(t, p.IsOpen())

	v, ok := p.Value()
	require.True(t, ok)
	assert.Equal(t, "6/10/2024", v.String())
	assert.Contains(t, ansi.Strip(p.View()), "6/10/2024")
}

func TestDatePicker_WrapperCustomCallback(t *testing.T) {
	type picked struct{ iso string }
	p := NewWrapperPicker(WrapperPickerConfig{
		PickerOptions: PickerOptions{Clock: fixedClock},
		OnDateSelect:  func(d calendar.Date) tea.Msg { return picked{d.ISO()} },
		Trigger: func(d calendar.Date, ok, focused bool) string {
			return "[custom]"
		},
	})
	assert.Equal(t, "[custom]", p.View())

	drain(t, p.Tap())
	msgs := press(t, p, "enter")
	assert.Equal(t, []tea.Msg{picked{"2024-06-10"}}, msgs)
}

// findHit scans the screen for the first cell that hits target with value.
func findHit(t *testing.T, p *DatePicker, target hitTarget, value int) (int, int) {
	t.Helper()
	s := p.Controller().Session()
	require.NotNil(t, s)
	for y := 0; y < p.size.Height; y++ {
		for x := 0; x < p.size.Width; x++ {
			if h := p.hitTest(s, x, y); h.target == target && h.value == value {
				return x, y
			}
		}
	}
	t.Fatalf("no cell hits %v/%d", target, value)
	return 0, 0
}

func TestDatePicker_ClickSelectsDay(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))

	x, y := findHit(t, p, hitDay, 20)

	// The cell under the click shows that day.
	lines := strings.Split(ansi.Strip(p.View()), "\n")
	require.Less(t, y, len(lines))
	row := []rune(lines[y])
	require.LessOrEqual(t, x+p.layout().cell, len(row))
	assert.Contains(t, string(row[x:x+p.layout().cell]), "20")

	assert.Empty(t, click(t, p, x, y))
	temp, _ := p.Controller().Session().Temp()
	assert.Equal(t, "3/20/2024", temp.String())

	// Clicking a disabled day does nothing.
	x, y = findHit(t, p, hitDay, 5)
	click(t, p, x, y)
	temp, _ = p.Controller().Session().Temp()
	assert.Equal(t, "3/20/2024", temp.String())
}

func TestDatePicker_ClickHeaderAndBackdrop(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))
	s := p.Controller().Session()

	x, y := findHit(t, p, hitNext, 0)
	click(t, p, x, y)
	assert.Equal(t, 3, s.View.Month)

	x, y = findHit(t, p, hitHeader, 0)
	click(t, p, x, y)
	assert.Equal(t, picker.ModeMonths, s.View.Mode)

	x, y = findHit(t, p, hitMonth, 11)
	click(t, p, x, y)
	assert.Equal(t, picker.ModeDays, s.View.Mode)
	assert.Equal(t, 11, s.View.Month)

	msgs := click(t, p, 0, 0)
	assert.Equal(t, []tea.Msg{PickerClosedMsg{ID: "start"}}, msgs)
	assert.False(t, p.IsOpen())
}

func TestDatePicker_IndicatorFollowsSelection(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))

	l := p.layout().anim()
	s := p.Controller().Session()
	x, y := l.Target(s.View.Grid().Position(15))

	st := p.Indicator()
	assert.Equal(t, x, st.X, "first paint is instant")
	assert.Equal(t, y, st.Y)
	assert.Equal(t, 1.0, st.Opacity)

	_, cmd := p.Update(keyPress("l"))
	require.NotNil(t, cmd)
	require.True(t, p.frames.Running())

	// Feed frames until the animation settles.
	for i := 0; i < 600 && p.frames.Running(); i++ {
		p.Update(FrameMsg{ID: p.frames.id, Seq: p.frames.seq})
	}
	assert.False(t, p.frames.Running())

	x, y = l.Target(s.View.Grid().Position(16))
	st = p.Indicator()
	assert.Equal(t, x, st.X)
	assert.Equal(t, y, st.Y)
	assert.Equal(t, 1.0, st.Scale)
}

func TestDatePicker_StaleFramesIgnored(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))
	press(t, p, "l")
	require.True(t, p.frames.Running())

	stale := FrameMsg{ID: p.frames.id, Seq: p.frames.seq - 1}
	before := p.Indicator()
	_, cmd := p.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, before, p.Indicator())

	press(t, p, "esc")
	assert.False(t, p.frames.Running())
}

func TestDatePicker_ResizeKeepsIndicatorOnSelection(t *testing.T) {
	p := newControlled(t, "3/15/2024", &fakeHaptics{})
	drain(t, p.SetVisible(true))

	p.SetSize(30, 40)
	assert.Equal(t, minCellWidth, p.layout().cell)
	x, _ := p.layout().anim().Target(p.Controller().Session().View.Grid().Position(15))
	assert.Equal(t, x, p.Indicator().X)

	// Nonsense sizes fall back instead of breaking the layout.
	p.SetSize(0, -3)
	assert.Equal(t, 80, p.size.Width)
	assert.Equal(t, 24, p.size.Height)
}

func TestDatePicker_LongTitleIsTruncated(t *testing.T) {
	p := NewControlledPicker(ControlledPickerConfig{
		PickerOptions: PickerOptions{Title: strings.Repeat("very long title ", 10), Clock: fixedClock},
	})
	p.SetSize(40, 24)
	drain(t, p.SetVisible(true))
	assert.Contains(t, ansi.Strip(p.View()), "…")
}

func TestDatePicker_FrenchLabels(t *testing.T) {
	p := NewControlledPicker(ControlledPickerConfig{
		PickerOptions: PickerOptions{Clock: fixedClock, Labels: frLabels()},
	})
	p.SetSize(80, 24)
	drain(t, p.SetVisible(true))
	out := ansi.Strip(p.View())
	assert.Contains(t, out, "juin 2024")
	assert.Contains(t, out, "Choisir une date")
	assert.Contains(t, out, "valider")
}

func frLabels() *i18n.Labels {
	return i18n.New("fr")
}
