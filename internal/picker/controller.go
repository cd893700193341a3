package picker

import "github.com/hy4ri/datepick/internal/calendar"

// Kind is the operating mode chosen at construction.
type Kind int

const (
	KindControlled Kind = iota // caller owns visibility
	KindWrapper                // picker owns visibility, opened by tapping its trigger
)

// Options are shared by both operating modes.
type Options struct {
	Bounds calendar.Bounds
	Title  string
	Clock  calendar.Clock
}

// ControlledConfig configures a picker whose visibility belongs to the caller.
type ControlledConfig struct {
	// OnSelect receives the confirmed date.
	OnSelect func(calendar.Date)
	// OnClose is called whenever the picker wants to close; the caller is
	// expected to hide it with SetVisible(false).
	OnClose func()
	// Selected is the caller's current value.
	Selected *calendar.Date
}

// WrapperConfig configures a self-contained picker opened by tapping its trigger.
type WrapperConfig struct {
	OnDateSelect func(calendar.Date)
	Initial      *calendar.Date
}

// Controller runs the Closed/Open lifecycle and routes actions to the open
// session. Only the controller knows which operating mode is in use.
type Controller struct {
	kind Kind
	opts Options

	onSelect func(calendar.Date)
	onClose  func()

	// visible mirrors the caller's flag in controlled mode and is the
	// picker's own flag in wrapper mode.
	visible bool
	value   *calendar.Date

	session *Session
}

// NewControlled builds a controlled-mode controller. It starts closed;
// the caller opens it with SetVisible(true).
func NewControlled(cfg ControlledConfig, opts Options) *Controller {
	c := newController(KindControlled, opts, cfg.OnSelect)
	if cfg.OnClose != nil {
		c.onClose = cfg.OnClose
	}
	c.SetValue(cfg.Selected)
	return c
}

// NewWrapper builds a wrapper-mode controller. It starts closed; Tap opens it.
func NewWrapper(cfg WrapperConfig, opts Options) *Controller {
	c := newController(KindWrapper, opts, cfg.OnDateSelect)
	c.SetValue(cfg.Initial)
	return c
}

func newController(kind Kind, opts Options, onSelect func(calendar.Date)) *Controller {
	if opts.Clock == nil {
		opts.Clock = calendar.RealClock{}
	}
	c := &Controller{
		kind:     kind,
		opts:     opts,
		onSelect: func(calendar.Date) {},
		onClose:  func() {},
	}
	if onSelect != nil {
		c.onSelect = onSelect
	}
	return c
}

// Kind returns the operating mode.
func (c *Controller) Kind() Kind { return c.kind }

// Title returns the display label.
func (c *Controller) Title() string { return c.opts.Title }

// IsOpen reports whether a session is active.
func (c *Controller) IsOpen() bool { return c.session != nil }

// Session returns the open session, or nil when closed.
func (c *Controller) Session() *Session { return c.session }

// Value returns the caller's current value.
func (c *Controller) Value() (calendar.Date, bool) {
	return calendar.Parse(c.value)
}

// SetValue replaces the caller's current value. An open session is not
// touched; the new value seeds the next open. Invalid dates clear the value.
func (c *Controller) SetValue(d *calendar.Date) {
	v, ok := calendar.Parse(d)
	if !ok {
		c.value = nil
		return
	}
	c.value = &v
}

// SetBounds replaces the selectable range. An open session switches to the
// new range at once and drops a provisional selection that falls outside it.
func (c *Controller) SetBounds(b calendar.Bounds) []Effect {
	c.opts.Bounds = b
	if c.session == nil {
		return nil
	}
	c.session.SetBounds(b)
	return []Effect{c.indicator(false)}
}

// SetVisible mirrors the caller's visibility flag. Only a false -> true
// change opens the picker; true -> false closes it without a selection.
// Wrapper controllers ignore it.
func (c *Controller) SetVisible(visible bool) []Effect {
	if c.kind != KindControlled {
		return nil
	}
	was := c.visible
	c.visible = visible
	switch {
	case visible && !was:
		return c.open()
	case !visible && c.session != nil:
		c.session = nil
		return []Effect{Closed{}}
	}
	return nil
}

// Tap opens a closed wrapper picker. Controlled controllers ignore it.
func (c *Controller) Tap() []Effect {
	if c.kind != KindWrapper || c.session != nil {
		return nil
	}
	c.visible = true
	return append([]Effect{Haptic{Kind: HapticSelection}}, c.open()...)
}

func (c *Controller) open() []Effect {
	c.session = NewSession(c.value, c.opts.Bounds, c.opts.Clock)
	return []Effect{Opened{}, c.indicator(false)}
}

func (c *Controller) indicator(tap bool) Indicator {
	if c.session == nil {
		return Indicator{}
	}
	pos, ok := c.session.Indicator()
	return Indicator{Position: pos, Visible: ok, Tap: tap && ok}
}

// ToggleMode is the header tap: Days -> Months -> Years -> Days.
func (c *Controller) ToggleMode() []Effect {
	if c.session == nil {
		return nil
	}
	c.session.View.ToggleMode()
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// Prev pages the current view backwards.
func (c *Controller) Prev() []Effect {
	if c.session == nil {
		return nil
	}
	c.session.View.Prev()
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// Next pages the current view forwards.
func (c *Controller) Next() []Effect {
	if c.session == nil {
		return nil
	}
	c.session.View.Next()
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// SelectMonth picks a month in the Months view and returns to Days.
func (c *Controller) SelectMonth(month int) []Effect {
	if c.session == nil || c.session.View.Mode != ModeMonths {
		return nil
	}
	if !c.session.View.SelectMonth(month) {
		return nil
	}
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// SelectYear picks a year in the Years view and moves to Months.
func (c *Controller) SelectYear(year int) []Effect {
	if c.session == nil || c.session.View.Mode != ModeYears {
		return nil
	}
	c.session.View.SelectYear(year)
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// MoveCursor moves the highlighted month or year in the Months and Years views.
func (c *Controller) MoveCursor(delta int) []Effect {
	if c.session == nil || c.session.View.Mode == ModeDays {
		return nil
	}
	c.session.View.MoveCursor(delta)
	return []Effect{Haptic{Kind: HapticSelection}}
}

// Select is a tap on day of the viewed month. Disabled days produce no effects.
func (c *Controller) Select(day int) []Effect {
	if c.session == nil || c.session.View.Mode != ModeDays {
		return nil
	}
	if !c.session.Select(day) {
		return nil
	}
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(true)}
}

// MoveSelection moves the provisional selection by delta days.
func (c *Controller) MoveSelection(delta int) []Effect {
	if c.session == nil || c.session.View.Mode != ModeDays {
		return nil
	}
	if !c.session.MoveSelection(delta) {
		return nil
	}
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(true)}
}

// JumpToToday shows and provisionally selects today. It does not confirm.
func (c *Controller) JumpToToday() []Effect {
	if c.session == nil {
		return nil
	}
	c.session.JumpToToday()
	return []Effect{Haptic{Kind: HapticSelection}, c.indicator(false)}
}

// Confirm delivers the provisional selection, if any, and closes.
func (c *Controller) Confirm() []Effect {
	if c.session == nil {
		return nil
	}
	d, ok := c.session.Temp()
	c.session = nil

	if ok {
		if c.kind == KindWrapper {
			c.value = &d
		}
		c.onSelect(d)
	}
	c.close()

	effects := []Effect{Closed{Confirmed: ok}}
	if ok {
		effects = append([]Effect{Haptic{Kind: HapticImpact}}, effects...)
	}
	return effects
}

// Cancel closes without delivering anything. The next open reseeds from
// the caller's value.
func (c *Controller) Cancel() []Effect {
	if c.session == nil {
		return nil
	}
	c.session = nil
	c.close()
	return []Effect{Closed{}}
}

// Dismiss is a backdrop tap; it behaves like Cancel.
func (c *Controller) Dismiss() []Effect {
	return c.Cancel()
}

func (c *Controller) close() {
	c.visible = false
	if c.kind == KindControlled {
		c.onClose()
	}
}
