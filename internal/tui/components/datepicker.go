package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/haptic"
	"github.com/hy4ri/datepick/internal/picker"
	"github.com/hy4ri/datepick/internal/picker/anim"
	"github.com/hy4ri/datepick/internal/tui/i18n"
	"github.com/hy4ri/datepick/internal/viewport"
)

// PickerOptions are shared by controlled and wrapper pickers.
type PickerOptions struct {
	// ID is copied into the messages the picker emits.
	ID     string
	Title  string
	Bounds calendar.Bounds
	Clock  calendar.Clock

	Haptics   haptic.Service
	Labels    *i18n.Labels
	Animation anim.Config
	Viewport  viewport.Reporter
	VimMode   bool
}

// ControlledPickerConfig configures a picker whose visibility belongs to the host.
type ControlledPickerConfig struct {
	PickerOptions
	Selected *calendar.Date
	// OnSelect builds the message sent on confirm. Defaults to DateSelectedMsg.
	OnSelect func(calendar.Date) tea.Msg
	// OnClose builds the message asking the host to hide the picker.
	// Defaults to PickerClosedMsg.
	OnClose func() tea.Msg
}

// WrapperPickerConfig configures a picker that opens itself from its trigger.
type WrapperPickerConfig struct {
	PickerOptions
	Initial *calendar.Date
	// OnDateSelect builds the message sent on confirm. Defaults to DateSelectedMsg.
	OnDateSelect func(calendar.Date) tea.Msg
	// Trigger renders the closed picker. Defaults to a bordered field
	// showing the current value.
	Trigger func(d calendar.Date, ok, focused bool) string
}

// DatePicker is the Bubble Tea front end of a picker.Controller. It turns
// keys and clicks into controller actions and executes the returned
// effects: haptics, the indicator animation and the host callbacks.
type DatePicker struct {
	id      string
	ctrl    *picker.Controller
	anim    *anim.Animator
	frames  *FrameClock
	haptics haptic.Service
	labels  *i18n.Labels
	keys    KeyMap
	help    help.Model
	viewrep viewport.Reporter
	trigger func(d calendar.Date, ok, focused bool) string

	size    viewport.Size
	focused bool

	// pending holds host messages produced by controller callbacks during
	// the current action.
	pending []tea.Msg
}

// NewControlledPicker creates a picker the host opens and closes with SetVisible.
func NewControlledPicker(cfg ControlledPickerConfig) *DatePicker {
	p := newDatePicker(cfg.PickerOptions)

	onSelect := cfg.OnSelect
	if onSelect == nil {
		onSelect = func(d calendar.Date) tea.Msg { return DateSelectedMsg{ID: p.id, Date: d} }
	}
	onClose := cfg.OnClose
	if onClose == nil {
		onClose = func() tea.Msg { return PickerClosedMsg{ID: p.id} }
	}

	p.ctrl = picker.NewControlled(picker.ControlledConfig{
		OnSelect: func(d calendar.Date) { p.emit(onSelect(d)) },
		OnClose:  func() { p.emit(onClose()) },
		Selected: cfg.Selected,
	}, p.controllerOptions(cfg.PickerOptions))
	return p
}

// NewWrapperPicker creates a picker that renders its own trigger and opens
// when the trigger is activated.
func NewWrapperPicker(cfg WrapperPickerConfig) *DatePicker {
	p := newDatePicker(cfg.PickerOptions)

	onSelect := cfg.OnDateSelect
	if onSelect == nil {
		onSelect = func(d calendar.Date) tea.Msg { return DateSelectedMsg{ID: p.id, Date: d} }
	}
	if cfg.Trigger != nil {
		p.trigger = cfg.Trigger
	}

	p.ctrl = picker.NewWrapper(picker.WrapperConfig{
		OnDateSelect: func(d calendar.Date) { p.emit(onSelect(d)) },
		Initial:      cfg.Initial,
	}, p.controllerOptions(cfg.PickerOptions))
	return p
}

func newDatePicker(opts PickerOptions) *DatePicker {
	if opts.Haptics == nil {
		opts.Haptics = haptic.Noop{}
	}
	if opts.Labels == nil {
		opts.Labels = i18n.New(i18n.DefaultLanguage)
	}
	if opts.Viewport.FallbackWidth == 0 || opts.Viewport.FallbackHeight == 0 {
		opts.Viewport = viewport.NewReporter(opts.Viewport.FallbackWidth, opts.Viewport.FallbackHeight)
	}

	keys := DefaultKeyMap(opts.VimMode)
	keys.Localize(opts.Labels.T)

	a := anim.New(opts.Animation)
	p := &DatePicker{
		id:      opts.ID,
		anim:    a,
		frames:  NewFrameClock(a.Frame()),
		haptics: opts.Haptics,
		labels:  opts.Labels,
		keys:    keys,
		help:    help.New(),
		viewrep: opts.Viewport,
	}
	p.trigger = p.defaultTrigger
	p.size = viewport.Size{Width: p.viewrep.FallbackWidth, Height: p.viewrep.FallbackHeight}
	p.help.Width = p.layout().gridWidth()
	return p
}

func (p *DatePicker) controllerOptions(opts PickerOptions) picker.Options {
	title := opts.Title
	if title == "" {
		title = p.labels.T("DefaultTitle")
	}
	return picker.Options{Bounds: opts.Bounds, Title: title, Clock: opts.Clock}
}

func (p *DatePicker) emit(msg tea.Msg) {
	if msg != nil {
		p.pending = append(p.pending, msg)
	}
}

// ID returns the identifier copied into emitted messages.
func (p *DatePicker) ID() string { return p.id }

// Controller exposes the underlying state machine.
func (p *DatePicker) Controller() *picker.Controller { return p.ctrl }

// IsOpen reports whether the picker dialog is showing.
func (p *DatePicker) IsOpen() bool { return p.ctrl.IsOpen() }

// Value returns the host's value (controlled) or the last confirmed date (wrapper).
func (p *DatePicker) Value() (calendar.Date, bool) { return p.ctrl.Value() }

// SetValue replaces the current value; it seeds the next open.
func (p *DatePicker) SetValue(d *calendar.Date) { p.ctrl.SetValue(d) }

// SetBounds replaces the selectable range, also while the dialog is open.
func (p *DatePicker) SetBounds(b calendar.Bounds) tea.Cmd {
	return p.run(p.ctrl.SetBounds(b))
}

// SetVisible mirrors the host's visibility flag of a controlled picker.
func (p *DatePicker) SetVisible(visible bool) tea.Cmd {
	return p.run(p.ctrl.SetVisible(visible))
}

// Tap activates the trigger of a closed wrapper picker. Hosts call it when
// their layout says the trigger was clicked.
func (p *DatePicker) Tap() tea.Cmd {
	return p.run(p.ctrl.Tap())
}

// Init implements Component.
func (p *DatePicker) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *DatePicker) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
	case FrameMsg:
		return p, p.handleFrame(msg)
	case tea.KeyMsg:
		return p, p.handleKeyMsg(msg)
	case tea.MouseMsg:
		return p, p.handleMouseMsg(msg)
	}
	return p, nil
}

// SetSize implements Component. The indicator is re-placed on the new
// layout without animating.
func (p *DatePicker) SetSize(width, height int) {
	p.size = p.viewrep.Sanitize(width, height)
	p.help.Width = p.layout().gridWidth()

	s := p.ctrl.Session()
	if s == nil {
		return
	}
	if pos, ok := s.Indicator(); ok {
		x, y := p.layout().anim().Target(pos)
		p.anim.Jump(x, y)
	}
}

// Focus sets focus on the picker.
func (p *DatePicker) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *DatePicker) Blur() {
	p.focused = false
}

// Focused returns focus state.
func (p *DatePicker) Focused() bool {
	return p.focused
}

// Indicator returns the marker as it should be drawn now.
func (p *DatePicker) Indicator() anim.State {
	return p.anim.State()
}

func (p *DatePicker) handleFrame(msg FrameMsg) tea.Cmd {
	if !p.frames.Owns(msg) {
		return nil
	}
	if p.anim.Step() {
		return p.frames.Tick()
	}
	p.frames.Stop()
	return nil
}

// handleKeyMsg maps keys to controller actions.
func (p *DatePicker) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	s := p.ctrl.Session()
	if s == nil {
		if p.ctrl.Kind() == picker.KindWrapper && p.focused && key.Matches(msg, p.keys.Open) {
			return p.Tap()
		}
		return nil
	}

	switch {
	case key.Matches(msg, p.keys.Cancel):
		return p.run(p.ctrl.Cancel())
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
		return nil
	case key.Matches(msg, p.keys.Mode):
		return p.run(p.ctrl.ToggleMode())
	case key.Matches(msg, p.keys.Prev):
		return p.run(p.ctrl.Prev())
	case key.Matches(msg, p.keys.Next):
		return p.run(p.ctrl.Next())
	case key.Matches(msg, p.keys.Today):
		return p.run(p.ctrl.JumpToToday())
	case key.Matches(msg, p.keys.Confirm):
		switch s.View.Mode {
		case picker.ModeMonths:
			return p.run(p.ctrl.SelectMonth(s.View.Month))
		case picker.ModeYears:
			return p.run(p.ctrl.SelectYear(s.View.Year))
		default:
			return p.run(p.ctrl.Confirm())
		}
	case key.Matches(msg, p.keys.Left):
		return p.move(s, -1, -1)
	case key.Matches(msg, p.keys.Right):
		return p.move(s, 1, 1)
	case key.Matches(msg, p.keys.Up):
		return p.move(s, -7, -monthColumns)
	case key.Matches(msg, p.keys.Down):
		return p.move(s, 7, monthColumns)
	}
	return nil
}

func (p *DatePicker) move(s *picker.Session, days, cursor int) tea.Cmd {
	if s.View.Mode == picker.ModeDays {
		return p.run(p.ctrl.MoveSelection(days))
	}
	return p.run(p.ctrl.MoveCursor(cursor))
}

// handleMouseMsg routes left clicks on an open picker: grid cells select,
// the header pages or cycles the mode, and the backdrop dismisses.
func (p *DatePicker) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	s := p.ctrl.Session()
	if s == nil {
		return nil
	}

	hit := p.hitTest(s, msg.X, msg.Y)
	switch hit.target {
	case hitBackdrop:
		return p.run(p.ctrl.Dismiss())
	case hitPrev:
		return p.run(p.ctrl.Prev())
	case hitNext:
		return p.run(p.ctrl.Next())
	case hitHeader:
		return p.run(p.ctrl.ToggleMode())
	case hitDay:
		return p.run(p.ctrl.Select(hit.value))
	case hitMonth:
		return p.run(p.ctrl.SelectMonth(hit.value))
	case hitYear:
		return p.run(p.ctrl.SelectYear(hit.value))
	}
	return nil
}

// run executes effects in order and returns the resulting commands. Host
// messages are delivered in the order the controller produced them.
func (p *DatePicker) run(effects []picker.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case picker.Haptic:
			cmds = append(cmds, p.hapticCmd(e.Kind))
		case picker.Opened:
			p.anim.Reset()
			p.help.ShowAll = false
		case picker.Indicator:
			if !e.Visible {
				p.anim.Hide()
				continue
			}
			x, y := p.layout().anim().Target(e.Position)
			p.anim.Show(x, y)
			if e.Tap {
				p.anim.Pulse()
			}
		case picker.Closed:
			p.frames.Stop()
		}
	}

	if len(p.pending) > 0 {
		msgs := make([]tea.Cmd, 0, len(p.pending))
		for _, m := range p.pending {
			msgs = append(msgs, msgCmd(m))
		}
		p.pending = nil
		cmds = append(cmds, tea.Sequence(msgs...))
	}

	if p.ctrl.IsOpen() && !p.anim.Settled() {
		cmds = append(cmds, p.frames.Start())
	}
	return tea.Batch(cmds...)
}

func (p *DatePicker) hapticCmd(kind picker.HapticKind) tea.Cmd {
	h := p.haptics
	return func() tea.Msg {
		if kind == picker.HapticImpact {
			h.Impact()
		} else {
			h.Selection()
		}
		return nil
	}
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
