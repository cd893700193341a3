package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/config"
	"github.com/hy4ri/datepick/internal/haptic"
	"github.com/hy4ri/datepick/internal/picker/anim"
	"github.com/hy4ri/datepick/internal/tui/components"
	"github.com/hy4ri/datepick/internal/tui/i18n"
	"github.com/hy4ri/datepick/internal/viewport"
)

// Picker IDs used by the demo form.
const (
	StartPickerID    = "start"
	DeadlinePickerID = "deadline"
)

// Field is a focusable row of the demo form.
type Field int

const (
	FieldInput Field = iota
	FieldStart
	FieldDeadline
	fieldCount
)

// Deps are the collaborators of the TUI. Zero values use the real ones.
type Deps struct {
	Clock     calendar.Clock
	Haptics   haptic.Service
	Clipboard func(string) error
}

func (d Deps) withDefaults(cfg *config.Config) Deps {
	if d.Clock == nil {
		d.Clock = calendar.RealClock{}
	}
	if d.Haptics == nil {
		d.Haptics = newHaptics(cfg)
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.WriteAll
	}
	return d
}

func newHaptics(cfg *config.Config) haptic.Service {
	if !cfg.Haptics.Enabled {
		return haptic.Noop{}
	}
	return haptic.NewTerminal(cfg.Haptics.BellOnSelection)
}

// pickerOptions builds the options shared by every picker from the config.
func pickerOptions(cfg *config.Config, deps Deps, labels *i18n.Labels, id, title string) components.PickerOptions {
	return components.PickerOptions{
		ID:      id,
		Title:   title,
		Bounds:  cfg.Bounds(),
		Clock:   deps.Clock,
		Haptics: deps.Haptics,
		Labels:  labels,
		Animation: anim.Config{
			Spring: anim.Spring{
				FPS:       cfg.Animation.FPS,
				Frequency: cfg.Animation.Frequency,
				Damping:   cfg.Animation.Damping,
			},
			FadeDuration:  cfg.Animation.FadeDuration(),
			PulseScale:    cfg.Animation.PulseScale,
			PulseDuration: cfg.Animation.PulseDuration(),
		},
		Viewport: viewport.NewReporter(cfg.Viewport.FallbackWidth, cfg.Viewport.FallbackHeight),
		VimMode:  cfg.UI.VimMode,
	}
}

// App is the demo form: a typed date field, a controlled "Start date"
// picker the form opens and closes, and a self-contained "Deadline" picker.
type App struct {
	// Dependencies
	config *config.Config
	deps   Deps
	labels *i18n.Labels

	// Pickers
	start        *components.DatePicker
	startVisible bool
	startValue   *calendar.Date
	deadline     *components.DatePicker

	// Form state
	input  textinput.Model
	focus  Field
	keymap Keymap

	// UI state
	statusMsg string
	err       error
	width     int
	height    int
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, deps Deps) *App {
	deps = deps.withDefaults(cfg)
	labels := i18n.New(cfg.UI.Language)

	input := textinput.New()
	input.Placeholder = "M/D/YYYY"
	input.CharLimit = 10
	input.Width = 20

	a := &App{
		config: cfg,
		deps:   deps,
		labels: labels,
		input:  input,
		keymap: DefaultKeymap(cfg.UI.VimMode),
	}

	a.start = components.NewControlledPicker(components.ControlledPickerConfig{
		PickerOptions: pickerOptions(cfg, deps, labels, StartPickerID, "Start date"),
	})
	a.deadline = components.NewWrapperPicker(components.WrapperPickerConfig{
		PickerOptions: pickerOptions(cfg, deps, labels, DeadlinePickerID, "Deadline"),
	})

	a.setFocus(FieldInput)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// StartDate returns the value of the controlled picker.
func (a *App) StartDate() (calendar.Date, bool) {
	return calendar.Parse(a.startValue)
}

// Deadline returns the last date confirmed in the wrapper picker.
func (a *App) Deadline() (calendar.Date, bool) {
	return a.deadline.Value()
}

func (a *App) setFocus(f Field) {
	a.focus = (f + fieldCount) % fieldCount
	if a.focus == FieldInput {
		a.input.Focus()
	} else {
		a.input.Blur()
	}
	if a.focus == FieldDeadline {
		a.deadline.Focus()
	} else {
		a.deadline.Blur()
	}
}

// format renders d the way the config asks for.
func (a *App) format(d calendar.Date) string {
	if a.config.UI.ISOOutput {
		return d.ISO()
	}
	return d.String()
}

// Message types
type statusMsg struct{ msg string }
type errMsg struct{ err error }
