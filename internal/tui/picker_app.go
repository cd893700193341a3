package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/config"
	"github.com/hy4ri/datepick/internal/tui/components"
	"github.com/hy4ri/datepick/internal/tui/i18n"
)

// PickerRequest describes the single picker the CLI shows.
type PickerRequest struct {
	Title  string
	Value  *calendar.Date
	Bounds *calendar.Bounds // nil uses the config's bounds
}

// PickerApp shows one controlled picker full screen and quits when it
// closes. Result reports the confirmed date, if any.
type PickerApp struct {
	picker  *components.DatePicker
	result  *calendar.Date
	visible bool
	done    bool
}

// NewPickerApp creates the CLI screen.
func NewPickerApp(cfg *config.Config, req PickerRequest, deps Deps) *PickerApp {
	deps = deps.withDefaults(cfg)

	title := req.Title
	if title == "" {
		title = cfg.UI.Title
	}
	opts := pickerOptions(cfg, deps, i18n.New(cfg.UI.Language), "cli", title)
	if req.Bounds != nil {
		opts.Bounds = *req.Bounds
	}

	return &PickerApp{
		picker: components.NewControlledPicker(components.ControlledPickerConfig{
			PickerOptions: opts,
			Selected:      req.Value,
		}),
	}
}

// Init implements tea.Model. The picker opens immediately.
func (a *PickerApp) Init() tea.Cmd {
	a.visible = true
	return a.picker.SetVisible(true)
}

// Update implements tea.Model.
func (a *PickerApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case components.DateSelectedMsg:
		d := msg.Date
		a.result = &d
		return a, nil

	case components.PickerClosedMsg:
		a.visible = false
		a.done = true
		return a, tea.Sequence(a.picker.SetVisible(false), tea.Quit)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.done = true
			return a, tea.Quit
		}
	}

	_, cmd := a.picker.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *PickerApp) View() string {
	if a.done || !a.visible {
		return ""
	}
	return a.picker.View()
}

// Result returns the confirmed date.
func (a *PickerApp) Result() (calendar.Date, bool) {
	return calendar.Parse(a.result)
}
