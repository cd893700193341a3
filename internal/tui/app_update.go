package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/hy4ri/datepick/internal/tui/components"
)

// Form geometry, in lines from the top of the view.
const (
	formTop     = 3 // padding, title and a blank line
	fieldHeight = 5 // label, bordered box and a blank line
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.start.SetSize(msg.Width, msg.Height)
		a.deadline.SetSize(msg.Width, msg.Height)
		return a, nil

	case components.FrameMsg:
		_, c1 := a.start.Update(msg)
		_, c2 := a.deadline.Update(msg)
		return a, tea.Batch(c1, c2)

	case components.DateSelectedMsg:
		return a, a.handleDateSelected(msg)

	case components.PickerClosedMsg:
		if msg.ID == StartPickerID {
			a.startVisible = false
			return a, a.start.SetVisible(false)
		}
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		a.err = nil
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)
	}

	if a.focus == FieldInput {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// openPicker returns the picker whose dialog is showing, if any.
func (a *App) openPicker() *components.DatePicker {
	switch {
	case a.start.IsOpen():
		return a.start
	case a.deadline.IsOpen():
		return a.deadline
	}
	return nil
}

// handleKeyMsg processes keyboard input. An open picker is modal.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p := a.openPicker(); p != nil {
		if msg.String() == a.keymap.ForceQuit.Key {
			return a, tea.Quit
		}
		_, cmd := p.Update(msg)
		return a, cmd
	}

	action, ok := a.keymap.Action(msg, a.focus == FieldInput)
	if !ok {
		if a.focus == FieldInput {
			var cmd tea.Cmd
			a.input, cmd = a.input.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	switch action {
	case "quit":
		return a, tea.Quit
	case "next":
		a.setFocus(a.focus + 1)
	case "prev":
		a.setFocus(a.focus - 1)
	case "select":
		return a, a.activate(a.focus)
	}
	return a, nil
}

// activate performs the primary action of a field.
func (a *App) activate(f Field) tea.Cmd {
	switch f {
	case FieldInput:
		return a.applyInput()
	case FieldStart:
		a.startVisible = true
		return a.start.SetVisible(true)
	case FieldDeadline:
		return a.deadline.Tap()
	}
	return nil
}

// applyInput parses the typed date and makes it the controlled picker's value.
func (a *App) applyInput() tea.Cmd {
	d, ok := calendar.Parse(a.input.Value())
	if !ok {
		a.err = fmt.Errorf("invalid date %q, expected M/D/YYYY", a.input.Value())
		return nil
	}
	cmd := a.setStart(d)
	a.statusMsg = "Start date set to " + a.format(d)
	a.err = nil
	return cmd
}

// setStart stores the start date; the deadline may not precede it.
func (a *App) setStart(d calendar.Date) tea.Cmd {
	a.startValue = &d
	a.start.SetValue(&d)
	a.input.SetValue(d.String())
	return a.deadline.SetBounds(calendar.NewBounds(d, a.config.Picker.MaxDate))
}

func (a *App) handleDateSelected(msg components.DateSelectedMsg) tea.Cmd {
	text := a.format(msg.Date)
	var bounds tea.Cmd
	switch msg.ID {
	case StartPickerID:
		bounds = a.setStart(msg.Date)
		a.statusMsg = "Start date: " + text
	case DeadlinePickerID:
		a.statusMsg = "Deadline: " + text
	default:
		return nil
	}
	a.err = nil
	return tea.Batch(bounds, a.copyCmd(text))
}

// copyCmd copies text to the clipboard when the config asks for it.
func (a *App) copyCmd(text string) tea.Cmd {
	if !a.config.UI.CopyOnConfirm {
		return nil
	}
	write := a.deps.Clipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return errMsg{fmt.Errorf("failed to copy: %w", err)}
		}
		return statusMsg{msg: "Copied: " + text}
	}
}

// handleMouseMsg routes clicks: to the open picker, or to the form field
// under the pointer.
func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if p := a.openPicker(); p != nil {
		_, cmd := p.Update(msg)
		return a, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	f, ok := fieldAt(msg.Y)
	if !ok {
		return a, nil
	}
	a.setFocus(f)
	if f == FieldInput {
		return a, nil
	}
	return a, a.activate(f)
}

// fieldAt maps a screen line to the form field drawn there.
func fieldAt(y int) (Field, bool) {
	if y < formTop {
		return 0, false
	}
	i := (y - formTop) / fieldHeight
	if i >= int(fieldCount) || (y-formTop)%fieldHeight == fieldHeight-1 {
		return 0, false
	}
	return Field(i), true
}
