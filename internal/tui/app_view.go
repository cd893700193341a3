package tui

import (
	"strings"

	"github.com/hy4ri/datepick/internal/tui/styles"
)

func (a *App) View() string {
	// An open picker takes the whole screen.
	if p := a.openPicker(); p != nil {
		return p.View()
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("datepick"))
	b.WriteString("\n\n")

	b.WriteString(a.renderField("Type a start date", a.input.View(), a.focus == FieldInput))
	b.WriteString("\n\n")

	startText := a.labels.T("NoSelection")
	if d, ok := a.StartDate(); ok {
		startText = a.format(d)
	}
	b.WriteString(a.renderField(a.start.Controller().Title(), "📅 "+startText, a.focus == FieldStart))
	b.WriteString("\n\n")

	b.WriteString(a.deadline.View())
	b.WriteString("\n\n")

	b.WriteString(a.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(a.renderHints())

	return styles.App.Render(b.String())
}

func (a *App) renderField(label, body string, focused bool) string {
	box := styles.Input
	if focused {
		box = styles.InputFocused
	}
	return styles.InputLabel.Render(label) + "\n" + box.Render(body)
}

func (a *App) renderStatusBar() string {
	if a.err != nil {
		return styles.StatusBarError.Render("Error: " + a.err.Error())
	}
	if a.statusMsg != "" {
		return styles.StatusBarSuccess.Render(a.statusMsg)
	}
	return styles.StatusBar.Render(" ")
}

func (a *App) renderHints() string {
	var parts []string
	for _, item := range a.keymap.HelpItems() {
		parts = append(parts, styles.HelpKey.Render(item[0])+" "+styles.HelpDesc.Render(item[1]))
	}
	return strings.Join(parts, styles.HelpDesc.Render(" • "))
}
