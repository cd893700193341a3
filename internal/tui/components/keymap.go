package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the key bindings of an open picker, plus Open for a
// closed wrapper picker.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Prev  key.Binding
	Next  key.Binding

	// Actions
	Mode    key.Binding
	Today   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Open    key.Binding
}

// DefaultKeyMap returns the picker bindings. Vim mode adds hjkl.
func DefaultKeyMap(vim bool) KeyMap {
	up, down, left, right := []string{"up"}, []string{"down"}, []string{"left"}, []string{"right"}
	arrows := "←↑↓→"
	if vim {
		up = append(up, "k")
		down = append(down, "j")
		left = append(left, "h")
		right = append(right, "l")
		arrows = "←↑↓→/hjkl"
	}

	return KeyMap{
		Up:    key.NewBinding(key.WithKeys(up...), key.WithHelp(arrows, "move")),
		Down:  key.NewBinding(key.WithKeys(down...)),
		Left:  key.NewBinding(key.WithKeys(left...)),
		Right: key.NewBinding(key.WithKeys(right...)),
		Prev:  key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[ ]", "page")),
		Next:  key.NewBinding(key.WithKeys("]", "pgdown")),

		Mode:    key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "month/year")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Open:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	}
}

// Localize replaces the help descriptions with translated ones.
func (k *KeyMap) Localize(t func(string) string) {
	describe := func(b *key.Binding, id string) {
		b.SetHelp(b.Help().Key, t(id))
	}
	describe(&k.Up, "HelpMove")
	describe(&k.Prev, "HelpPage")
	describe(&k.Mode, "HelpMode")
	describe(&k.Today, "HelpToday")
	describe(&k.Confirm, "HelpConfirm")
	describe(&k.Cancel, "HelpCancel")
	describe(&k.Help, "HelpHelp")
	describe(&k.Open, "HelpOpen")
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Prev, k.Mode},
		{k.Today, k.Confirm, k.Cancel},
	}
}
