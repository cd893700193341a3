// Package tui provides the terminal user interface of datepick: a demo form
// hosting both picker modes and the single-picker screen used by the CLI.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains the key bindings of the host form. Keys of an open
// picker live in components.KeyMap.
type Keymap struct {
	// Navigation
	Up        Key
	Down      Key
	NextField Key
	PrevField Key

	// Actions
	Select    Key
	Quit      Key
	ForceQuit Key
}

// DefaultKeymap returns the default key bindings. Vim mode adds j/k field
// navigation.
func DefaultKeymap(vim bool) Keymap {
	k := Keymap{
		Up:        Key{Key: "up", Help: "previous field"},
		Down:      Key{Key: "down", Help: "next field"},
		NextField: Key{Key: "tab", Help: "next field"},
		PrevField: Key{Key: "shift+tab", Help: "previous field"},

		Select:    Key{Key: "enter", Help: "open picker / apply date"},
		Quit:      Key{Key: "q", Help: "quit"},
		ForceQuit: Key{Key: "ctrl+c", Help: "quit"},
	}
	if vim {
		k.Up.Key = "k"
		k.Down.Key = "j"
	}
	return k
}

// Action maps a key press to an action name. Typing keys are left to the
// focused text field when typing is true.
func (k Keymap) Action(msg tea.KeyMsg, typing bool) (string, bool) {
	key := msg.String()

	switch key {
	case k.ForceQuit.Key:
		return "quit", true
	case k.NextField.Key:
		return "next", true
	case k.PrevField.Key:
		return "prev", true
	case k.Select.Key:
		return "select", true
	case "up":
		return "prev", true
	case "down":
		return "next", true
	}

	if typing {
		return "", false
	}

	switch key {
	case k.Up.Key:
		return "prev", true
	case k.Down.Key:
		return "next", true
	case k.Quit.Key, "esc":
		return "quit", true
	}
	return "", false
}

// HelpItems returns key-description pairs for the footer.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{k.NextField.Key + "/" + k.PrevField.Key, "move between fields"},
		{k.Select.Key, k.Select.Help},
		{k.Quit.Key + "/" + k.ForceQuit.Key, k.Quit.Help},
	}
}
