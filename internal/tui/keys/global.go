package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Logs    key.Binding
	Escape  key.Binding
	Enter   key.Binding
	Back    key.Binding
	Forward key.Binding
	Share   key.Binding
	Quit    key.Binding
	Help    key.Binding
}

var Global = global{
	Logs: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logs"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view"),
	),
	Back: key.NewBinding(
		key.WithKeys("alt+left", "["),
		key.WithHelp("alt+←, [", "history back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("alt+right", "]"),
		key.WithHelp("alt+→, ]", "history forward"),
	),
	Share: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "share link"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
