package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	Prev  key.Binding
	Next  key.Binding
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding
	Info  key.Binding
	Retry key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous slide"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next slide"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g/home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G/end", "last"),
	),
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "slide info"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
}
