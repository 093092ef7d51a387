package tui

import "github.com/charmbracelet/bubbles/key"

// ModelTitle is implemented by page models that announce a title, rendered in
// the title bar and mirrored into the terminal window title.
type ModelTitle interface {
	Title() string
}

// ModelStatus is implemented by page models that announce a status string,
// rendered to the right of the title.
type ModelStatus interface {
	Status() string
}

// ModelHelpBindings is implemented by page models that surface page-specific
// key bindings in the help view.
type ModelHelpBindings interface {
	HelpBindings() []key.Binding
}

// ModelOverlay is implemented by page models that open a modal overlay.
// While the overlay is open, escape closes the overlay rather than leaving
// the page.
type ModelOverlay interface {
	OverlayOpen() bool
}
