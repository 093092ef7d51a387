package tui

import tea "github.com/charmbracelet/bubbletea"

// OpenExhibitMsg is an instruction to open an exhibit's carousel, optionally
// at a specific starting slide.
type OpenExhibitMsg struct {
	ID    string
	Slide int
}

// SlideChangedMsg reports that free scrolling moved the carousel onto a
// different slide. The root model answers with a replace-style deep-link
// update rather than a history push.
type SlideChangedMsg struct {
	Exhibit string
	Slide   int
}

type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

// OpenExhibit sends an instruction to open an exhibit at the given slide.
func OpenExhibit(id string, slide int) tea.Cmd {
	return CmdHandler(OpenExhibitMsg{ID: id, Slide: slide})
}
