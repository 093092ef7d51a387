package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black     = lipgloss.Color("#000000")
	Red       = lipgloss.Color("#FF5353")
	Yellow    = lipgloss.Color("#DBBD70")
	Green     = lipgloss.Color("34")
	Blue      = lipgloss.Color("63")
	Pink      = lipgloss.Color("#E760FC")
	Grey      = lipgloss.Color("#737373")
	LightGrey = lipgloss.Color("245")
	White     = lipgloss.Color("#ffffff")
)

var (
	DebugLogLevel = Blue
	InfoLogLevel  = Green
	ErrorLogLevel = Red
	WarnLogLevel  = Yellow

	CurrentBackground = Grey
	CurrentForeground = White
)
