// Package logs implements the log page, fed by the logger's event stream.
package logs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hbrook/galerie/internal/logging"
	"github.com/hbrook/galerie/internal/pubsub"
	"github.com/hbrook/galerie/internal/tui"
)

const timeFormat = "2006-01-02T15:04:05.000"

type Maker struct {
	Logger *logging.Logger
}

func (mk Maker) Make(width, height int) tea.Model {
	m := model{
		logger:   mk.Logger,
		viewport: viewport.New(width, height),
	}
	if mk.Logger != nil {
		m.messages = mk.Logger.List()
	}
	m.refresh()
	return m
}

type model struct {
	logger *logging.Logger

	// messages is kept newest first, matching the logger's List order.
	messages []logging.Message
	viewport viewport.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.refresh()
	case pubsub.Event[logging.Message]:
		if msg.Type == pubsub.CreatedEvent {
			m.messages = append([]logging.Message{msg.Payload}, m.messages...)
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) refresh() {
	lines := make([]string, len(m.messages))
	for i, msg := range m.messages {
		lines[i] = renderMessage(msg)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func renderMessage(msg logging.Message) string {
	var b strings.Builder
	b.WriteString(tui.Faint.Render(msg.Time.Format(timeFormat)))
	b.WriteRune(' ')
	b.WriteString(coloredLogLevel(msg.Level))
	b.WriteRune(' ')
	b.WriteString(msg.Message)
	for _, attr := range msg.Attributes {
		b.WriteRune(' ')
		b.WriteString(tui.Bold.Render(attr.Key + "="))
		b.WriteString(attr.Value)
	}
	return b.String()
}

func coloredLogLevel(level string) string {
	var levelColor lipgloss.TerminalColor
	switch level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	}
	return tui.Bold.Foreground(levelColor).Render(level)
}

func (m model) Title() string {
	return "Logs"
}

func (m model) HelpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
	}
}

func (m model) View() string {
	if len(m.messages) == 0 {
		return tui.Regular.Padding(1, 2).Render("No log messages yet.")
	}
	return m.viewport.View()
}
