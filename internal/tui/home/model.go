// Package home implements the home page: the list of exhibits the visitor
// can open.
package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/palette"
	"github.com/hbrook/galerie/internal/tui"
	"github.com/hbrook/galerie/internal/tui/keys"
)

// Maker makes home page models.
type Maker struct{}

func (mk Maker) Make(exhibits []*exhibit.Exhibit, width, height int) tea.Model {
	return model{
		exhibits: exhibits,
		width:    width,
		height:   height,
	}
}

type model struct {
	exhibits []*exhibit.Exhibit
	cursor   int

	width  int
	height int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.Up), key.Matches(msg, keys.Navigation.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Navigation.Down), key.Matches(msg, keys.Navigation.Next):
			if m.cursor < len(m.exhibits)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Navigation.First):
			m.cursor = 0
		case key.Matches(msg, keys.Navigation.Last):
			if len(m.exhibits) > 0 {
				m.cursor = len(m.exhibits) - 1
			}
		case key.Matches(msg, keys.Global.Enter):
			if len(m.exhibits) > 0 {
				return m, tui.OpenExhibit(m.exhibits[m.cursor].ID, 0)
			}
		default:
			// a digit opens the nth exhibit directly
			if n := digit(msg); n >= 0 && n < len(m.exhibits) {
				return m, tui.OpenExhibit(m.exhibits[n].ID, 0)
			}
		}
	}
	return m, nil
}

func digit(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return -1
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return -1
	}
	return int(r - '1')
}

func (m model) Title() string {
	return "Exhibits"
}

func (m model) Status() string {
	return fmt.Sprintf("%d exhibits", len(m.exhibits))
}

func (m model) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.Up,
		keys.Navigation.Down,
		keys.Global.Enter,
	}
}

func (m model) View() string {
	if len(m.exhibits) == 0 {
		return tui.Regular.Padding(1, 2).Render("No exhibits are published yet.")
	}

	cards := make([]string, len(m.exhibits))
	for i, x := range m.exhibits {
		cards[i] = m.card(x, i == m.cursor)
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(strings.Join(cards, "\n"))
}

// card renders one exhibit row: a swatch chip in the exhibit's dominant
// cover color, the title, and the slide count.
func (m model) card(x *exhibit.Exhibit, current bool) string {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(palette.Background(x.CoverPalette(), nil))).
		Render("  ")

	title := x.Title
	if title == "" {
		title = x.ID
	}
	titleStyle := tui.Regular
	if current {
		titleStyle = tui.Bold.
			Background(tui.CurrentBackground).
			Foreground(tui.CurrentForeground)
	}

	count := tui.Faint.Render(fmt.Sprintf(" %d slides", len(x.Slides())))

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		chip,
		" ",
		titleStyle.Render(title),
		count,
	)
	if x.Subtitle != "" {
		line = lipgloss.JoinVertical(lipgloss.Left,
			line,
			tui.Faint.Margin(0, 0, 0, 3).Render(x.Subtitle),
		)
	}
	return line
}
