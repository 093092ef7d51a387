package top

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/logging"
	"github.com/hbrook/galerie/internal/tui"
	"github.com/hbrook/galerie/internal/tui/deeplink"
	"github.com/hbrook/galerie/internal/tui/home"
	"github.com/hbrook/galerie/internal/tui/keys"
	"github.com/hbrook/galerie/internal/tui/logs"
	"github.com/hbrook/galerie/internal/tui/viewer"
	"github.com/hbrook/galerie/internal/version"
)

// ExhibitLoader loads the exhibit list for the home view and deep-link
// resolution.
type ExhibitLoader interface {
	Load(ctx context.Context) ([]*exhibit.Exhibit, error)
}

type Options struct {
	Exhibits ExhibitLoader
	Logger   *logging.Logger

	// Link is a deep link restoring a previous view, as produced by the
	// share key.
	Link  string
	Debug bool
}

type loadedMsg struct {
	exhibits []*exhibit.Exhibit
}

type loadFailedMsg struct {
	err error
}

// model is the top-level model: it owns the view state machine (home or an
// exhibit open at a slide), the navigation history, and the ambient color
// target the carousel writes into.
type model struct {
	exhibits ExhibitLoader
	logger   *logging.Logger

	ambient *tui.Ambient
	history *history

	width  int
	height int

	loading bool
	loadErr error
	list    []*exhibit.Exhibit

	// entry is the requested deep link, held until the exhibit list has
	// loaded and it can be resolved.
	entry deeplink.State

	homeModel tea.Model
	logsModel tea.Model
	viewers   map[string]tea.Model

	showLogs bool
	showHelp bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	spinner *spinner.Model

	dump *os.File
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}

	spinner := spinner.New(spinner.WithSpinner(spinner.MiniDot))

	m := model{
		exhibits: opts.Exhibits,
		logger:   opts.Logger,
		ambient:  &tui.Ambient{},
		history:  newHistory(deeplink.Home),
		entry:    deeplink.Parse(opts.Link),
		viewers:  make(map[string]tea.Model),
		loading:  true,
		spinner:  &spinner,
		dump:     dump,
	}
	m.logsModel = logs.Maker{Logger: opts.Logger}.Make(0, 0)
	return m, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load(),
		m.titleCmd(),
	)
}

func (m model) load() tea.Cmd {
	return func() tea.Msg {
		exhibits, err := m.exhibits.Load(context.TODO())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{exhibits: exhibits}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		*m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil
	case loadedMsg:
		m.loading = false
		m.loadErr = nil
		m.list = msg.exhibits
		m.homeModel = home.Maker{}.Make(m.list, m.viewWidth(), m.viewHeight())
		if !m.entry.IsHome() {
			// the catalogue is known now, so the requested deep link can be
			// resolved
			entry := m.entry
			m.entry = deeplink.Home
			x, slide := deeplink.Resolve(entry, m.list)
			if x == nil {
				m.info = fmt.Sprintf("unknown exhibit %q in link; showing home", entry.Exhibit)
			} else {
				m.history = newHistory(deeplink.State{Exhibit: x.ID, Slide: slide})
				return m, tea.Batch(m.openViewer(x, slide), m.titleCmd())
			}
		}
		return m, m.titleCmd()
	case loadFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		return m, nil
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled exiting galerie"
			}
		}
		return m, nil
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height

		// amend msg to account for the header and footer chrome, and forward
		// below to all page models
		msg = tea.WindowSizeMsg{
			Width:  m.viewWidth(),
			Height: m.viewHeight(),
		}
		cmds = append(cmds, m.updateAll(msg)...)
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting for confirmation
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
			return m, nil
		}

		if m.showHelp {
			if key.Matches(msg, keys.Global.Escape) {
				m.showHelp = false
			}
			return m, nil
		}

		if m.showLogs {
			switch {
			case key.Matches(msg, keys.Global.Escape), key.Matches(msg, keys.Global.Logs):
				m.showLogs = false
				return m, nil
			default:
				return m, m.updateModel(&m.logsModel, msg)
			}
		}

		switch {
		case key.Matches(msg, keys.Global.Logs):
			// 'L' shows logs
			m.showLogs = true
			return m, nil
		case key.Matches(msg, keys.Global.Share):
			if q := m.history.current().Query(); q != "" {
				m.info = "link: ?" + q
			} else {
				m.info = "link: home"
			}
			return m, nil
		case key.Matches(msg, keys.Global.Back):
			if s, ok := m.history.back(); ok {
				return m, m.apply(s)
			}
			return m, nil
		case key.Matches(msg, keys.Global.Forward):
			if s, ok := m.history.forward(); ok {
				return m, m.apply(s)
			}
			return m, nil
		case key.Matches(msg, keys.Navigation.Retry):
			if m.loadErr != nil {
				m.loading = true
				m.loadErr = nil
				return m, tea.Batch(m.spinner.Tick, m.load())
			}
		case key.Matches(msg, keys.Global.Escape):
			if overlay, ok := m.currentPage().(tui.ModelOverlay); ok && overlay.OverlayOpen() {
				// the page closes its own overlay
				return m, m.updateCurrent(msg)
			}
			if !m.history.current().IsHome() {
				// leaving an exhibit is a navigation, so it pushes
				m.history.push(deeplink.Home)
				return m, m.apply(deeplink.Home)
			}
			return m, nil
		}
		// Send other keys to the current page.
		return m, m.updateCurrent(msg)
	case tui.OpenExhibitMsg:
		x := exhibit.Find(m.list, msg.ID)
		if x == nil {
			return m, tui.ReportError(fmt.Errorf("no such exhibit: %s", msg.ID), "opening exhibit")
		}
		m.history.push(deeplink.State{Exhibit: x.ID, Slide: msg.Slide})
		return m, tea.Batch(m.openViewer(x, msg.Slide), m.titleCmd())
	case tui.SlideChangedMsg:
		// free scrolling onto another slide rewrites the current history
		// entry in place rather than pushing
		if current := m.history.current(); current.Exhibit == msg.Exhibit {
			m.history.replace(deeplink.State{Exhibit: msg.Exhibit, Slide: msg.Slide})
			return m, m.titleCmd()
		}
		return m, nil
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			text := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", text, err)
			if m.logger != nil {
				m.logger.Error(text, "error", err)
			}
		}
		return m, nil
	default:
		// Carousel timer ticks write the shared ambient target, so only the
		// page on screen gets them; a cached carousel for an exhibit the
		// visitor has left must not repaint the ambient color. Everything
		// else goes to all page models.
		if viewer.IsTick(msg) {
			cmds = append(cmds, m.updateCurrent(msg))
		} else {
			cmds = append(cmds, m.updateAll(msg)...)
		}
	}
	return m, tea.Batch(cmds...)
}

// currentPage returns the page model for the current history state: the home
// grid, or the carousel for the open exhibit. Nil until the exhibit list has
// loaded.
func (m model) currentPage() tea.Model {
	s := m.history.current()
	if s.IsHome() {
		return m.homeModel
	}
	return m.viewers[s.Exhibit]
}

// apply brings the page models in line with a history state reached by going
// back or forward.
func (m *model) apply(s deeplink.State) tea.Cmd {
	if s.IsHome() {
		// returning home drops the ambient override so default styling takes
		// over
		m.ambient.Clear()
		return m.titleCmd()
	}
	x, slide := deeplink.Resolve(s, m.list)
	if x == nil {
		return m.titleCmd()
	}
	return tea.Batch(m.openViewer(x, slide), m.titleCmd())
}

// openViewer makes the exhibit's carousel current, building it on first
// visit and jumping the cached model onto the slide on revisits.
func (m *model) openViewer(x *exhibit.Exhibit, slide int) tea.Cmd {
	if vm, ok := m.viewers[x.ID]; ok {
		updated, cmd := vm.Update(viewer.JumpMsg{Slide: slide})
		m.viewers[x.ID] = updated
		return cmd
	}
	maker := viewer.Maker{Ambient: m.ambient}
	vm := maker.Make(x, slide, m.viewWidth(), m.viewHeight())
	m.viewers[x.ID] = vm
	return vm.Init()
}

func (m *model) updateModel(ref *tea.Model, msg tea.Msg) tea.Cmd {
	if *ref == nil {
		return nil
	}
	updated, cmd := (*ref).Update(msg)
	*ref = updated
	return cmd
}

func (m *model) updateCurrent(msg tea.Msg) tea.Cmd {
	s := m.history.current()
	if s.IsHome() {
		return m.updateModel(&m.homeModel, msg)
	}
	vm, ok := m.viewers[s.Exhibit]
	if !ok {
		return nil
	}
	updated, cmd := vm.Update(msg)
	m.viewers[s.Exhibit] = updated
	return cmd
}

// updateAll forwards a msg to every page model.
func (m *model) updateAll(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.updateModel(&m.homeModel, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.updateModel(&m.logsModel, msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	for id, vm := range m.viewers {
		updated, cmd := vm.Update(msg)
		m.viewers[id] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// titleCmd mirrors the current view into the terminal window title.
func (m model) titleCmd() tea.Cmd {
	title := "galerie"
	if page := m.currentPage(); page != nil {
		if titled, ok := page.(tui.ModelTitle); ok {
			title = "galerie: " + titled.Title()
		}
	}
	return tea.SetWindowTitle(title)
}

var (
	logo = strings.Join([]string{
		"▄▄▄ ▄▄▄ █   ▄▄▄ ▄▄▄ ▄ ▄▄▄",
		"█ █ █▄█ █   █▄▄ █▄▀ █ █▄▄",
		"▀▄█ ▀ ▀ ▀▀▀ ▀▀▀ ▀ ▀ ▀ ▀▀▀",
	}, "\n")
	renderedLogo = tui.Bold.
			Margin(0, 1).
			Foreground(tui.Pink).
			Render(logo)
	logoWidth            = lipgloss.Width(renderedLogo)
	headerHeight         = 3
	titleHeight          = 1
	horizontalRuleHeight = 1
	messageFooterHeight  = 1

	versionIcon = tui.Bold.
			Foreground(tui.Pink).
			Margin(0, 2, 0, 1).
			Render("ⓥ")
)

func (m model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)

	var currentHelpBindings []key.Binding
	if bindings, ok := m.currentPage().(tui.ModelHelpBindings); ok {
		currentHelpBindings = bindings.HelpBindings()
	}

	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					currentHelpBindings,
					keys.KeyMapToSlice(keys.Global),
					keys.KeyMapToSlice(keys.Navigation),
				),
			)
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	case m.showQuitPrompt:
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit galerie? (y/N): %s", m.quitPrompt.View()))
	case m.showLogs:
		content = m.logsModel.View()
		shortHelpBindings = append(
			helpBindings(m.logsModel),
			keys.KeyMapToSlice(keys.Global)...,
		)
	case m.loading:
		content = tui.Regular.Padding(1, 2).Render(
			m.spinner.View() + " loading exhibits",
		)
	case m.loadErr != nil:
		content = tui.Regular.Padding(1, 2).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				tui.Regular.Foreground(tui.Red).Render("Error: "+m.loadErr.Error()),
				"",
				tui.Faint.Render("press r to retry"),
			),
		)
	default:
		if page := m.currentPage(); page != nil {
			content = page.View()
		}
		shortHelpBindings = append(
			currentHelpBindings,
			keys.KeyMapToSlice(keys.Global)...,
		)
	}

	// Render global static info in top left corner
	globalStatic := lipgloss.JoinHorizontal(lipgloss.Left,
		versionIcon, tui.Regular.Render(version.Version),
	)

	// Render help bindings in between version and logo. Set its available
	// width to the width of the terminal minus the width of the global static
	// info, the width of the logo, and the width of its margins.
	shortHelpWidth := m.width - tui.Width(globalStatic) - logoWidth - 6
	shortHelp := lipgloss.NewStyle().
		Margin(0, 2, 0, 4).
		Width(shortHelpWidth).
		Render(shortHelpView(shortHelpBindings, shortHelpWidth))

	// Render page title line
	var (
		pageTitle  string
		pageStatus string
	)
	if titled, ok := m.currentPage().(tui.ModelTitle); ok {
		pageTitle = tui.Regular.Margin(0, 1).Render(titled.Title())
	} else {
		pageTitle = tui.Regular.Margin(0, 1).Render("galerie")
	}
	if statusable, ok := m.currentPage().(tui.ModelStatus); ok {
		pageStatus = tui.Padded.Render(statusable.Status())
	}
	pageTitleLine := lipgloss.JoinHorizontal(lipgloss.Left,
		pageTitle,
		tui.Regular.
			Margin(0, 1).
			Width(m.width-tui.Width(pageTitle)-2).
			Align(lipgloss.Right).
			Render(pageStatus),
	)

	// The content pane carries the ambient color: the default palette on
	// home, the carousel's interpolated color on an exhibit.
	pane := lipgloss.NewStyle().
		Width(m.width).
		Height(m.viewHeight()).
		Background(lipgloss.Color(m.ambient.Background())).
		Foreground(lipgloss.Color(m.ambient.Foreground())).
		Render(content)

	// Global-level info goes in the bottom right corner in the footer.
	metadata := tui.Padded.Render(
		fmt.Sprintf("history %d/%d", m.history.cursor+1, m.history.len()),
	)

	// Render any info/error message to be shown in the bottom left corner in
	// the footer, using whatever space is remaining to the left of the
	// metadata.
	var footerMsg string
	if m.err != nil {
		footerMsg = tui.Padded.
			Foreground(tui.Red).
			Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = tui.Padded.
			Render(m.info)
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		// header
		lipgloss.NewStyle().
			Height(headerHeight).
			Render(
				lipgloss.JoinHorizontal(
					lipgloss.Left,
					globalStatic,
					shortHelp,
					renderedLogo,
				),
			),
		// title
		lipgloss.NewStyle().
			// Prohibit overflowing title wrapping to another line.
			MaxHeight(1).
			Inline(true).
			Width(m.width).
			Render(pageTitleLine),
		// horizontal rule
		strings.Repeat("─", max(m.width, 0)),
		// content
		pane,
		// horizontal rule
		strings.Repeat("─", max(m.width, 0)),
		// footer
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			tui.Regular.
				Inline(true).
				MaxWidth(m.width-tui.Width(metadata)).
				Width(m.width-tui.Width(metadata)).
				Render(footerMsg),
			metadata,
		),
	)
}

func helpBindings(mod tea.Model) []key.Binding {
	if bindings, ok := mod.(tui.ModelHelpBindings); ok {
		return bindings.HelpBindings()
	}
	return nil
}

// viewHeight retrieves the height available to the content pane beneath the
// header, title and rules, and above the message footer.
func (m model) viewHeight() int {
	return m.height - headerHeight - titleHeight - 2*horizontalRuleHeight - messageFooterHeight
}

// viewWidth retrieves the width available within the main view
func (m model) viewWidth() int {
	return m.width
}
