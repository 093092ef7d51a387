// Package viewer implements the full-screen slide carousel for an exhibit:
// a horizontally-snapping strip of slides driving the page's ambient color.
package viewer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/palette"
	"github.com/hbrook/galerie/internal/tui"
	"github.com/hbrook/galerie/internal/tui/keys"
	"github.com/hokaccha/go-prettyjson"
)

const (
	// frameInterval paces scroll and color animation.
	frameInterval = 33 * time.Millisecond
	// settleDelay is how long after the last wheel event the carousel snaps
	// to the nearest slide boundary.
	settleDelay = 250 * time.Millisecond
	// easing is the per-frame fraction of the remaining distance covered by
	// a smooth scroll.
	easing = 0.35
	// wheelDivisor: one wheel notch moves the carousel a sixth of a screen.
	wheelDivisor = 6
)

// tickMsg marks the carousel's internal timer messages. Each carousel writes
// the shared ambient target when it handles one, so the root model delivers
// them to the carousel on screen only, never to cached carousels for exhibits
// the visitor has left.
type tickMsg interface {
	carouselTick()
}

// IsTick reports whether msg is one of the carousel's internal timer
// messages.
func IsTick(msg tea.Msg) bool {
	_, ok := msg.(tickMsg)
	return ok
}

type frameMsg struct{}

func (frameMsg) carouselTick() {}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

type settleMsg struct {
	serial int
}

func (settleMsg) carouselTick() {}

// JumpMsg instructs the carousel to reposition instantly onto a slide, with
// the transition lock armed so the ambient color glides once. Sent for deep
// links and history navigation rather than user scrolling.
type JumpMsg struct {
	Slide int
}

// Maker makes carousel models.
type Maker struct {
	Ambient *tui.Ambient
}

// Make builds the carousel for an exhibit opened at the given slide. The
// carousel is positioned instantly, without animation, and the transition
// lock starts armed so the entry color change animates once; Init schedules
// the lock release and applies the initial ambient color without waiting for
// a scroll event.
func (mk *Maker) Make(x *exhibit.Exhibit, slide, width, height int) tea.Model {
	slides := x.Slides()
	m := model{
		exhibit: x,
		slides:  slides,
		colors:  palette.Backgrounds(x.SlidePalettes(), x.CoverPalette()),
		ambient: mk.Ambient,
		width:   width,
		height:  height,
	}
	if len(slides) > 0 {
		m.index = clamp(slide, 0, m.last())
	}
	m.offset = float64(m.index * m.width)
	m.target = m.offset
	m.lock.arm()
	// apply the initial ambient color immediately rather than waiting for a
	// scroll event; the armed lock makes it glide from whatever was on screen
	(&m).applyAmbient(true)
	return m
}

type model struct {
	exhibit *exhibit.Exhibit
	slides  []exhibit.Slide
	// colors is the ambient color sequence, one entry per navigable slide.
	colors  []string
	ambient *tui.Ambient

	width  int
	height int

	// offset is the continuous scroll position in columns; index is the
	// discrete slide derived from it.
	offset float64
	index  int

	// smooth scroll animation state
	target    float64
	animating bool

	lock  transitionLock
	tween *tween

	wheelSerial int
	showInfo    bool
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.lock.releaseCmd(), frameCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// re-anchor onto the current slide; the old offset is meaningless
		// under the new geometry
		m.offset = float64(m.index * m.width)
		m.target = m.offset
		m.animating = false
		(&m).applyAmbient(false)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleWheel(msg)
	case JumpMsg:
		return m.jump(msg.Slide)
	case frameMsg:
		return m.frame()
	case settleMsg:
		// snap to the nearest boundary once wheel input has gone quiet,
		// unless a newer wheel event or a smooth scroll superseded this timer
		if msg.serial == m.wheelSerial && !m.animating {
			return m.scrollToSlide(Index(m.offset, m.width, m.last()))
		}
	case unlockMsg:
		m.lock.release(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showInfo {
		// the overlay is modal: it swallows every key except the ones
		// closing it
		switch {
		case key.Matches(msg, keys.Navigation.Info), key.Matches(msg, keys.Global.Escape):
			m.showInfo = false
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.Navigation.Prev):
		return m.scrollToSlide(m.index - 1)
	case key.Matches(msg, keys.Navigation.Next):
		return m.scrollToSlide(m.index + 1)
	case key.Matches(msg, keys.Navigation.First):
		return m.scrollToSlide(0)
	case key.Matches(msg, keys.Navigation.Last):
		return m.scrollToSlide(m.last())
	case key.Matches(msg, keys.Navigation.Info):
		if m.last() >= 0 {
			m.showInfo = true
		}
	default:
		// a digit jumps straight to that dot
		if n := dotIndex(msg); n >= 0 && n <= m.last() {
			return m.scrollToSlide(n)
		}
	}
	return m, nil
}

// scrollToSlide starts a smooth scroll onto a slide. Out-of-range targets
// are a no-op, so "next" on the last slide does nothing.
func (m model) scrollToSlide(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i > m.last() {
		return m, nil
	}
	target := float64(i * m.width)
	if target == m.offset && !m.animating {
		return m, nil
	}
	if m.animating {
		// an in-flight scroll simply retargets
		m.target = target
		return m, nil
	}
	m.target = target
	m.animating = true
	return m, frameCmd()
}

// jump repositions instantly and arms the transition lock, so the ambient
// color change glides once rather than snapping.
func (m model) jump(i int) (tea.Model, tea.Cmd) {
	if m.last() < 0 {
		return m, nil
	}
	m.index = clamp(i, 0, m.last())
	m.offset = float64(m.index * m.width)
	m.target = m.offset
	m.animating = false
	m.lock.arm()
	(&m).applyAmbient(true)
	return m, tea.Batch(m.lock.releaseCmd(), frameCmd())
}

func (m model) handleWheel(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var delta float64
	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		delta = float64(m.width) / wheelDivisor
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		delta = -float64(m.width) / wheelDivisor
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || m.last() < 1 || m.showInfo {
		return m, nil
	}

	// organic scrolling supersedes any smooth scroll in flight
	m.animating = false
	m.offset = clampFloat(m.offset+delta, 0, float64(m.last()*m.width))
	(&m).applyAmbient(false)
	cmd := (&m).syncIndex()

	m.wheelSerial++
	serial := m.wheelSerial
	settle := tea.Tick(settleDelay, func(time.Time) tea.Msg { return settleMsg{serial: serial} })
	return m, tea.Batch(cmd, settle)
}

func (m model) frame() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.animating {
		m.offset += (m.target - m.offset) * easing
		if math.Abs(m.target-m.offset) < 0.5 {
			m.offset = m.target
			m.animating = false
		}
		(&m).applyAmbient(false)
	}

	if m.tween != nil {
		c, done := m.tween.advance()
		m.ambient.Set(c, m.ambient.Foreground())
		if done {
			m.tween = nil
		}
	}

	if cmd := (&m).syncIndex(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.animating || m.tween != nil {
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}

// applyAmbient recomputes the interpolated ambient color from the current
// offset and writes it straight to the shared ambient target. This is the
// fast path: it runs on every scroll tick and animation frame, outside the
// declarative render. With animated set and the lock armed, the write is
// eased across the lock window instead of applied at once.
func (m *model) applyAmbient(animated bool) {
	i, j, factor := Span(m.offset, m.width, m.last())
	bg := m.background(i, j, factor)
	fg := m.foreground()
	if animated && m.lock.animated() && m.ambient.Background() != bg {
		m.tween = newTween(m.ambient.Background(), bg)
		// the foreground still switches discretely, right away
		m.ambient.Set(m.ambient.Background(), fg)
		return
	}
	m.tween = nil
	m.ambient.Set(bg, fg)
}

// syncIndex rederives the discrete index from the offset, reporting a change
// so the root model can issue a replace-style deep-link update.
func (m *model) syncIndex() tea.Cmd {
	i := Index(m.offset, m.width, m.last())
	if i == m.index {
		return nil
	}
	m.index = i
	// the foreground color flips discretely at the slide boundary
	m.ambient.Set(m.ambient.Background(), m.foreground())
	return tui.CmdHandler(tui.SlideChangedMsg{Exhibit: m.exhibit.ID, Slide: i})
}

func (m model) background(i, j int, factor float64) string {
	if len(m.colors) == 0 {
		return palette.DefaultBackground
	}
	return palette.Blend(m.colors[i], m.colors[j], factor)
}

func (m model) foreground() string {
	if m.last() < 0 {
		return palette.Foreground(nil, m.exhibit.CoverPalette())
	}
	return palette.Foreground(m.slides[m.index].Image.Palette, m.exhibit.CoverPalette())
}

func (m model) last() int { return len(m.slides) - 1 }

// tween eases an instant ambient jump across the lock window.
type tween struct {
	from, to string
	frame    int
	frames   int
}

func newTween(from, to string) *tween {
	return &tween{from: from, to: to, frames: int(lockWindow / frameInterval)}
}

func (t *tween) advance() (string, bool) {
	t.frame++
	c := palette.Blend(t.from, t.to, float64(t.frame)/float64(t.frames))
	return c, t.frame >= t.frames
}

func dotIndex(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return -1
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return -1
	}
	return int(r - '1')
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func (m model) Title() string {
	if m.last() < 0 {
		return m.exhibit.Title
	}
	if st := m.slides[m.index].Title; st != "" {
		return fmt.Sprintf("%s — %s", m.exhibit.Title, st)
	}
	return m.exhibit.Title
}

func (m model) Status() string {
	if m.last() < 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", m.index+1, m.last()+1)
}

// OverlayOpen reports whether the slide info overlay is showing, in which
// case escape closes the overlay rather than leaving the exhibit.
func (m model) OverlayOpen() bool { return m.showInfo }

func (m model) HelpBindings() []key.Binding {
	return []key.Binding{
		keys.Navigation.Prev,
		keys.Navigation.Next,
		keys.Navigation.First,
		keys.Navigation.Last,
		keys.Navigation.Info,
	}
}

func (m model) View() string {
	if m.last() < 0 {
		return tui.Regular.Padding(1, 2).Render("This exhibit has no photos yet.")
	}
	if m.showInfo {
		return m.infoView()
	}

	slide := m.slides[m.index]
	fg := lipgloss.Color(m.ambient.Foreground())

	var b strings.Builder
	b.WriteString(m.board(slide))
	b.WriteString("\n")
	if slide.Title != "" {
		b.WriteString(tui.Bold.Foreground(fg).Render(slide.Title))
		b.WriteString("\n")
	}
	if slide.Description != "" {
		b.WriteString(tui.Faint.Foreground(fg).Width(m.width - 4).Render(slide.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.dots(fg))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Render(b.String())
}

// board paints a stand-in for the photo itself: a block in the slide's own
// colors carrying the asset's pixel dimensions.
func (m model) board(slide exhibit.Slide) string {
	bg := m.colors[m.index]
	label := slide.Image.URL
	if slide.Image.Width > 0 && slide.Image.Height > 0 {
		label = fmt.Sprintf("%d × %d", slide.Image.Width, slide.Image.Height)
	}
	boardHeight := max(m.height-10, 3)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(m.ambient.Foreground())).
		Width(max(m.width-4, 1)).
		Height(boardHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

func (m model) dots(fg lipgloss.Color) string {
	dots := make([]string, m.last()+1)
	for i := range dots {
		if i == m.index {
			dots[i] = tui.Bold.Foreground(fg).Render("●")
		} else {
			dots[i] = tui.Faint.Foreground(fg).Render("○")
		}
	}
	prev := tui.Faint.Foreground(fg).Render("‹")
	next := tui.Faint.Foreground(fg).Render("›")
	return fmt.Sprintf("%s %s %s", prev, strings.Join(dots, " "), next)
}

func (m model) infoView() string {
	out, err := prettyjson.Marshal(m.slides[m.index])
	if err != nil {
		return tui.Regular.Padding(1, 2).Render(err.Error())
	}
	return tui.RoundedBorders.
		Padding(0, 1).
		Width(max(m.width-4, 1)).
		Render(string(out))
}
