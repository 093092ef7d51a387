package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hbrook/galerie/internal/exhibit"
	"github.com/hbrook/galerie/internal/palette"
	"github.com/hbrook/galerie/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExhibit() *exhibit.Exhibit {
	slide := func(bg string) exhibit.Slide {
		return exhibit.Slide{
			Image: &exhibit.ImageAsset{
				URL:     "https://img/" + bg + ".jpg",
				Palette: &palette.Palette{Vibrant: &palette.Swatch{Background: bg, Foreground: "#ffffff"}},
			},
		}
	}
	return &exhibit.Exhibit{
		ID:      "spring-2024",
		Title:   "Spring 2024",
		Gallery: []exhibit.Slide{slide("#ff0000"), slide("#00ff00"), slide("#0000ff")},
	}
}

func makeViewer(t *testing.T, slide int) (tea.Model, *tui.Ambient) {
	t.Helper()
	ambient := &tui.Ambient{}
	maker := &Maker{Ambient: ambient}
	return maker.Make(testExhibit(), slide, 80, 24), ambient
}

// settle drives animation frames until the carousel comes to rest.
func settle(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	for i := 0; i < 100; i++ {
		vm := m.(model)
		if !vm.animating && vm.tween == nil {
			return m
		}
		m, _ = m.Update(frameMsg{})
	}
	t.Fatal("carousel did not settle")
	return nil
}

func TestModel_EntryAppliesAmbientImmediately(t *testing.T) {
	m, ambient := makeViewer(t, 0)

	// the override is active before any scroll event
	require.True(t, ambient.Active())
	assert.Equal(t, "#ffffff", ambient.Foreground())

	// the armed lock makes the background glide to the slide color
	vm := m.(model)
	require.True(t, vm.lock.animated())
	settle(t, m)
	assert.Equal(t, "#ff0000", ambient.Background())
}

func TestModel_NextPrev(t *testing.T) {
	m, ambient := makeViewer(t, 0)
	m = settle(t, m)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = settle(t, m)
	assert.Equal(t, 1, m.(model).index)
	assert.Equal(t, "2/3", m.(model).Status())
	assert.Equal(t, "#00ff00", ambient.Background())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = settle(t, m)
	assert.Equal(t, 0, m.(model).index)
	assert.Equal(t, "#ff0000", ambient.Background())
}

func TestModel_NextAtLastIsNoop(t *testing.T) {
	m, _ := makeViewer(t, 2)
	m = settle(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, m.(model).offset, next.(model).offset)
}

func TestModel_PrevAtFirstIsNoop(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, next.(model).index)
}

func TestModel_JumpClampsAndArmsLock(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	m, _ = m.Update(JumpMsg{Slide: 99})
	vm := m.(model)
	assert.Equal(t, 2, vm.index)
	assert.True(t, vm.lock.animated())
	assert.False(t, vm.animating)
	assert.Equal(t, vm.target, vm.offset)
}

func TestModel_WheelScroll(t *testing.T) {
	m, ambient := makeViewer(t, 0)
	m = settle(t, m)

	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}

	// each notch moves a sixth of a screen; three notches lands at offset
	// 40, the midpoint, where the discrete index flips to 1
	for i := 0; i < 3; i++ {
		m, _ = m.Update(wheel)
	}
	vm := m.(model)
	assert.InDelta(t, 40, vm.offset, 1e-9)
	assert.Equal(t, 1, vm.index)

	// the ambient is the midpoint blend, applied instantly
	assert.Equal(t, palette.Blend("#ff0000", "#00ff00", 0.5), ambient.Background())
}

func TestModel_WheelClampsAtEnds(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	up := tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	m, _ = m.Update(up)
	assert.Zero(t, m.(model).offset)
}

func TestModel_SettleSnapsToBoundary(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	m, _ = m.Update(wheel)
	vm := m.(model)
	require.NotZero(t, vm.offset)

	m, _ = m.Update(settleMsg{serial: vm.wheelSerial})
	m = settle(t, m)
	assert.Zero(t, m.(model).offset)
}

func TestModel_StaleSettleIgnored(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	m, _ = m.Update(wheel)
	before := m.(model).offset

	m, _ = m.Update(settleMsg{serial: m.(model).wheelSerial - 1})
	assert.Equal(t, before, m.(model).offset)
	assert.False(t, m.(model).animating)
}

func TestModel_InfoOverlayIsModal(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	require.True(t, m.(model).OverlayOpen())

	// navigation keys are swallowed while the overlay is open
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.(model).index)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.(model).OverlayOpen())
}

func TestModel_DigitJumpsToDot(t *testing.T) {
	m, _ := makeViewer(t, 0)
	m = settle(t, m)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = settle(t, m)
	assert.Equal(t, 2, m.(model).index)

	// a dot past the end is a no-op
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	assert.Equal(t, 2, m.(model).index)
}

func TestModel_ZeroWidthNeverFaults(t *testing.T) {
	ambient := &tui.Ambient{}
	maker := &Maker{Ambient: ambient}
	m := maker.Make(testExhibit(), 0, 0, 0)

	wheel := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	m, _ = m.Update(wheel)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = settle(t, m)
	assert.Equal(t, 0, m.(model).index)
}

func TestModel_EmptyGallery(t *testing.T) {
	ambient := &tui.Ambient{}
	maker := &Maker{Ambient: ambient}
	m := maker.Make(&exhibit.Exhibit{ID: "empty", Title: "Empty"}, 3, 80, 24)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "no photos")
}
