package viewer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lockWindow is how long ambient color changes stay animated after a
// discrete navigation, so an instant jump glides the way free scrolling
// does.
const lockWindow = 300 * time.Millisecond

type lockState int

const (
	lockInstant lockState = iota
	lockAnimated
)

// transitionLock is a two-state machine gating how ambient color changes are
// applied: Instant is the resting state; Animated is entered for a short
// window after a discrete navigation (key, dot, deep link) so the resulting
// color change glides once instead of snapping.
type transitionLock struct {
	state  lockState
	serial int
}

type unlockMsg struct {
	serial int
}

func (unlockMsg) carouselTick() {}

// arm moves the lock into Animated. Re-arming extends the window: releases
// scheduled by earlier armings carry a stale serial and are ignored.
func (l *transitionLock) arm() {
	l.state = lockAnimated
	l.serial++
}

// releaseCmd schedules the transition back to Instant for the current
// arming.
func (l *transitionLock) releaseCmd() tea.Cmd {
	serial := l.serial
	return tea.Tick(lockWindow, func(time.Time) tea.Msg {
		return unlockMsg{serial: serial}
	})
}

func (l *transitionLock) release(msg unlockMsg) {
	if msg.serial != l.serial {
		return
	}
	l.state = lockInstant
}

func (l *transitionLock) animated() bool { return l.state == lockAnimated }
