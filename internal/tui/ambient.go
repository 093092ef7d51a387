package tui

import "github.com/hbrook/galerie/internal/palette"

// Ambient is the single page-level ambient color target. The carousel writes
// to it imperatively on every scroll tick, bypassing the usual message round
// trip, and the root model reads it when framing the view. The root model is
// its owner: it resets the override on returning home. Bubble Tea handlers
// run one at a time, so a single writer holds it per event.
type Ambient struct {
	background string
	foreground string
	active     bool
}

// Set overrides the page background/foreground pair.
func (a *Ambient) Set(background, foreground string) {
	a.background = background
	a.foreground = foreground
	a.active = true
}

// Clear removes the override so default styling takes over.
func (a *Ambient) Clear() {
	*a = Ambient{}
}

// Active reports whether an override is applied.
func (a *Ambient) Active() bool { return a.active }

func (a *Ambient) Background() string {
	if !a.active {
		return palette.DefaultBackground
	}
	return a.background
}

func (a *Ambient) Foreground() string {
	if !a.active {
		return palette.DefaultForeground
	}
	return a.foreground
}
