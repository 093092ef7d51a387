package top

import "github.com/hbrook/galerie/internal/tui/deeplink"

// history is the in-app navigation history: a stack of deep-link states with
// a cursor, mirroring browser history semantics. Pushing while the cursor is
// mid-stack discards the forward entries.
type history struct {
	states []deeplink.State
	cursor int
}

func newHistory(initial deeplink.State) *history {
	return &history{states: []deeplink.State{initial}}
}

func (h *history) current() deeplink.State {
	return h.states[h.cursor]
}

// push makes s the new current state, discarding any forward history.
// Pushing the current state again is a no-op.
func (h *history) push(s deeplink.State) {
	if s == h.current() {
		return
	}
	h.states = append(h.states[:h.cursor+1], s)
	h.cursor++
}

// replace swaps the current state in place, leaving the stack length and
// cursor untouched. Free scrolling between slides updates history this way.
func (h *history) replace(s deeplink.State) {
	h.states[h.cursor] = s
}

func (h *history) back() (deeplink.State, bool) {
	if h.cursor == 0 {
		return deeplink.State{}, false
	}
	h.cursor--
	return h.current(), true
}

func (h *history) forward() (deeplink.State, bool) {
	if h.cursor == len(h.states)-1 {
		return deeplink.State{}, false
	}
	h.cursor++
	return h.current(), true
}

func (h *history) len() int { return len(h.states) }
