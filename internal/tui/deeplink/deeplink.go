// Package deeplink encodes the view's identity as a shareable URL query
// string and resolves incoming links against the loaded exhibit list.
package deeplink

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/hbrook/galerie/internal/exhibit"
)

// State is the shareable identity of the view: home, or an exhibit open at a
// slide.
type State struct {
	Exhibit string
	Slide   int
}

// Home is the state with no selected exhibit.
var Home = State{}

func (s State) IsHome() bool { return s.Exhibit == "" }

// Query renders the state as a URL query string. Home renders empty.
func (s State) Query() string {
	if s.IsHome() {
		return ""
	}
	q := url.Values{}
	q.Set("exhibit", s.Exhibit)
	q.Set("slide", strconv.Itoa(s.Slide))
	return q.Encode()
}

// Parse reads a query string permissively: a malformed link degrades to a
// safe state rather than erroring. A missing exhibit means home; a missing,
// negative or non-numeric slide means 0.
func Parse(raw string) State {
	raw = strings.TrimPrefix(raw, "?")
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Home
	}
	id := q.Get("exhibit")
	if id == "" {
		return Home
	}
	slide, err := strconv.Atoi(q.Get("slide"))
	if err != nil || slide < 0 {
		slide = 0
	}
	return State{Exhibit: id, Slide: slide}
}

// Resolve matches a state against the loaded exhibit list. An unknown
// exhibit id resolves to home (nil). A slide index past the end of the
// exhibit's navigable slides is clamped to the last index.
func Resolve(s State, exhibits []*exhibit.Exhibit) (*exhibit.Exhibit, int) {
	x := exhibit.Find(exhibits, s.Exhibit)
	if x == nil {
		return nil, 0
	}
	slide := s.Slide
	if slide < 0 {
		slide = 0
	}
	if last := len(x.Slides()) - 1; last >= 0 && slide > last {
		slide = last
	}
	return x, slide
}
