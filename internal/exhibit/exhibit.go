// Package exhibit provides the domain model for curated photo exhibits and
// their retrieval from the remote content API.
package exhibit

import (
	"github.com/hbrook/galerie/internal/palette"
)

// Exhibit is a named, identifiable collection of slides plus optional cover
// imagery. Exhibits are immutable once fetched.
type Exhibit struct {
	// ID uniquely identifies the exhibit; it doubles as the deep-link key.
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Covers   []ImageAsset `json:"covers,omitempty"`
	Gallery  []Slide      `json:"gallery,omitempty"`
}

// Slide is one item within an exhibit's gallery.
type Slide struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Image       *ImageAsset `json:"image,omitempty"`
}

// ImageAsset is an image URL plus optional metadata.
type ImageAsset struct {
	URL     string           `json:"url"`
	Width   int              `json:"width,omitempty"`
	Height  int              `json:"height,omitempty"`
	Palette *palette.Palette `json:"palette,omitempty"`
}

func (x *Exhibit) String() string { return x.ID }

// Navigable reports whether the slide carries a resolved image asset. Only
// navigable slides take part in carousel indexing.
func (s Slide) Navigable() bool {
	return s.Image != nil && s.Image.URL != ""
}

// Slides returns the exhibit's navigable slides. The returned list, not the
// raw gallery, defines the valid index range.
func (x *Exhibit) Slides() []Slide {
	slides := make([]Slide, 0, len(x.Gallery))
	for _, s := range x.Gallery {
		if s.Navigable() {
			slides = append(slides, s)
		}
	}
	return slides
}

// CoverPalette returns the palette of the exhibit's first cover image, if
// any.
func (x *Exhibit) CoverPalette() *palette.Palette {
	if len(x.Covers) == 0 {
		return nil
	}
	return x.Covers[0].Palette
}

// SlidePalettes returns one palette per navigable slide; entries may be nil.
func (x *Exhibit) SlidePalettes() []*palette.Palette {
	slides := x.Slides()
	palettes := make([]*palette.Palette, len(slides))
	for i, s := range slides {
		palettes[i] = s.Image.Palette
	}
	return palettes
}

// Find returns the exhibit with the given id, or nil if the list contains no
// such exhibit.
func Find(exhibits []*Exhibit, id string) *Exhibit {
	for _, x := range exhibits {
		if x.ID == id {
			return x
		}
	}
	return nil
}
