// Package palette resolves the ambient colors for a gallery from the color
// palettes extracted from its images.
package palette

const (
	// DefaultBackground is the ambient background when neither a slide nor
	// its exhibit's cover carries a usable palette.
	DefaultBackground = "#101015"
	// DefaultForeground is the matching text color.
	DefaultForeground = "#e8e6e3"
)

// Swatch is one extracted color pair associated with an image.
type Swatch struct {
	Background string `json:"background,omitempty"`
	Foreground string `json:"foreground,omitempty"`
}

// Palette is the set of named swatches extracted from an image. Any of the
// swatches may be absent.
type Palette struct {
	Vibrant      *Swatch `json:"vibrant,omitempty"`
	LightVibrant *Swatch `json:"lightVibrant,omitempty"`
	DarkVibrant  *Swatch `json:"darkVibrant,omitempty"`
	Muted        *Swatch `json:"muted,omitempty"`
	LightMuted   *Swatch `json:"lightMuted,omitempty"`
	DarkMuted    *Swatch `json:"darkMuted,omitempty"`
}

// Dominant returns the palette's dominant swatch: the first present swatch in
// order of preference. Returns nil if the palette carries no usable swatch.
func (p *Palette) Dominant() *Swatch {
	if p == nil {
		return nil
	}
	for _, sw := range []*Swatch{p.Vibrant, p.DarkVibrant, p.Muted, p.DarkMuted, p.LightVibrant, p.LightMuted} {
		if sw != nil && (sw.Background != "" || sw.Foreground != "") {
			return sw
		}
	}
	return nil
}

// Backgrounds derives one ambient background color per slide palette: the
// slide's dominant-swatch background, else the cover's dominant-swatch
// background, else the default. The returned sequence has the same length as
// slides.
func Backgrounds(slides []*Palette, cover *Palette) []string {
	colors := make([]string, len(slides))
	for i, p := range slides {
		colors[i] = Background(p, cover)
	}
	return colors
}

// Foreground resolves the text color for a single slide. Unlike backgrounds,
// foregrounds are never blended; the caller switches them discretely at each
// slide boundary.
func Foreground(slide, cover *Palette) string {
	if fg := slide.Dominant().foreground(); fg != "" {
		return fg
	}
	if fg := cover.Dominant().foreground(); fg != "" {
		return fg
	}
	return DefaultForeground
}

// Background resolves the ambient background for a single slide: the slide's
// dominant-swatch background, else the cover's, else the default. A dominant
// swatch carrying only a foreground contributes nothing here.
func Background(slide, cover *Palette) string {
	if bg := slide.Dominant().background(); bg != "" {
		return bg
	}
	if bg := cover.Dominant().background(); bg != "" {
		return bg
	}
	return DefaultBackground
}

func (sw *Swatch) background() string {
	if sw == nil {
		return ""
	}
	return sw.Background
}

func (sw *Swatch) foreground() string {
	if sw == nil {
		return ""
	}
	return sw.Foreground
}
