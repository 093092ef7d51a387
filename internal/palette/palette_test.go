package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette_Dominant(t *testing.T) {
	vibrant := &Swatch{Background: "#ff0000", Foreground: "#ffffff"}
	muted := &Swatch{Background: "#555555"}

	t.Run("prefers vibrant", func(t *testing.T) {
		p := &Palette{Vibrant: vibrant, Muted: muted}
		assert.Equal(t, vibrant, p.Dominant())
	})

	t.Run("falls through absent swatches", func(t *testing.T) {
		p := &Palette{Muted: muted}
		assert.Equal(t, muted, p.Dominant())
	})

	t.Run("skips empty swatches", func(t *testing.T) {
		p := &Palette{Vibrant: &Swatch{}, Muted: muted}
		assert.Equal(t, muted, p.Dominant())
	})

	t.Run("nil palette", func(t *testing.T) {
		var p *Palette
		assert.Nil(t, p.Dominant())
	})
}

func TestBackgrounds(t *testing.T) {
	cover := &Palette{Vibrant: &Swatch{Background: "#00ff00"}}
	slides := []*Palette{
		{Vibrant: &Swatch{Background: "#ff0000"}},
		nil, // falls back to cover
		{},  // empty palette also falls back to cover
	}

	got := Backgrounds(slides, cover)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#00ff00"}, got)
}

func TestBackgrounds_NoCover(t *testing.T) {
	got := Backgrounds([]*Palette{nil, nil}, nil)
	assert.Equal(t, []string{DefaultBackground, DefaultBackground}, got)
}

func TestBackgrounds_LengthMatchesSlides(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		got := Backgrounds(make([]*Palette, n), nil)
		assert.Len(t, got, n)
	}
}

func TestBackground(t *testing.T) {
	t.Run("slide background", func(t *testing.T) {
		slide := &Palette{Vibrant: &Swatch{Background: "#ff0000"}}
		assert.Equal(t, "#ff0000", Background(slide, nil))
	})

	t.Run("foreground-only swatch falls through to the default", func(t *testing.T) {
		slide := &Palette{Vibrant: &Swatch{Foreground: "#ffffff"}}
		assert.Equal(t, DefaultBackground, Background(slide, nil))
	})

	t.Run("foreground-only swatch falls through to the cover", func(t *testing.T) {
		slide := &Palette{Vibrant: &Swatch{Foreground: "#ffffff"}}
		cover := &Palette{Muted: &Swatch{Background: "#00ff00"}}
		assert.Equal(t, "#00ff00", Background(slide, cover))
	})
}

func TestForeground(t *testing.T) {
	cover := &Palette{Vibrant: &Swatch{Background: "#000000", Foreground: "#eeeeee"}}

	t.Run("slide foreground", func(t *testing.T) {
		slide := &Palette{Vibrant: &Swatch{Foreground: "#111111"}}
		assert.Equal(t, "#111111", Foreground(slide, cover))
	})

	t.Run("cover fallback", func(t *testing.T) {
		assert.Equal(t, "#eeeeee", Foreground(nil, cover))
	})

	t.Run("default fallback", func(t *testing.T) {
		assert.Equal(t, DefaultForeground, Foreground(nil, nil))
	})
}
