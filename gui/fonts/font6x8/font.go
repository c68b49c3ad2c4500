// Package font6x8 is a 6x8 monospace ASCII bitmap font for tinyfont.
package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is the built-in label font. Glyph values are reused between calls,
// so it must not be shared across goroutines.
var Font tinyfont.Fonter = &font6x8{}

const (
	Width    = 6
	Height   = 8
	baseline = 7
)

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	cols := glyphColumns(g.r)
	// Columns are stored bottom-up: bit 0 is the top row.
	for col, bits := range cols {
		for row := 0; row < Height; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(baseline-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		XOffset:  0,
		YOffset:  -baseline,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return Height }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func glyphColumns(r rune) []byte {
	if r < 0x20 || r > 0x7e {
		r = '?'
	}
	base := int(r-0x20) * 5
	return glyphData[base : base+5]
}
