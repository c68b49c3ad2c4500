// Package color holds the canonical 24-bit pixel value, the alpha mixer and
// the packed low-bit-depth encodings used by pixmaps and panels.
package color

import "image/color"

const (
	AlphaMin uint8 = 0
	AlphaMax uint8 = 255
)

// Color is the canonical pixel representation held by surfaces.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{0xFF, 0xFF, 0xFF}
	Red   = Color{0xFF, 0x00, 0x00}
	Green = Color{0x00, 0xFF, 0x00}
	Blue  = Color{0x00, 0x00, 0xFF}
	Gray  = Color{0x80, 0x80, 0x80}
)

// Theme colors shared by widgets.
var (
	ThemeColor       = Color{0xF0, 0xF0, 0xF0}
	ThemeBG          = Color{0x20, 0x24, 0x2C}
	ThemeBorder      = Color{0x60, 0x68, 0x78}
	ThemeText        = Color{0x10, 0x10, 0x10}
	ThemeAccent      = Color{0x2A, 0x7F, 0xD4}
	ThemeAlpha uint8 = AlphaMax
)

// RGB builds a color from its channels.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

func mixChannel(fg, bg, a uint8) uint8 {
	n := uint32(fg)*uint32(a) + uint32(bg)*uint32(255-a)
	return uint8((n + 127) / 255)
}

// Mix blends fg over bg with weight a. Mix(fg, bg, 255) == fg and
// Mix(fg, bg, 0) == bg.
func Mix(fg, bg Color, a uint8) Color {
	switch a {
	case AlphaMax:
		return fg
	case AlphaMin:
		return bg
	}
	return Color{
		R: mixChannel(fg.R, bg.R, a),
		G: mixChannel(fg.G, bg.G, a),
		B: mixChannel(fg.B, bg.B, a),
	}
}

// Blend writes c over *dst with alpha. Opaque alpha stores c unchanged.
func Blend(dst *Color, c Color, alpha uint8) {
	if alpha == AlphaMax {
		*dst = c
		return
	}
	*dst = Mix(c, *dst, alpha)
}

// FromRGB332 expands an RRRGGGBB byte by bit replication.
func FromRGB332(v uint8) Color {
	r := v >> 5
	g := (v >> 2) & 0x07
	b := v & 0x03
	return Color{
		R: r<<5 | r<<2 | r>>1,
		G: g<<5 | g<<2 | g>>1,
		B: b * 0x55,
	}
}

func (c Color) RGB332() uint8 {
	return c.R&0xE0 | (c.G>>3)&0x1C | c.B>>6
}

// FromRGB565 expands an rrrrrggggggbbbbb word by bit replication.
func FromRGB565(v uint16) Color {
	r := uint8(v>>11) & 0x1F
	g := uint8(v>>5) & 0x3F
	b := uint8(v) & 0x1F
	return Color{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

func (c Color) RGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// FromRGB888 unpacks 0xRRGGBB.
func FromRGB888(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) RGB888() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// FromRGBA drops the alpha channel of c.
func FromRGBA(c color.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}
