package draw

import (
	stdcolor "image/color"
	"strings"

	"glint/gui/color"
	"glint/gui/geom"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// textTarget adapts a surface region to drivers.Displayer so tinyfont can
// render glyphs into it. Pixels outside clip are dropped.
type textTarget struct {
	s     *Surface
	clip  geom.Area
	alpha uint8
}

var _ drivers.Displayer = (*textTarget)(nil)

func (t *textTarget) Size() (x, y int16) {
	b := t.s.Bounds()
	return int16(b.X2 + 1), int16(b.Y2 + 1)
}

func (t *textTarget) SetPixel(x, y int16, c stdcolor.RGBA) {
	px, py := int(x), int(y)
	if !t.clip.Contains(geom.Pos{X: px, Y: py}) {
		return
	}
	if row := t.s.Row(px, py, 1); row != nil {
		color.Blend(&row[0], color.FromRGBA(c), t.alpha)
	}
}

func (t *textTarget) Display() error { return nil }

// FontHeight is the line advance of f.
func FontHeight(f tinyfont.Fonter) int { return int(f.GetYAdvance()) }

// fontAscent is the distance from the top of a line to its baseline.
func fontAscent(f tinyfont.Fonter) int {
	if a := -int(f.GetGlyph('M').Info().YOffset); a > 0 {
		return a
	}
	return FontHeight(f) - 1
}

// TextWidth is the advance width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}

// TextPos places a single line of s inside rect. offset shifts the result
// horizontally.
func TextPos(rect geom.Area, f tinyfont.Fonter, s string, offset int, align geom.Align) geom.Pos {
	p := geom.AlignPos(rect, TextWidth(f, s), FontHeight(f), align)
	p.X += offset
	return p
}

// String draws one line of text with its top-left corner at (x, y).
func String(s *Surface, area geom.Area, x, y int, str string, c color.Color, alpha uint8, f tinyfont.Fonter) {
	if alpha == color.AlphaMin || str == "" {
		return
	}
	clip, ok := s.Clip(area)
	if !ok {
		return
	}
	t := textTarget{s: s, clip: clip, alpha: alpha}
	tinyfont.WriteLine(&t, f, int16(x), int16(y+fontAscent(f)), str, c.RGBA())
}

// Lines draws text split on newlines, margin pixels apart, starting at
// (x, y). Lines that start below area are skipped.
func Lines(s *Surface, area geom.Area, x, y int, str string, c color.Color, alpha uint8, f tinyfont.Fonter, margin int) {
	step := FontHeight(f) + margin
	for line := range strings.SplitSeq(str, "\n") {
		if y > area.Y2 {
			return
		}
		String(s, area, x, y, line, c, alpha, f)
		y += step
	}
}
