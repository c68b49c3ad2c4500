package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/scene"

	"tinygo.org/x/tinyfont"
)

// Label draws one line of text aligned inside its node, optionally on a
// filled background.
type Label struct {
	base
	font    tinyfont.Fonter
	text    string
	color   color.Color
	alpha   uint8
	align   geom.Align
	offset  geom.Pos
	bg      bool
	bgColor color.Color
}

func NewLabel(sc *scene.Scene, parent *scene.Node, f tinyfont.Fonter) (*Label, error) {
	l := &Label{font: f, color: color.ThemeText, alpha: color.AlphaMax}
	if err := l.attach(sc, parent, l, int(unsafe.Sizeof(*l)), "label"); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain {
		return
	}
	if l.font == nil {
		panic("widget: label " + n.Name + " has no font")
	}
	if l.bg {
		draw.FillRect(s, n.Area(), n.Coords(), n.Radius(), l.bgColor, l.alpha)
	}
	p := draw.TextPos(n.Coords(), l.font, l.text, 0, l.align)
	draw.String(s, n.Area(), p.X+l.offset.X, p.Y+l.offset.Y, l.text, l.color, l.alpha, l.font)
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	l.text = text
	l.node.SetDirty()
}

func (l *Label) SetFont(f tinyfont.Fonter) {
	l.font = f
	l.node.SetDirty()
}

func (l *Label) SetColor(c color.Color) {
	l.color = c
	l.node.SetDirty()
}

func (l *Label) SetAlpha(a uint8) {
	l.alpha = a
	l.node.SetDirty()
}

func (l *Label) SetAlign(align geom.Align) {
	l.align = align
	l.node.SetDirty()
}

// SetOffset shifts the aligned text by (dx, dy).
func (l *Label) SetOffset(dx, dy int) {
	l.offset = geom.Pos{X: dx, Y: dy}
	l.node.SetDirty()
}

// SetBackground fills the node behind the text with c.
func (l *Label) SetBackground(c color.Color) {
	l.bg = true
	l.bgColor = c
	l.node.SetDirty()
}

func (l *Label) ClearBackground() {
	l.bg = false
	l.node.SetDirty()
}

func (l *Label) SetRadius(r int) { l.node.SetRadius(r) }
