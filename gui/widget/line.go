package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/scene"
)

// Line is an anti-aliased segment between two screen points. Its node
// covers the segment's bounding box.
type Line struct {
	base
	a, b  geom.Pos
	width int
	color color.Color
	alpha uint8
}

func NewLine(sc *scene.Scene, parent *scene.Node) (*Line, error) {
	l := &Line{width: 1, color: color.ThemeColor, alpha: color.AlphaMax}
	if err := l.attach(sc, parent, l, int(unsafe.Sizeof(*l)), "line"); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Line) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type == scene.DrawMain {
		draw.Line(s, n.Area(), l.a, l.b, l.width, l.color, l.alpha)
	}
}

// SetPoints moves the end points and resizes the node to cover them.
func (l *Line) SetPoints(a, b geom.Pos) {
	l.a, l.b = a, b
	l.fit()
}

func (l *Line) SetWidth(w int) {
	l.width = max(w, 1)
	l.fit()
}

func (l *Line) SetColor(c color.Color) {
	l.color = c
	l.node.SetDirty()
}

func (l *Line) SetAlpha(a uint8) {
	l.alpha = a
	l.node.SetDirty()
}

func (l *Line) fit() {
	pad := l.width/2 + 1
	l.node.SetCoords(geom.Area{
		X1: min(l.a.X, l.b.X) - pad, Y1: min(l.a.Y, l.b.Y) - pad,
		X2: max(l.a.X, l.b.X) + pad, Y2: max(l.a.Y, l.b.Y) + pad,
	})
}
