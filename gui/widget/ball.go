package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/scene"
)

// Ball is a shaded disc centred in its node. The node radius is the disc
// radius.
type Ball struct {
	base
	color color.Color
	bg    color.Color
	alpha uint8
}

func NewBall(sc *scene.Scene, parent *scene.Node) (*Ball, error) {
	b := &Ball{color: color.ThemeColor, bg: color.ThemeBG, alpha: color.AlphaMax}
	if err := b.attach(sc, parent, b, int(unsafe.Sizeof(*b)), "ball"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Ball) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type == scene.DrawMain {
		draw.Disc(s, n.Area(), n.Coords().Center(), n.Radius(), b.color, b.bg, b.alpha)
	}
}

func (b *Ball) SetRadius(r int) { b.node.SetRadius(r) }

func (b *Ball) SetColor(c color.Color) {
	b.color = c
	b.node.SetDirty()
}

// SetBackground sets the rim color the shading fades to.
func (b *Ball) SetBackground(c color.Color) {
	b.bg = c
	b.node.SetDirty()
}

func (b *Ball) SetAlpha(a uint8) {
	b.alpha = a
	b.node.SetDirty()
}
