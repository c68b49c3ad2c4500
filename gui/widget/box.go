package widget

import (
	"unsafe"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/glog"
	"glint/gui/pixmap"
	"glint/gui/scene"
)

// Box is a rectangle with an optional border and background pixmap.
type Box struct {
	base
	bg draw.RectDesc
}

func NewBox(sc *scene.Scene, parent *scene.Node) (*Box, error) {
	b := &Box{bg: draw.RectDesc{
		Color:       color.ThemeColor,
		BorderColor: color.ThemeBorder,
		Border:      ThemeBorderWidth,
		Radius:      ThemeRadius,
		Alpha:       color.ThemeAlpha,
	}}
	if err := b.attach(sc, parent, b, int(unsafe.Sizeof(*b)), "box"); err != nil {
		return nil, err
	}
	b.node.SetRadius(ThemeRadius)
	b.node.SetBorderWidth(ThemeBorderWidth)
	return b, nil
}

func (b *Box) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain {
		return
	}
	if err := draw.Rect(s, n.Area(), n.Coords(), &b.bg); err != nil {
		glog.Logger().Warn("box background", "node", n.Name, "err", err)
	}
}

func (b *Box) SetColor(c color.Color) {
	b.bg.Color = c
	b.node.SetDirty()
}

func (b *Box) SetAlpha(a uint8) {
	b.bg.Alpha = a
	b.node.SetDirty()
}

func (b *Box) SetRadius(r int) {
	b.node.SetRadius(r)
	b.bg.Radius = b.node.Radius()
}

func (b *Box) SetBorderColor(c color.Color) {
	b.bg.BorderColor = c
	b.node.SetDirty()
}

func (b *Box) SetBorderWidth(w int) {
	b.node.SetBorderWidth(w)
	b.bg.Border = b.node.BorderWidth()
}

// SetPixmap stretches pm over the box instead of the fill color. Nil
// restores the fill.
func (b *Box) SetPixmap(pm *pixmap.Pixmap, interp pixmap.Interp) {
	b.bg.Pixmap = pm
	b.bg.Interp = interp
	b.node.SetDirty()
}
