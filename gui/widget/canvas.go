package widget

import (
	"unsafe"

	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/scene"
)

// Painter draws a canvas. area is the clip the painter must stay inside.
type Painter func(s *draw.Surface, area geom.Area, n *scene.Node)

// Canvas hands its node to a user painter on every redraw.
type Canvas struct {
	base
	painter Painter
}

func NewCanvas(sc *scene.Scene, parent *scene.Node, p Painter) (*Canvas, error) {
	c := &Canvas{painter: p}
	if err := c.attach(sc, parent, c, int(unsafe.Sizeof(*c)), "canvas"); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Canvas) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain {
		return
	}
	if c.painter == nil {
		panic("widget: canvas " + n.Name + " has no painter")
	}
	c.painter(s, n.Area(), n)
}

func (c *Canvas) SetPainter(p Painter) {
	c.painter = p
	c.node.SetDirty()
}
