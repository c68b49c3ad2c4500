// Package widget provides the concrete node variants: boxes, labels, lines,
// canvases, message boxes, balls, images and the boot logo. Each widget
// owns one scene node and repaints through the draw primitives.
package widget

import (
	"glint/gui/geom"
	"glint/gui/scene"
)

const (
	ThemeRadius      = 6
	ThemeBorderWidth = 2
)

// base is embedded by every widget.
type base struct {
	node *scene.Node
}

// Node is the scene node drawing the widget.
func (b *base) Node() *scene.Node { return b.node }

func (b *base) SetPos(x, y int)              { b.node.SetPos(x, y) }
func (b *base) SetSize(w, h int)             { b.node.SetSize(w, h) }
func (b *base) SetCoords(a geom.Area)        { b.node.SetCoords(a) }
func (b *base) SetPosAlign(align geom.Align) { b.node.SetPosAlign(align) }
func (b *base) SetHidden(on bool)            { b.node.SetHidden(on) }

// Delete removes the widget and its children from the scene.
func (b *base) Delete() {
	if sc := b.node.Scene(); sc != nil {
		sc.Delete(b.node)
	}
}

// attach links w under parent (the screen when nil), charging the scene
// heap for size bytes.
func (b *base) attach(sc *scene.Scene, parent *scene.Node, w scene.Widget, size int, name string) error {
	n, err := sc.NewNode(parent, w, size)
	if err != nil {
		return err
	}
	n.Name = name
	b.node = n
	return nil
}
