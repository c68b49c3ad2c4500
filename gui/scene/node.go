package scene

import (
	"glint/gui/draw"
	"glint/gui/geom"
)

// Widget is the behaviour of one node variant. Construct paints the node on
// DrawMain, when s is the target surface, and handles input events, when s
// is nil. It must not write outside n.Area().
type Widget interface {
	Construct(s *draw.Surface, n *Node, e *Event)
}

type nodeFlags uint8

const (
	flagDirty nodeFlags = 1 << iota
	flagClickable
	flagNeedInit
	flagDestroyed
	flagHidden
)

// Node is one element of the scene tree. A parent owns its children:
// deleting it deletes the whole subtree.
type Node struct {
	Name string

	scene    *Scene
	parent   *Node
	children []*Node
	widget   Widget
	size     int

	coords geom.Area
	area   geom.Area
	radius int
	border int
	flags  nodeFlags
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) Widget() Widget    { return n.widget }
func (n *Node) Scene() *Scene     { return n.scene }

// Coords is the node rectangle as placed by its setters.
func (n *Node) Coords() geom.Area { return n.coords }

// Area is Coords clipped to the parent's Area: the region the node may
// paint and receive pointer events in.
func (n *Node) Area() geom.Area { return n.area }

func (n *Node) Radius() int      { return n.radius }
func (n *Node) BorderWidth() int { return n.border }

func (n *Node) Dirty() bool     { return n.flags&flagDirty != 0 }
func (n *Node) Clickable() bool { return n.flags&flagClickable != 0 }
func (n *Node) NeedInit() bool  { return n.flags&flagNeedInit != 0 }
func (n *Node) Destroyed() bool { return n.flags&flagDestroyed != 0 }
func (n *Node) Hidden() bool    { return n.flags&flagHidden != 0 }

// SetDirty schedules a repaint of the node's area.
func (n *Node) SetDirty() { n.flags |= flagDirty }

// ClearDirty withdraws a pending SetDirty, for input handlers that found
// nothing to change.
func (n *Node) ClearDirty() { n.flags &^= flagDirty }

// SetDestroyed requests teardown. The scene deletes the node before the
// next dispatch or draw and it receives no further events.
func (n *Node) SetDestroyed() {
	n.flags |= flagDestroyed
	if n.scene != nil {
		n.scene.reapPending = true
	}
}

// Invalidate schedules a repaint of part of the node.
func (n *Node) Invalidate(a geom.Area) {
	if n.scene == nil {
		return
	}
	if c, ok := geom.Clip(a, n.area); ok {
		n.scene.Invalidate(c)
	}
}

func (n *Node) setFlag(f nodeFlags, on bool) {
	if on {
		n.flags |= f
	} else {
		n.flags &^= f
	}
}

func (n *Node) SetClickable(on bool) { n.setFlag(flagClickable, on) }

// SetNeedInit marks the node as never painted; it is cleared by the first
// DrawMain.
func (n *Node) SetNeedInit() { n.flags |= flagNeedInit }

func (n *Node) SetHidden(on bool) {
	if n.Hidden() == on {
		return
	}
	n.Invalidate(n.area)
	n.setFlag(flagHidden, on)
	n.SetDirty()
}

func (n *Node) SetRadius(r int) {
	n.radius = max(r, 0)
	n.SetDirty()
}

func (n *Node) SetBorderWidth(w int) {
	n.border = max(w, 0)
	n.SetDirty()
}

// SetCoords places the node at c. Children keep their own positions.
func (n *Node) SetCoords(c geom.Area) {
	n.Invalidate(n.area)
	n.coords = c
	n.layout()
	n.SetDirty()
}

// SetPos moves the node and its subtree so the top-left corner is (x, y).
func (n *Node) SetPos(x, y int) {
	dx, dy := x-n.coords.X1, y-n.coords.Y1
	if dx == 0 && dy == 0 {
		return
	}
	n.Invalidate(n.area)
	n.move(dx, dy)
	n.layout()
	n.SetDirty()
}

func (n *Node) move(dx, dy int) {
	n.coords = n.coords.Offset(dx, dy)
	for _, c := range n.children {
		c.move(dx, dy)
	}
}

// SetSize resizes the node, keeping its top-left corner.
func (n *Node) SetSize(w, h int) {
	n.SetCoords(geom.Rect(n.coords.X1, n.coords.Y1, w, h))
}

// SetPosAlign places the node inside its parent according to align.
func (n *Node) SetPosAlign(align geom.Align) {
	if n.parent == nil {
		return
	}
	p := geom.AlignPos(n.parent.coords, n.coords.Width(), n.coords.Height(), align)
	n.SetPos(p.X, p.Y)
}

// layout recomputes the visible areas of the subtree.
func (n *Node) layout() {
	n.area = n.coords
	if n.parent != nil {
		if a, ok := geom.Clip(n.coords, n.parent.area); ok {
			n.area = a
		} else {
			n.area = geom.Invalid
		}
	}
	for _, c := range n.children {
		c.layout()
	}
}

// hit returns the top-most clickable node of the subtree containing p.
func (n *Node) hit(p geom.Pos) *Node {
	if n.Hidden() || n.Destroyed() || !n.area.Contains(p) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if h := n.children[i].hit(p); h != nil {
			return h
		}
	}
	if n.Clickable() {
		return n
	}
	return nil
}
