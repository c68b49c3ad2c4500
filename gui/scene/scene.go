// Package scene is the retained widget tree: node geometry and lifecycle,
// dirty tracking, the bounded event queue and event dispatch.
package scene

import (
	"fmt"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/glog"
)

const (
	DefaultQueueSize  = 16
	DefaultDirtyLimit = 64
)

// nodeSize is the bookkeeping charged for every node on top of the
// widget's own reservation.
const nodeSize = 96

type Config struct {
	Width, Height int
	Background    color.Color
	QueueSize     int
	DirtyLimit    int
	// Heap budgets node memory. Nil means unlimited.
	Heap Allocator
}

// Scene owns the root screen node and everything hanging off it.
type Scene struct {
	root  *Node
	heap  Allocator
	dirty dirtyList
	queue eventQueue

	focus   *Node
	capture *Node

	reapPending bool
	dropped     int
}

// screen paints the background behind every other node.
type screen struct {
	bg color.Color
}

func (w *screen) Construct(s *draw.Surface, n *Node, e *Event) {
	if e.Type == DrawMain {
		draw.FillRect(s, n.Area(), n.Coords(), 0, w.bg, color.AlphaMax)
	}
}

func New(cfg Config) *Scene {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.DirtyLimit <= 0 {
		cfg.DirtyLimit = DefaultDirtyLimit
	}
	if cfg.Heap == nil {
		cfg.Heap = NewHeap(0)
	}
	bounds := geom.Rect(0, 0, cfg.Width, cfg.Height)
	s := &Scene{
		heap:  cfg.Heap,
		dirty: newDirtyList(bounds, cfg.DirtyLimit),
		queue: newEventQueue(cfg.QueueSize),
	}
	s.root = &Node{
		Name:   "screen",
		scene:  s,
		widget: &screen{bg: cfg.Background},
		coords: bounds,
		area:   bounds,
		flags:  flagDirty | flagNeedInit,
	}
	return s
}

// Root is the screen node. It cannot be deleted.
func (s *Scene) Root() *Node { return s.root }

// Bounds is the screen area.
func (s *Scene) Bounds() geom.Area { return s.root.coords }

// NewNode reserves size bytes for w and links a new node as the last child
// of parent (the screen when nil). The node starts dirty, covering the
// parent's coords.
func (s *Scene) NewNode(parent *Node, w Widget, size int) (*Node, error) {
	if parent == nil {
		parent = s.root
	}
	if parent.scene != s || parent.Destroyed() {
		return nil, fmt.Errorf("scene: parent %q is not live in this scene", parent.Name)
	}
	if w == nil {
		return nil, fmt.Errorf("scene: nil widget")
	}
	size += nodeSize
	if !s.heap.Alloc(size) {
		glog.Logger().Error("node allocation failed", "size", size, "parent", parent.Name)
		return nil, ErrNoMemory
	}
	n := &Node{
		scene:  s,
		parent: parent,
		widget: w,
		size:   size,
		coords: parent.coords,
		flags:  flagDirty | flagNeedInit,
	}
	parent.children = append(parent.children, n)
	n.layout()
	return n, nil
}

// Delete tears down n and its subtree: heap reservations are released,
// links are cleared and the vacated area is scheduled for repaint.
// Deleting the screen deletes its children only.
func (s *Scene) Delete(n *Node) {
	if n == nil || n.scene != s {
		return
	}
	if n == s.root {
		for len(n.children) > 0 {
			s.Delete(n.children[len(n.children)-1])
		}
		return
	}
	s.Invalidate(n.area)
	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	s.dispose(n)
}

func (s *Scene) dispose(n *Node) {
	for _, c := range n.children {
		s.dispose(c)
	}
	if n == s.focus {
		s.focus = nil
	}
	if n == s.capture {
		s.capture = nil
	}
	s.heap.Free(n.size)
	glog.Logger().Debug("node disposed", "name", n.Name)
	n.flags |= flagDestroyed
	n.children = nil
	n.parent = nil
	n.widget = nil
	n.scene = nil
}

// reap deletes every node that requested teardown.
func (s *Scene) reap() {
	if !s.reapPending {
		return
	}
	s.reapPending = false
	s.reapChildren(s.root)
}

func (s *Scene) reapChildren(n *Node) {
	for i := 0; i < len(n.children); {
		c := n.children[i]
		if c.Destroyed() {
			s.Delete(c)
			continue
		}
		s.reapChildren(c)
		i++
	}
}

// Invalidate schedules a repaint of a, clipped to the screen.
func (s *Scene) Invalidate(a geom.Area) { s.dirty.add(a) }

// SetFocus directs option events to n. Nil clears the focus.
func (s *Scene) SetFocus(n *Node) {
	if n == s.focus {
		return
	}
	if old := s.focus; old != nil {
		s.deliver(old, Event{Type: Unfocused})
	}
	s.focus = n
	if n != nil {
		s.deliver(n, Event{Type: Focused})
	}
}

func (s *Scene) Focus() *Node { return s.focus }

// Post queues e for the next Dispatch. It reports false, dropping the event,
// when the queue is full.
func (s *Scene) Post(e Event) bool {
	if !s.queue.push(e) {
		s.dropped++
		glog.Logger().Warn("event queue full", "type", e.Type, "dropped", s.dropped)
		return false
	}
	return true
}

// Pending is the number of queued events.
func (s *Scene) Pending() int { return s.queue.len() }

// Dropped counts events refused by Post.
func (s *Scene) Dropped() int { return s.dropped }

// Dispatch delivers at most limit queued events and returns how many were
// taken off the queue.
func (s *Scene) Dispatch(limit int) int {
	s.reap()
	n := 0
	for ; n < limit; n++ {
		e, ok := s.queue.pop()
		if !ok {
			break
		}
		s.dispatch(e)
		s.reap()
	}
	return n
}

func (s *Scene) dispatch(e Event) {
	var target *Node
	switch e.Type {
	case Pressed:
		target = s.root.hit(e.Pos)
		s.capture = target
	case Released:
		target = s.capture
		if target == nil {
			target = s.root.hit(e.Pos)
		}
		s.capture = nil
	case Motion:
		target = s.capture
		if target == nil {
			target = s.root.hit(e.Pos)
		}
	case OptionWalk, OptionTap:
		target = s.focus
	default:
		return
	}
	if target != nil {
		s.deliver(target, e)
	}
}

// deliver marks the target dirty and runs its handler, which may clear
// the flag again.
func (s *Scene) deliver(n *Node, e Event) {
	if n.Destroyed() || n.widget == nil {
		return
	}
	n.SetDirty()
	n.widget.Construct(nil, n, &e)
}

// Collect turns dirty node flags into dirty areas and returns the regions
// to repaint. The slice is valid until Reset.
func (s *Scene) Collect() []geom.Area {
	s.reap()
	s.collect(s.root)
	return s.dirty.areas
}

func (s *Scene) collect(n *Node) {
	if n.Dirty() {
		n.ClearDirty()
		s.dirty.add(n.area)
	}
	for _, c := range n.children {
		s.collect(c)
	}
}

// Reset forgets the collected dirty areas after they were repainted.
func (s *Scene) Reset() { s.dirty.reset() }

// Draw paints every visible node overlapping the surface, parents before
// children.
func (s *Scene) Draw(surf *draw.Surface) {
	e := Event{Type: DrawMain}
	s.draw(surf, s.root, &e)
}

func (s *Scene) draw(surf *draw.Surface, n *Node, e *Event) {
	if n.Hidden() || n.Destroyed() {
		return
	}
	if _, ok := surf.Clip(n.area); !ok {
		return
	}
	n.widget.Construct(surf, n, e)
	n.flags &^= flagNeedInit
	for _, c := range n.children {
		s.draw(surf, c, e)
	}
}
