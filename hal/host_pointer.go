//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostPointer turns the left mouse button into pointer events. Motion is
// reported only while the button is held.
type hostPointer struct {
	ch    chan PointerEvent
	down  bool
	lastX int
	lastY int
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(a PointerAction, x, y int) {
	select {
	case p.ch <- PointerEvent{Action: a, X: x, Y: y}:
	default:
	}
}

func (p *hostPointer) poll() {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.down = true
		p.emit(PointerDown, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.down = false
		p.emit(PointerUp, x, y)
	case p.down && (x != p.lastX || y != p.lastY):
		p.emit(PointerMove, x, y)
	}
	p.lastX, p.lastY = x, y
}
