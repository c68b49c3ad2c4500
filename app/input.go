package app

import (
	"glint/gui/geom"
	"glint/gui/scene"
	"glint/hal"
)

type input struct {
	keys <-chan hal.KeyEvent
	ptr  <-chan hal.PointerEvent
}

func newInput(in hal.Input) input {
	var i input
	if in == nil {
		return i
	}
	if k := in.Keyboard(); k != nil {
		i.keys = k.Events()
	}
	if p := in.Pointer(); p != nil {
		i.ptr = p.Events()
	}
	return i
}

// pump moves up to limit pending HAL events into the scene queue. Anything
// left waits in the HAL channels for the next pass.
func (i *input) pump(sc *scene.Scene, limit int) {
	for n := 0; n < limit; n++ {
		select {
		case k := <-i.keys:
			if e, ok := keyEvent(k); ok {
				sc.Post(e)
			}
		case p := <-i.ptr:
			if e, ok := pointerEvent(p); ok {
				sc.Post(e)
			}
		default:
			return
		}
	}
}

// keyEvent maps navigation keys to option events. Releases are ignored.
func keyEvent(k hal.KeyEvent) (scene.Event, bool) {
	if !k.Press {
		return scene.Event{}, false
	}
	switch k.Code {
	case hal.KeyUp, hal.KeyDown, hal.KeyLeft, hal.KeyRight, hal.KeyTab:
		return scene.Event{Type: scene.OptionWalk}, true
	case hal.KeyEnter:
		return scene.Event{Type: scene.OptionTap}, true
	}
	return scene.Event{}, false
}

func pointerEvent(p hal.PointerEvent) (scene.Event, bool) {
	var t scene.EventType
	switch p.Action {
	case hal.PointerDown:
		t = scene.Pressed
	case hal.PointerUp:
		t = scene.Released
	case hal.PointerMove:
		t = scene.Motion
	default:
		return scene.Event{}, false
	}
	return scene.Event{Type: t, Pos: geom.Pos{X: p.X, Y: p.Y}}, true
}
