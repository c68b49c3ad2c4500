//go:build !tinygo && !cgo

package hal

// Without the window backend there is no keyboard or mouse; the devices
// exist so headless runs see empty event streams.

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
func (k *hostKeyboard) poll()                   {}

type hostPointer struct {
	ch chan PointerEvent
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }
func (p *hostPointer) poll()                       {}
