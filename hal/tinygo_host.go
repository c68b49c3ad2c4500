//go:build tinygo && !baremetal

package hal

import "time"

type tinyGoHostHAL struct {
	logger tinyGoHostLogger
	fb     *tinyGoHostFramebuffer
	t      *tinyGoHostTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	return &tinyGoHostHAL{
		fb: newTinyGoHostFramebuffer(320, 320),
		t:  newTinyGoHostTime(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{} }
func (h *tinyGoHostHAL) Flash() Flash     { return stubFlash{} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostInput struct{}

func (tinyGoHostInput) Keyboard() Keyboard { return tinyGoHostKeyboard{} }
func (tinyGoHostInput) Pointer() Pointer   { return tinyGoHostPointer{} }

type tinyGoHostKeyboard struct{}

func (tinyGoHostKeyboard) Events() <-chan KeyEvent { return nil }

type tinyGoHostPointer struct{}

func (tinyGoHostPointer) Events() <-chan PointerEvent { return nil }

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime() *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 64)}
	go func() {
		ticker := time.NewTicker(time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoHostTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoHostLogger struct{}

func (tinyGoHostLogger) WriteLineString(s string) { println(s) }
func (tinyGoHostLogger) WriteLineBytes(b []byte)  { println(string(b)) }
