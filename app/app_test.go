package app

import (
	"testing"

	"glint/gui/scene"
	"glint/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(v)
		f.buf[i+1] = byte(v >> 8)
	}
}

type testHAL struct {
	fb    *testFB
	lines []string
	keys  chan hal.KeyEvent
	ptr   chan hal.PointerEvent
	ticks chan uint64
	seq   uint64
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:    &testFB{w: w, h: h, buf: make([]byte, w*h*2)},
		keys:  make(chan hal.KeyEvent, 16),
		ptr:   make(chan hal.PointerEvent, 16),
		ticks: make(chan uint64, 64),
	}
}

func (h *testHAL) Logger() hal.Logger   { return h }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Flash() hal.Flash     { return nil }
func (h *testHAL) Time() hal.Time       { return h }

func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Keyboard() hal.Keyboard       { return h }
func (h *testHAL) Pointer() hal.Pointer         { return pointerSource(h.ptr) }
func (h *testHAL) Events() <-chan hal.KeyEvent  { return h.keys }
func (h *testHAL) Ticks() <-chan uint64         { return h.ticks }
func (h *testHAL) WriteLineString(s string)     { h.lines = append(h.lines, s) }
func (h *testHAL) WriteLineBytes(b []byte)      { h.lines = append(h.lines, string(b)) }
func (h *testHAL) tick(ms uint64)               { h.seq += ms; h.ticks <- h.seq }

type pointerSource chan hal.PointerEvent

func (p pointerSource) Events() <-chan hal.PointerEvent { return p }

func TestKeyEvents(t *testing.T) {
	for _, c := range []struct {
		k    hal.KeyEvent
		want scene.EventType
		ok   bool
	}{
		{hal.KeyEvent{Code: hal.KeyTab, Press: true}, scene.OptionWalk, true},
		{hal.KeyEvent{Code: hal.KeyLeft, Press: true}, scene.OptionWalk, true},
		{hal.KeyEvent{Code: hal.KeyEnter, Press: true}, scene.OptionTap, true},
		{hal.KeyEvent{Code: hal.KeyEnter}, scene.EventNone, false},
		{hal.KeyEvent{Code: hal.KeyUnknown, Press: true, Rune: 'a'}, scene.EventNone, false},
	} {
		e, ok := keyEvent(c.k)
		if ok != c.ok || e.Type != c.want {
			t.Errorf("keyEvent(%+v) = %v, %v, want %v, %v", c.k, e.Type, ok, c.want, c.ok)
		}
	}
}

func TestPointerEvents(t *testing.T) {
	for _, c := range []struct {
		action hal.PointerAction
		want   scene.EventType
	}{
		{hal.PointerDown, scene.Pressed},
		{hal.PointerUp, scene.Released},
		{hal.PointerMove, scene.Motion},
	} {
		e, ok := pointerEvent(hal.PointerEvent{Action: c.action, X: 3, Y: 4})
		if !ok || e.Type != c.want || e.Pos.X != 3 || e.Pos.Y != 4 {
			t.Errorf("pointerEvent(%d) = %+v, %v", c.action, e, ok)
		}
	}
	if _, ok := pointerEvent(hal.PointerEvent{}); ok {
		t.Error("pointerEvent accepted a zero action")
	}
}

func TestClock(t *testing.T) {
	ch := make(chan uint64, 8)
	c := clock{ticks: ch}
	ch <- 5
	ch <- 7
	ch <- 12
	if dt := c.elapsed(); dt != 7 {
		t.Errorf("elapsed = %d, want 7", dt)
	}
	if dt := c.elapsed(); dt != 0 {
		t.Errorf("idle elapsed = %d, want 0", dt)
	}
	ch <- 20
	ch <- 21
	if dt := c.wait(); dt != 9 {
		t.Errorf("wait = %d, want 9", dt)
	}

	var none clock
	if dt := none.elapsed(); dt != fallbackTickMS {
		t.Errorf("elapsed without time = %d, want %d", dt, fallbackTickMS)
	}
}

func TestBootLogoThenDemo(t *testing.T) {
	h := newTestHAL(320, 240)
	a, err := New(h, Config{BootLogo: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	steps := 0
	for ; a.demo == nil && steps < 40; steps++ {
		h.tick(100)
		if err := a.Step(); err != nil {
			t.Fatalf("Step %d: %v", steps, err)
		}
	}
	if a.demo == nil {
		t.Fatal("demo not shown after the boot logo")
	}
	if steps < 10 {
		t.Errorf("boot logo lasted %d steps of 100 ms, want at least 10", steps)
	}
	if a.logo != nil {
		t.Error("boot logo still open")
	}
	if f := a.Loop().Scene().Focus(); f == nil || f != a.demo.dialog.Node() {
		t.Errorf("focus = %v, want the dialog", f)
	}
	if h.fb.presents == 0 {
		t.Error("nothing presented")
	}
	if len(h.lines) == 0 {
		t.Error("nothing logged through the HAL logger")
	}
}

func TestDialogAnswersFromKeys(t *testing.T) {
	h := newTestHAL(320, 240)
	a, err := New(h, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.tick(1)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	d := a.demo
	if d == nil || d.dialog == nil {
		t.Fatal("demo dialog missing")
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyTab}
	h.keys <- hal.KeyEvent{Code: hal.KeyTab, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	h.tick(16)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if d.dialog != nil {
		t.Error("dialog still open after Enter")
	}
	if got := d.answer.Text(); got != "answer: Cancel" {
		t.Errorf("answer = %q, want %q", got, "answer: Cancel")
	}
	if a.Loop().Scene().Focus() != nil {
		t.Error("focus kept on a deleted dialog")
	}
}

func TestBounceMovesBall(t *testing.T) {
	h := newTestHAL(320, 240)
	a, err := New(h, Config{})
	if err != nil {
		t.Fatal(err)
	}
	h.tick(1)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	x0 := a.demo.ball.Node().Coords().X1
	h.tick(bounceMS / 2)
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	want := int(a.demo.bounce.End)
	if x := a.demo.ball.Node().Coords().X1; x != want || x == x0 {
		t.Errorf("ball x = %d after half a bounce, want %d", x, want)
	}
}
