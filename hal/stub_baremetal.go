//go:build tinygo && baremetal

package hal

// stubFramebuffer stands in for boards without a panel driver. It keeps a
// real buffer so rendering still runs; Present has nowhere to send it.
type stubFramebuffer struct {
	w, h int
	buf  []byte
}

func newStubFramebuffer(w, h int) *stubFramebuffer {
	return &stubFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *stubFramebuffer) Width() int             { return f.w }
func (f *stubFramebuffer) Height() int            { return f.h }
func (f *stubFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *stubFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte         { return f.buf }
func (f *stubFramebuffer) ClearRGB(r, g, b uint8) { clearRGB565(f.buf, r, g, b) }
func (f *stubFramebuffer) Present() error         { return ErrNotImplemented }

type stubKeyboard struct{}

func (stubKeyboard) Events() <-chan KeyEvent { return nil }

type stubPointer struct{}

func (stubPointer) Events() <-chan PointerEvent { return nil }
