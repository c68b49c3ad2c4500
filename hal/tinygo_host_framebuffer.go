//go:build tinygo && !baremetal

package hal

type tinyGoHostFramebuffer struct {
	w, h int
	buf  []byte
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	return &tinyGoHostFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *tinyGoHostFramebuffer) Width() int             { return f.w }
func (f *tinyGoHostFramebuffer) Height() int            { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *tinyGoHostFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *tinyGoHostFramebuffer) Buffer() []byte         { return f.buf }
func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) { clearRGB565(f.buf, r, g, b) }
func (f *tinyGoHostFramebuffer) Present() error         { return nil }
