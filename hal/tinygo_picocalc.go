//go:build tinygo && baremetal && picocalc

package hal

const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

type picoCalcHAL struct {
	logger *uartLogger
	fb     *picoCalcFramebuffer
	kbd    Keyboard
	t      *tinyGoTime
	flash  Flash
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	logger := newUARTLogger()
	fb := &picoCalcFramebuffer{
		w:      picoCalcWidth,
		h:      picoCalcHeight,
		stride: picoCalcWidth * 2,
		buf:    make([]byte, picoCalcWidth*picoCalcHeight*2),
	}
	if lcd, err := initILI9488(); err == nil {
		fb.lcd = lcd
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
	}

	var kbd Keyboard = stubKeyboard{}
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: keyboard: " + err.Error())
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     fb,
		kbd:    kbd,
		t:      newTinyGoTime(),
		flash:  newRP2Flash(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd, ptr: stubPointer{}} }
func (h *picoCalcHAL) Flash() Flash     { return h.flash }
func (h *picoCalcHAL) Time() Time       { return h.t }

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
}

func (f *picoCalcFramebuffer) Width() int             { return f.w }
func (f *picoCalcFramebuffer) Height() int            { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int       { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte         { return f.buf }
func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) { clearRGB565(f.buf, r, g, b) }

func (f *picoCalcFramebuffer) Present() error {
	return f.PresentRegion(0, 0, f.w, f.h)
}

// PresentRegion sends only the given rectangle over SPI. Without a panel
// the frame is dropped.
func (f *picoCalcFramebuffer) PresentRegion(x, y, w, h int) error {
	if f.lcd == nil {
		return nil
	}
	return f.lcd.blitRegion(f.buf, f.stride, x, y, w, h)
}
