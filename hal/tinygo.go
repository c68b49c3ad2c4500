//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	t      *tinyGoTime
	flash  Flash
}

// New returns a Pico 2 (RP2350) HAL implementation without a panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	return &tinyGoHAL{
		logger: newUARTLogger(),
		fb:     newStubFramebuffer(320, 320),
		t:      newTinyGoTime(),
		flash:  newRP2Flash(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: stubKeyboard{}, ptr: stubPointer{}} }
func (h *tinyGoHAL) Flash() Flash     { return h.flash }
func (h *tinyGoHAL) Time() Time       { return h.t }
