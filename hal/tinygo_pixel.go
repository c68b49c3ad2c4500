//go:build tinygo

package hal

import "glint/gui/color"

func clearRGB565(buf []byte, r, g, b uint8) {
	v := color.RGB(r, g, b).RGB565()
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
	}
}
