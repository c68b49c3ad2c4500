package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/fonts/font6x8"
	"glint/gui/glog"
	"glint/gui/task"
	"glint/hal"
)

// showPanic logs a recovered panic with its stack and paints it over the
// screen.
func showPanic(h hal.HAL, v any) {
	lines := []string{"glint panic:", fmt.Sprintf("%v", v)}
	stack := string(debug.Stack())
	glog.Logger().Error("panic", "value", v)
	if stack == "" {
		lines = append(lines, "stack: unavailable")
	} else {
		lines = append(lines, "stack:")
		for line := range strings.SplitSeq(stack, "\n") {
			if line == "" {
				continue
			}
			glog.Logger().Error(line)
			lines = append(lines, line)
		}
	}
	textScreen(h, lines)
}

// showFatal paints err and halts.
func showFatal(h hal.HAL, err error) {
	glog.Logger().Error("fatal", "err", err)
	textScreen(h, []string{"glint error:", err.Error()})
	select {}
}

// textScreen paints lines black on white, wrapping at the screen width, one
// text row at a time.
func textScreen(h hal.HAL, lines []string) {
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(255, 255, 255)

	rowH := font6x8.Height + 2
	cols := max(fb.Width()/font6x8.Width, 1)
	row := draw.NewSurface(fb.Width(), rowH)
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+rowH > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			row.SetOrigin(0, y)
			row.Fill(color.White)
			draw.String(row, row.Bounds(), 0, y+1, chunk, color.Black, color.AlphaMax, font6x8.Font)
			task.Blit(fb, row)
			y += rowH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
