// Package draw rasterizes shapes, pixmaps and text into a Surface.
//
// Every primitive takes the caller's clip area, intersects it with the
// surface bounds and the shape, and does nothing when the result is empty.
// No primitive writes outside that intersection.
package draw

import (
	"fmt"

	"glint/gui/color"
	"glint/gui/geom"
)

// Surface is a window of w×h pixels placed at (X1, Y1) in screen space.
// Rows are Pitch pixels apart in the backing buffer.
type Surface struct {
	x1, y1 int
	w, h   int
	pitch  int
	buf    []color.Color

	scratch []color.Color
	stage   []byte
}

// NewSurface allocates a w×h surface at the screen origin.
func NewSurface(w, h int) *Surface {
	return &Surface{w: w, h: h, pitch: w, buf: make([]color.Color, w*h)}
}

// WrapSurface borrows buf as a w×h surface with the given row pitch.
func WrapSurface(buf []color.Color, w, h, pitch int) (*Surface, error) {
	if w <= 0 || h <= 0 || pitch < w {
		return nil, fmt.Errorf("draw: invalid surface %dx%d pitch %d", w, h, pitch)
	}
	if need := (h-1)*pitch + w; len(buf) < need {
		return nil, fmt.Errorf("draw: surface buffer has %d pixels, need %d", len(buf), need)
	}
	return &Surface{w: w, h: h, pitch: pitch, buf: buf}, nil
}

// SetOrigin moves the surface window to (x, y) without touching its pixels.
func (s *Surface) SetOrigin(x, y int) {
	s.x1 = x
	s.y1 = y
}

// Reshape reuses the buffer as a tightly packed w×h surface. It reports
// false, leaving the surface unchanged, when the buffer is too small.
func (s *Surface) Reshape(w, h int) bool {
	if w <= 0 || h <= 0 || w*h > len(s.buf) {
		return false
	}
	s.w, s.h, s.pitch = w, h, w
	return true
}

func (s *Surface) Width() int  { return s.w }
func (s *Surface) Height() int { return s.h }

// Bounds is the screen-space area the surface covers.
func (s *Surface) Bounds() geom.Area {
	return geom.Area{X1: s.x1, Y1: s.y1, X2: s.x1 + s.w - 1, Y2: s.y1 + s.h - 1}
}

// Clip intersects area with the surface bounds.
func (s *Surface) Clip(area geom.Area) (geom.Area, bool) {
	return geom.Clip(s.Bounds(), area)
}

// Row returns the n pixels starting at screen position (x, y), or nil when
// any of them lies outside the surface.
func (s *Surface) Row(x, y, n int) []color.Color {
	lx, ly := x-s.x1, y-s.y1
	if n <= 0 || lx < 0 || ly < 0 || ly >= s.h || lx+n > s.w {
		return nil
	}
	off := ly*s.pitch + lx
	return s.buf[off : off+n : off+n]
}

// LocalRow returns surface row y (0-based) in full.
func (s *Surface) LocalRow(y int) []color.Color {
	return s.Row(s.x1, s.y1+y, s.w)
}

func (s *Surface) At(x, y int) color.Color {
	if row := s.Row(x, y, 1); row != nil {
		return row[0]
	}
	return color.Black
}

func (s *Surface) Set(x, y int, c color.Color) {
	if row := s.Row(x, y, 1); row != nil {
		row[0] = c
	}
}

// Fill sets every visible pixel to c.
func (s *Surface) Fill(c color.Color) {
	for y := 0; y < s.h; y++ {
		row := s.LocalRow(y)
		for i := range row {
			row[i] = c
		}
	}
}

// Scratch returns a reusable color buffer of n pixels. Its contents are
// undefined and it is invalidated by the next call.
func (s *Surface) Scratch(n int) []color.Color {
	if cap(s.scratch) < n {
		s.scratch = make([]color.Color, n)
	}
	return s.scratch[:n]
}

// Stage returns a reusable byte buffer of n bytes for streamed reads.
func (s *Surface) Stage(n int) []byte {
	if cap(s.stage) < n {
		s.stage = make([]byte, n)
	}
	return s.stage[:n]
}

// clip intersects the surface, the caller's area and the shape.
func (s *Surface) clip(area, shape geom.Area) (geom.Area, bool) {
	c, ok := s.Clip(area)
	if !ok {
		return c, false
	}
	return c, geom.SelfClip(&c, shape)
}
