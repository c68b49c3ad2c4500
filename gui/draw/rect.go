package draw

import (
	"glint/gui/color"
	"glint/gui/geom"
	"glint/gui/pixmap"
)

// corners classifies pixels of a rounded rectangle. Pixels in the central
// cross are always covered; elsewhere coverage comes from the squared
// distance to the nearest corner centre.
type corners struct {
	r                  int
	cx1, cx2, cy1, cy2 int
	r2, r2Edge         int
}

// clampRadius keeps the corner arcs from overlapping.
func clampRadius(rect geom.Area, r int) int {
	if r <= 0 {
		return 0
	}
	return min(r, (min(rect.Width(), rect.Height())-1)/2)
}

func newCorners(rect geom.Area, r int) corners {
	r = clampRadius(rect, r)
	return corners{
		r:   r,
		cx1: rect.X1 + r, cx2: rect.X2 - r,
		cy1: rect.Y1 + r, cy2: rect.Y2 - r,
		r2: sq(r), r2Edge: sq(r + 1),
	}
}

func (c *corners) inCross(x, y int) bool {
	return (x >= c.cx1 && x <= c.cx2) || (y >= c.cy1 && y <= c.cy2)
}

// dist2 is the squared distance from (x, y) to the nearest corner centre.
func (c *corners) dist2(x, y int) int {
	cx := c.cx1
	if x > c.cx1 {
		cx = c.cx2
	}
	cy := c.cy1
	if y > c.cy1 {
		cy = c.cy2
	}
	return sq(x-cx) + sq(y-cy)
}

// coverage returns the edge alpha of (x, y); ok is false outside the shape.
func (c *corners) coverage(x, y int) (edge uint8, ok bool) {
	if c.inCross(x, y) {
		return color.AlphaMax, true
	}
	d := c.dist2(x, y)
	switch {
	case d >= c.r2Edge:
		return 0, false
	case d >= c.r2:
		return color.AlphaMax - sqrtError(d), true
	default:
		return color.AlphaMax, true
	}
}

// FillRect fills rect with c, rounding its corners by radius. Pixels on the
// arc get an anti-aliased edge.
func FillRect(s *Surface, area, rect geom.Area, radius int, c color.Color, alpha uint8) {
	clip, ok := s.clip(area, rect)
	if !ok {
		return
	}
	cr := newCorners(rect, radius)
	w := clip.Width()
	for y := clip.Y1; y <= clip.Y2; y++ {
		row := s.Row(clip.X1, y, w)
		if cr.r == 0 || (y >= cr.cy1 && y <= cr.cy2) {
			for i := range row {
				color.Blend(&row[i], c, alpha)
			}
			continue
		}
		for i := range row {
			if edge, ok := cr.coverage(clip.X1+i, y); ok {
				put(&row[i], c, edge, alpha)
			}
		}
	}
}

// FillRectBorder fills rect with c and strokes a border of width bw in
// border, both following the same rounded outline. A zero border width
// draws exactly what FillRect draws.
func FillRectBorder(s *Surface, area, rect geom.Area, radius int, c, border color.Color, bw int, alpha uint8) {
	if bw <= 0 {
		FillRect(s, area, rect, radius, c, alpha)
		return
	}
	clip, ok := s.clip(area, rect)
	if !ok {
		return
	}
	cr := newCorners(rect, radius)
	inner := rect.Inset(bw)
	rin := max(cr.r-bw+1, 0)
	in2, in2Solid := sq(rin), sq(rin-1)

	w := clip.Width()
	for y := clip.Y1; y <= clip.Y2; y++ {
		row := s.Row(clip.X1, y, w)
		innerRow := y >= inner.Y1 && y <= inner.Y2
		for i := range row {
			x := clip.X1 + i
			if cr.inCross(x, y) {
				if innerRow && x >= inner.X1 && x <= inner.X2 {
					color.Blend(&row[i], c, alpha)
				} else {
					color.Blend(&row[i], border, alpha)
				}
				continue
			}
			d := cr.dist2(x, y)
			switch {
			case d >= cr.r2Edge:
			case rin > 0 && d < in2Solid:
				color.Blend(&row[i], c, alpha)
			case rin > 0 && d < in2:
				color.Blend(&row[i], color.Mix(border, c, sqrtError(d)), alpha)
			case d >= cr.r2:
				put(&row[i], border, color.AlphaMax-sqrtError(d), alpha)
			default:
				color.Blend(&row[i], border, alpha)
			}
		}
	}
}

// FillRectPixmap fills rect with pm scaled to the rect size, rounding its
// corners by radius. An unreadable pixmap leaves the surface untouched and
// returns the decode error.
func FillRectPixmap(s *Surface, area, rect geom.Area, radius int, pm *pixmap.Pixmap, alpha uint8, interp pixmap.Interp) error {
	clip, ok := s.clip(area, rect)
	if !ok {
		return nil
	}
	if err := pm.Validate(); err != nil {
		return err
	}
	nc, nb := pixmap.ScratchSize(pm)
	smp := pixmap.NewSampler(pm, s.Scratch(nc), s.Stage(nb))
	if err := smp.Err(); err != nil {
		return err
	}

	cr := newCorners(rect, radius)
	scaleX := pixmap.Scale(pm.Width, rect.Width())
	scaleY := pixmap.Scale(pm.Height, rect.Height())
	w := clip.Width()
	for y := clip.Y1; y <= clip.Y2; y++ {
		row := s.Row(clip.X1, y, w)
		fy := int64(y-rect.Y1) * scaleY
		for i := range row {
			x := clip.X1 + i
			edge, ok := cr.coverage(x, y)
			if !ok {
				continue
			}
			fx := int64(x-rect.X1) * scaleX
			var src color.Color
			if interp == pixmap.InterpBilinear {
				src = smp.Bilinear(fx, fy)
			} else {
				src = smp.Pixel(int(fx>>pixmap.FixedShift), int(fy>>pixmap.FixedShift))
			}
			put(&row[i], src, edge, alpha)
		}
		if err := smp.Err(); err != nil {
			return err
		}
	}
	return nil
}

// RectDesc describes a background: a fill color or pixmap, an optional
// border and a corner radius.
type RectDesc struct {
	Color       color.Color
	BorderColor color.Color
	Border      int
	Radius      int
	Alpha       uint8
	Pixmap      *pixmap.Pixmap
	Interp      pixmap.Interp
}

// Rect draws desc into rect. A fully transparent descriptor draws nothing.
func Rect(s *Surface, area, rect geom.Area, desc *RectDesc) error {
	if desc.Alpha == color.AlphaMin {
		return nil
	}
	switch {
	case desc.Pixmap != nil:
		return FillRectPixmap(s, area, rect, desc.Radius, desc.Pixmap, desc.Alpha, desc.Interp)
	case desc.Border == 0:
		FillRect(s, area, rect, desc.Radius, desc.Color, desc.Alpha)
	default:
		FillRectBorder(s, area, rect, desc.Radius, desc.Color, desc.BorderColor, desc.Border, desc.Alpha)
	}
	return nil
}
