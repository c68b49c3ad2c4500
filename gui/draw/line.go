package draw

import (
	"glint/gui/color"
	"glint/gui/geom"
)

// HLine fills the rows [y, y+width) between x1 and x2 inclusive.
func HLine(s *Surface, area geom.Area, y, x1, x2, width int, c color.Color, alpha uint8) {
	if width <= 0 {
		return
	}
	FillRect(s, area, geom.Area{X1: min(x1, x2), Y1: y, X2: max(x1, x2), Y2: y + width - 1}, 0, c, alpha)
}

// VLine fills the columns [x, x+width) between y1 and y2 inclusive.
func VLine(s *Surface, area geom.Area, x, y1, y2, width int, c color.Color, alpha uint8) {
	if width <= 0 {
		return
	}
	FillRect(s, area, geom.Area{X1: x, Y1: min(y1, y2), X2: x + width - 1, Y2: max(y1, y2)}, 0, c, alpha)
}

// capsuleDist returns the distance from p to the segment a-b in 8-bit fixed
// point. The segment must have non-zero length.
func capsuleDist(px, py, ax, ay, bx, by int) int {
	pax, pay := int64(px-ax), int64(py-ay)
	bax, bay := int64(bx-ax), int64(by-ay)
	bSq := bax*bax + bay*bay
	h := min(max(pax*bax+pay*bay, 0), bSq) << 8
	dx := pax<<8 - bax*h/bSq
	dy := pay<<8 - bay*h/bSq
	return int(isqrt(uint64(dx*dx + dy*dy)))
}

// Line draws an anti-aliased segment from a to b as a capsule of the given
// thickness. Pixels within (thickness-1)/2 of the segment are solid, the
// next pixel of distance fades out. Thickness 0 or 1 draws a thin solid
// line without blending.
func Line(s *Surface, area geom.Area, a, b geom.Pos, thickness int, c color.Color, alpha uint8) {
	if a == b {
		return
	}
	half := max(thickness, 1) / 2
	box := geom.Area{
		X1: min(a.X, b.X) - half, Y1: min(a.Y, b.Y) - half,
		X2: max(a.X, b.X) + half, Y2: max(a.Y, b.Y) + half,
	}
	clip, ok := s.clip(area, box)
	if !ok {
		return
	}

	thin := thickness <= 1
	solid := (thickness - 1) << 7
	if thin {
		solid = 1 << 7
	}
	fade := solid + 1<<8

	w := clip.Width()
	for y := clip.Y1; y <= clip.Y2; y++ {
		row := s.Row(clip.X1, y, w)
		for i := range row {
			d := capsuleDist(clip.X1+i, y, a.X, a.Y, b.X, b.Y)
			switch {
			case d <= solid:
				color.Blend(&row[i], c, alpha)
			case !thin && d < fade:
				put(&row[i], c, uint8(fade-d-1), alpha)
			}
		}
	}
}
