package draw

import (
	"glint/gui/color"
	"glint/gui/geom"
)

// Disc fills a circle of the given radius around center with a radial
// gradient from fg at the centre to bg at the rim. The rim is anti-aliased
// in bg.
func Disc(s *Surface, area geom.Area, center geom.Pos, radius int, fg, bg color.Color, alpha uint8) {
	if radius <= 0 {
		return
	}
	box := geom.Area{
		X1: center.X - radius, Y1: center.Y - radius,
		X2: center.X + radius, Y2: center.Y + radius,
	}
	clip, ok := s.clip(area, box)
	if !ok {
		return
	}
	r2, r2Edge := sq(radius), sq(radius+1)
	w := clip.Width()
	for y := clip.Y1; y <= clip.Y2; y++ {
		row := s.Row(clip.X1, y, w)
		dy2 := sq(y - center.Y)
		for i := range row {
			d := sq(clip.X1+i-center.X) + dy2
			switch {
			case d >= r2Edge:
			case d >= r2:
				put(&row[i], bg, color.AlphaMax-sqrtError(d), alpha)
			default:
				color.Blend(&row[i], color.Mix(bg, fg, uint8(d*255/r2)), alpha)
			}
		}
	}
}
