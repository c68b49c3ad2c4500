package draw

import (
	"glint/gui/color"
	"glint/gui/geom"
	"glint/gui/pixmap"
)

// Image blits pm unscaled with its top-left corner at at. RLE pixmaps are
// decoded with a fresh decoder; rows above the visible part are decoded and
// dropped so the stream stays in step. When the last image row is visible
// the terminator is checked as well.
func Image(s *Surface, area geom.Area, at geom.Pos, pm *pixmap.Pixmap, alpha uint8) error {
	if alpha == color.AlphaMin {
		return nil
	}
	rect := geom.Rect(at.X, at.Y, pm.Width, pm.Height)
	clip, ok := s.clip(area, rect)
	if !ok {
		return nil
	}
	if err := pm.Validate(); err != nil {
		return err
	}
	w := clip.Width()
	x0 := clip.X1 - rect.X1

	if pm.Format.IsRLE() {
		dec := pixmap.NewDecoder(pm)
		if !dec.SkipRows(clip.Y1 - rect.Y1) {
			return dec.Err()
		}
		span := s.Scratch(w)
		for y := clip.Y1; y <= clip.Y2; y++ {
			row := s.Row(clip.X1, y, w)
			if alpha == color.AlphaMax {
				if !dec.ReadRow(row, x0) {
					return dec.Err()
				}
				continue
			}
			if !dec.ReadRow(span, x0) {
				return dec.Err()
			}
			blendSpan(row, span, alpha)
		}
		if clip.Y2 == rect.Y2 {
			return dec.Finish()
		}
		return nil
	}

	span := s.Scratch(w)
	stage := s.Stage(w * pm.Format.BytesPerPixel())
	for y := clip.Y1; y <= clip.Y2; y++ {
		if err := pm.ReadSpan(span, x0, y-rect.Y1, stage); err != nil {
			return err
		}
		blendSpan(s.Row(clip.X1, y, w), span, alpha)
	}
	return nil
}

func blendSpan(dst, src []color.Color, alpha uint8) {
	if alpha == color.AlphaMax {
		copy(dst, src)
		return
	}
	for i := range dst {
		dst[i] = color.Mix(src[i], dst[i], alpha)
	}
}
