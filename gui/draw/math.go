package draw

import "glint/gui/color"

// isqrt returns floor(sqrt(v)).
func isqrt(v uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// sqrtError approximates 255*frac(sqrt(d)) without floating point, by
// linear interpolation between the neighbouring perfect squares. It is
// monotone inside each [s², (s+1)²) band.
func sqrtError(d int) uint8 {
	if d <= 0 {
		return 0
	}
	s := int(isqrt(uint64(d)))
	return uint8((d - s*s) * 255 / (2*s + 1))
}

// put writes c over *dst, first with the shape coverage edge and then with
// the global alpha.
func put(dst *color.Color, c color.Color, edge, alpha uint8) {
	if edge != color.AlphaMax {
		c = color.Mix(c, *dst, edge)
	}
	color.Blend(dst, c, alpha)
}

func sq(v int) int { return v * v }
