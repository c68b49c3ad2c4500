package draw

import (
	"testing"

	"glint/gui/color"
	"glint/gui/geom"
)

func TestLineThickHorizontal(t *testing.T) {
	c := color.Color{R: 200, G: 10, B: 90}
	s := NewSurface(16, 12)
	Line(s, geom.Max, geom.Pos{X: 0, Y: 5}, geom.Pos{X: 10, Y: 5}, 3, c, color.AlphaMax)

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			got := s.At(x, y)
			if y < 4 || y > 6 {
				if got != color.Black {
					t.Errorf("(%d,%d) = %v outside rows 4..6", x, y, got)
				}
				continue
			}
			if x <= 10 && got != c {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestLineThinHasNoGaps(t *testing.T) {
	s := NewSurface(20, 20)
	Line(s, geom.Max, geom.Pos{X: 1, Y: 2}, geom.Pos{X: 18, Y: 9}, 1, color.White, color.AlphaMax)
	for x := 1; x <= 18; x++ {
		hit := false
		for y := 0; y < 20; y++ {
			switch s.At(x, y) {
			case color.White:
				hit = true
			case color.Black:
			default:
				t.Fatalf("thin line blended pixel (%d,%d)", x, y)
			}
		}
		if !hit {
			t.Errorf("column %d has no line pixel", x)
		}
	}
}

func TestLineZeroLength(t *testing.T) {
	s := NewSurface(4, 4)
	Line(s, geom.Max, geom.Pos{X: 2, Y: 2}, geom.Pos{X: 2, Y: 2}, 3, color.White, color.AlphaMax)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.At(x, y) != color.Black {
				t.Fatalf("zero-length line wrote (%d,%d)", x, y)
			}
		}
	}
}

func TestLineEdgeFades(t *testing.T) {
	s := NewSurface(30, 30)
	Line(s, geom.Max, geom.Pos{X: 3, Y: 3}, geom.Pos{X: 26, Y: 20}, 4, color.White, color.AlphaMax)
	partial := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if c := s.At(x, y); c != color.White && c != color.Black {
				partial++
			}
		}
	}
	if partial == 0 {
		t.Error("diagonal thick line has no anti-aliased pixels")
	}
}

func TestHVLine(t *testing.T) {
	s := NewSurface(10, 10)
	HLine(s, geom.Max, 2, 8, 1, 2, color.Red, color.AlphaMax)
	VLine(s, geom.Area{X1: 0, Y1: 0, X2: 9, Y2: 4}, 5, 0, 9, 1, color.Blue, color.AlphaMax)
	if s.At(1, 2) != color.Red || s.At(8, 3) != color.Red || s.At(4, 4) != color.Black {
		t.Errorf("hline pixels = %v %v %v", s.At(1, 2), s.At(8, 3), s.At(4, 4))
	}
	if s.At(5, 4) != color.Blue || s.At(5, 5) != color.Black {
		t.Errorf("vline clip: (5,4)=%v (5,5)=%v", s.At(5, 4), s.At(5, 5))
	}
}

func TestDisc(t *testing.T) {
	s := newFilled(21, 21, color.Black)
	Disc(s, geom.Max, geom.Pos{X: 10, Y: 10}, 8, color.White, color.Red, color.AlphaMax)
	if c := s.At(10, 10); c != color.White {
		t.Errorf("centre = %v, want fg", c)
	}
	if c := s.At(1, 1); c != color.Black {
		t.Errorf("outside = %v, want untouched", c)
	}
	if c := s.At(10, 3); c.G >= 255 || c.R != 255 {
		t.Errorf("near rim = %v, want mostly bg", c)
	}
	Disc(s, geom.Max, geom.Pos{X: 10, Y: 10}, 0, color.Blue, color.Blue, color.AlphaMax)
	if s.At(10, 10) != color.White {
		t.Error("zero radius disc drew")
	}
}
