package draw

import (
	"testing"

	"glint/gui/color"
	"glint/gui/geom"
	"glint/gui/pixmap"
)

func newFilled(w, h int, c color.Color) *Surface {
	s := NewSurface(w, h)
	s.Fill(c)
	return s
}

func equalSurfaces(t *testing.T, got, want *Surface) {
	t.Helper()
	for y := 0; y < want.Height(); y++ {
		g, w := got.LocalRow(y), want.LocalRow(y)
		for x := range w {
			if g[x] != w[x] {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g[x], w[x])
			}
		}
	}
}

func TestFillRectSquare(t *testing.T) {
	s := newFilled(20, 20, color.White)
	FillRect(s, geom.Max, geom.Area{X1: 5, Y1: 5, X2: 14, Y2: 14}, 0, color.Black, color.AlphaMax)

	black := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x <= 14 && y >= 5 && y <= 14
			c := s.At(x, y)
			switch {
			case inside && c != color.Black:
				t.Errorf("(%d,%d) = %v, want black", x, y, c)
			case !inside && c != color.White:
				t.Errorf("(%d,%d) = %v, want white", x, y, c)
			}
			if c == color.Black {
				black++
			}
		}
	}
	if black != 100 {
		t.Errorf("black pixels = %d, want 100", black)
	}
}

func TestFillRectZeroRadiusMatchesCornerPath(t *testing.T) {
	rect := geom.Area{X1: 2, Y1: 3, X2: 17, Y2: 11}
	for _, alpha := range []uint8{255, 128, 7} {
		fast := newFilled(20, 16, color.Gray)
		FillRect(fast, geom.Max, rect, 0, color.Red, alpha)

		slow := newFilled(20, 16, color.Gray)
		cr := newCorners(rect, 0)
		for y := rect.Y1; y <= rect.Y2; y++ {
			for x := rect.X1; x <= rect.X2; x++ {
				if edge, ok := cr.coverage(x, y); ok {
					put(&slow.Row(x, y, 1)[0], color.Red, edge, alpha)
				}
			}
		}
		equalSurfaces(t, fast, slow)
	}
}

func TestFillRectBorderZeroWidth(t *testing.T) {
	rect := geom.Area{X1: 1, Y1: 1, X2: 18, Y2: 12}
	for _, radius := range []int{0, 1, 3, 6, 20} {
		for _, alpha := range []uint8{255, 90} {
			plain := newFilled(20, 14, color.Blue)
			FillRect(plain, geom.Max, rect, radius, color.Green, alpha)
			bordered := newFilled(20, 14, color.Blue)
			FillRectBorder(bordered, geom.Max, rect, radius, color.Green, color.Red, 0, alpha)
			equalSurfaces(t, bordered, plain)
		}
	}
}

func TestFillRectRoundedCorners(t *testing.T) {
	s := newFilled(20, 20, color.White)
	rect := geom.Area{X1: 0, Y1: 0, X2: 19, Y2: 19}
	FillRect(s, geom.Max, rect, 6, color.Black, color.AlphaMax)

	if c := s.At(0, 0); c != color.White {
		t.Errorf("corner pixel = %v, want untouched", c)
	}
	if c := s.At(10, 10); c != color.Black {
		t.Errorf("centre = %v, want black", c)
	}
	for _, p := range []geom.Pos{{X: 6, Y: 0}, {X: 0, Y: 6}, {X: 13, Y: 19}, {X: 19, Y: 13}} {
		if c := s.At(p.X, p.Y); c != color.Black {
			t.Errorf("cross edge %v = %v, want black", p, c)
		}
	}
	// Moving away from the corner centre never makes a pixel darker.
	prev := uint8(0)
	for i := 0; i <= 6; i++ {
		c := s.At(6-i, 6-i)
		if c.R < prev {
			t.Errorf("diagonal %d: %d darker than %d", i, c.R, prev)
		}
		prev = c.R
	}
	// The four corners are symmetric.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.At(x, y)
			if s.At(19-x, y) != c || s.At(x, 19-y) != c || s.At(19-x, 19-y) != c {
				t.Fatalf("asymmetric corner at (%d,%d)", x, y)
			}
		}
	}
}

func TestEdgeAlphaMonotone(t *testing.T) {
	for r := 1; r < 40; r++ {
		prev := 256
		for d := sq(r); d < sq(r+1); d++ {
			edge := int(color.AlphaMax - sqrtError(d))
			if edge > prev {
				t.Fatalf("r=%d d=%d: edge %d rises above %d", r, d, edge, prev)
			}
			prev = edge
		}
		if got := color.AlphaMax - sqrtError(sq(r)); got != color.AlphaMax {
			t.Errorf("edge at r²=%d is %d, want 255", sq(r), got)
		}
	}
}

func TestFillRectBorderStraightEdges(t *testing.T) {
	s := newFilled(12, 12, color.Black)
	FillRectBorder(s, geom.Max, geom.Area{X1: 0, Y1: 0, X2: 11, Y2: 11}, 0, color.White, color.Red, 2, color.AlphaMax)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := color.Red
			if x >= 2 && x <= 9 && y >= 2 && y <= 9 {
				want = color.White
			}
			if c := s.At(x, y); c != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestFillRectRespectsClip(t *testing.T) {
	s := newFilled(10, 10, color.White)
	clip := geom.Area{X1: 3, Y1: 3, X2: 5, Y2: 5}
	FillRect(s, clip, geom.Area{X1: 0, Y1: 0, X2: 9, Y2: 9}, 3, color.Black, color.AlphaMax)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			in := clip.Contains(geom.Pos{X: x, Y: y})
			if c := s.At(x, y); (c == color.Black) != in {
				t.Errorf("(%d,%d) = %v, inside clip %v", x, y, c, in)
			}
		}
	}
	// Disjoint clip draws nothing.
	FillRect(s, geom.Area{X1: 20, Y1: 20, X2: 30, Y2: 30}, geom.Area{X1: 0, Y1: 0, X2: 9, Y2: 9}, 0, color.Red, color.AlphaMax)
	if s.At(0, 0) != color.White {
		t.Error("disjoint clip wrote pixels")
	}
}

func TestSurfaceOrigin(t *testing.T) {
	// A band covering screen rows 10..13.
	s := newFilled(8, 4, color.White)
	s.SetOrigin(0, 10)
	FillRect(s, geom.Max, geom.Area{X1: 2, Y1: 0, X2: 5, Y2: 11}, 0, color.Black, color.AlphaMax)
	for y := 10; y < 14; y++ {
		want := color.White
		if y <= 11 {
			want = color.Black
		}
		if c := s.At(3, y); c != want {
			t.Errorf("(3,%d) = %v, want %v", y, c, want)
		}
	}
}

func TestFillRectPixmapIdentity(t *testing.T) {
	const w, h = 5, 4
	src := make([]color.Color, w*h)
	for i := range src {
		src[i] = color.Color{R: uint8(i * 12), G: uint8(255 - i*12), B: uint8(i * 3)}
	}
	for _, f := range []pixmap.Format{pixmap.RGB888, pixmap.RLERGB888} {
		enc, err := pixmap.Encode(f, w, h, src)
		if err != nil {
			t.Fatal(err)
		}
		pm := pixmap.Pixmap{Width: w, Height: h, Format: f, Bitmap: enc}
		for _, interp := range []pixmap.Interp{pixmap.InterpNearest, pixmap.InterpBilinear} {
			s := newFilled(w+2, h+2, color.Black)
			if err := FillRectPixmap(s, geom.Max, geom.Rect(1, 1, w, h), 0, &pm, color.AlphaMax, interp); err != nil {
				t.Fatalf("%s/%s: %v", f, interp, err)
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if got := s.At(x+1, y+1); got != src[y*w+x] {
						t.Errorf("%s/%s (%d,%d) = %v, want %v", f, interp, x, y, got, src[y*w+x])
					}
				}
			}
			if s.At(0, 0) != color.Black || s.At(w+1, h+1) != color.Black {
				t.Errorf("%s/%s wrote outside the rect", f, interp)
			}
		}
	}
}

func TestRectDispatch(t *testing.T) {
	s := newFilled(6, 6, color.White)
	desc := RectDesc{Color: color.Red, Alpha: color.AlphaMin}
	if err := Rect(s, geom.Max, geom.Rect(0, 0, 6, 6), &desc); err != nil {
		t.Fatal(err)
	}
	if s.At(2, 2) != color.White {
		t.Fatal("transparent descriptor drew")
	}
	desc = RectDesc{Color: color.Red, BorderColor: color.Blue, Border: 1, Alpha: color.AlphaMax}
	if err := Rect(s, geom.Max, geom.Rect(0, 0, 6, 6), &desc); err != nil {
		t.Fatal(err)
	}
	if s.At(0, 0) != color.Blue || s.At(2, 2) != color.Red {
		t.Errorf("bordered rect = %v / %v", s.At(0, 0), s.At(2, 2))
	}
}
