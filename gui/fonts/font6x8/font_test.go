package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	set map[[2]int16]bool
}

func (r *recorder) Size() (int16, int16) { return 64, 16 }
func (r *recorder) SetPixel(x, y int16, _ color.RGBA) {
	r.set[[2]int16{x, y}] = true
}
func (r *recorder) Display() error { return nil }

func TestTableCoversASCII(t *testing.T) {
	if want := (0x7e - 0x20 + 1) * 5; len(glyphData) != want {
		t.Fatalf("glyphData has %d bytes, want %d", len(glyphData), want)
	}
}

func TestLineWidth(t *testing.T) {
	_, outbox := tinyfont.LineWidth(Font, "abc")
	if outbox != 18 {
		t.Errorf("LineWidth(abc) = %d, want 18", outbox)
	}
}

func TestGlyphStaysInCell(t *testing.T) {
	r := &recorder{set: map[[2]int16]bool{}}
	tinyfont.WriteLine(r, Font, 10, 7, "I", color.RGBA{A: 255})
	if len(r.set) == 0 {
		t.Fatal("glyph drew nothing")
	}
	for p := range r.set {
		if p[0] < 10 || p[0] >= 10+Width || p[1] < 0 || p[1] >= Height {
			t.Errorf("pixel %v outside the 6x8 cell", p)
		}
	}
	// 'I' is a vertical bar in the middle column.
	for y := int16(0); y < 7; y++ {
		if !r.set[[2]int16{12, y}] {
			t.Errorf("missing stem pixel (12,%d)", y)
		}
	}
}
