package pixmap

import (
	"bytes"
	"errors"
	"testing"

	"glint/gui/color"
)

func TestDecodeTwoRuns(t *testing.T) {
	a := color.FromRGB332(0xFF)
	b := color.FromRGB332(0x00)
	pm := Pixmap{Width: 5, Height: 1, Format: RLERGB332, Bitmap: []byte{3, 0xFF, 2, 0x00, 0}}

	d := NewDecoder(&pm)
	out := make([]color.Color, 5)
	if !d.ReadRow(out, 0) {
		t.Fatalf("ReadRow failed: %v", d.Err())
	}
	want := []color.Color{a, a, a, b, b}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("pixel %d = %v, want %v", i, out[i], want[i])
		}
	}
	if err := d.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if !d.Exhausted() {
		t.Error("decoder not exhausted after terminator")
	}
}

func checkerboard(w, h int) []color.Color {
	px := make([]color.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case (x/3+y)%2 == 0:
				px[y*w+x] = color.Red
			case x%5 == 0:
				px[y*w+x] = color.Blue
			default:
				px[y*w+x] = color.White
			}
		}
	}
	return px
}

func TestDecodeConsumesEveryPixel(t *testing.T) {
	for _, f := range []Format{RLERGB332, RLERGB565, RLERGB888} {
		const w, h = 17, 9
		src := checkerboard(w, h)
		enc, err := Encode(f, w, h, src)
		if err != nil {
			t.Fatalf("Encode %s: %v", f, err)
		}
		pm := Pixmap{Width: w, Height: h, Format: f, Bitmap: enc}

		d := NewDecoder(&pm)
		// Emit only columns 4..9 of rows 2..5, skip the rest.
		d.SkipRows(2)
		win := make([]color.Color, 6)
		for y := 2; y <= 5; y++ {
			if !d.ReadRow(win, 4) {
				t.Fatalf("%s row %d: %v", f, y, d.Err())
			}
			for i, c := range win {
				if want := src[y*w+4+i]; c != want {
					t.Errorf("%s (%d,%d) = %v, want %v", f, 4+i, y, c, want)
				}
			}
		}
		if err := d.Finish(); err != nil {
			t.Fatalf("%s Finish: %v", f, err)
		}
		if d.Consumed() != w*h {
			t.Errorf("%s Consumed = %d, want %d", f, d.Consumed(), w*h)
		}
		if d.Offset() != int64(len(enc)) {
			t.Errorf("%s Offset = %d, want %d", f, d.Offset(), len(enc))
		}
		if !d.Exhausted() {
			t.Errorf("%s not exhausted", f)
		}
	}
}

func TestDecodeRunSpansRows(t *testing.T) {
	// One 8-pixel run covers two rows of a 4x2 image.
	pm := Pixmap{Width: 4, Height: 2, Format: RLERGB565, Bitmap: []byte{8, 0x00, 0xF8, 0}}
	d := NewDecoder(&pm)
	row := make([]color.Color, 4)
	for y := 0; y < 2; y++ {
		if !d.ReadRow(row, 0) {
			t.Fatalf("row %d: %v", y, d.Err())
		}
		for _, c := range row {
			if c != color.Red {
				t.Fatalf("row %d pixel = %v, want red", y, c)
			}
		}
	}
	if err := d.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeHardening(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		want   error
	}{
		{"early terminator", []byte{3, 0xFF, 0}, ErrTruncated},
		{"missing terminator", []byte{5, 0xFF}, ErrTruncated},
		{"cut record", []byte{3, 0xFF, 2}, ErrTruncated},
		{"extra record", []byte{5, 0xFF, 1, 0x00, 0}, ErrTrailing},
		{"run past end", []byte{6, 0xFF, 0}, ErrTrailing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := Pixmap{Width: 5, Height: 1, Format: RLERGB332, Bitmap: tt.stream}
			d := NewDecoder(&pm)
			err := d.Finish()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Finish = %v, want %v", err, tt.want)
			}
			if d.Exhausted() {
				t.Error("broken stream reported exhausted")
			}
		})
	}
}

func TestDecodeNonRLE(t *testing.T) {
	pm := Pixmap{Width: 1, Height: 1, Format: RGB565, Bitmap: []byte{0, 0}}
	d := NewDecoder(&pm)
	if d.ReadRow(make([]color.Color, 1), 0) {
		t.Fatal("ReadRow on direct pixmap succeeded")
	}
	if !errors.Is(d.Err(), ErrFormat) {
		t.Errorf("Err = %v, want ErrFormat", d.Err())
	}
}

func TestDecodeFromReaderAt(t *testing.T) {
	const w, h = 40, 30
	src := checkerboard(w, h)
	enc, err := Encode(RLERGB888, w, h, src)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) < 200 {
		t.Fatalf("stream only %d bytes, want several staging chunks", len(enc))
	}
	pm := Pixmap{Width: w, Height: h, Format: RLERGB888, Source: bytes.NewReader(enc)}
	d := NewDecoder(&pm)
	row := make([]color.Color, w)
	for y := 0; y < h; y++ {
		if !d.ReadRow(row, 0) {
			t.Fatalf("row %d: %v", y, d.Err())
		}
		for x := range row {
			if row[x] != src[y*w+x] {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, row[x], src[y*w+x])
			}
		}
	}
	if err := d.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestEncodeSplitsLongRuns(t *testing.T) {
	px := make([]color.Color, 600)
	enc, err := Encode(RLERGB332, 600, 1, px)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{255, 0, 255, 0, 90, 0, 0}
	if !bytes.Equal(enc, want) {
		t.Errorf("Encode = %v, want %v", enc, want)
	}
}
