package pixmap

import (
	"errors"
	"fmt"
	"io"

	"glint/gui/color"
)

// maxRun is the longest run a single record can carry.
const maxRun = 255

// Decoder walks an RLE stream of (run, color) records. A Decoder is valid
// for exactly one decode pass over one pixmap; create a new one per draw.
// Runs continue across row boundaries.
type Decoder struct {
	src    []byte
	reader io.ReaderAt
	format Format
	total  int
	width  int

	off      int64
	run      int
	color    color.Color
	consumed int
	done     bool
	err      error

	chunk      [64]byte
	chunkStart int64
	chunkLen   int
}

// NewDecoder starts a decode pass at the first record of pm.
func NewDecoder(pm *Pixmap) Decoder {
	d := Decoder{
		src:    pm.Bitmap,
		reader: pm.Source,
		format: pm.Format,
		width:  pm.Width,
		total:  pm.Width * pm.Height,
	}
	if !pm.Format.IsRLE() {
		d.err = fmt.Errorf("%w: %s is not run-length encoded", ErrFormat, pm.Format)
		d.done = true
	}
	return d
}

func (d *Decoder) byteAt() (byte, bool) {
	if d.reader == nil {
		if d.off >= int64(len(d.src)) {
			return 0, false
		}
		b := d.src[d.off]
		d.off++
		return b, true
	}
	if d.off < d.chunkStart || d.off >= d.chunkStart+int64(d.chunkLen) {
		n, err := d.reader.ReadAt(d.chunk[:], d.off)
		if n == 0 {
			if err != nil && !errors.Is(err, io.EOF) {
				d.err = fmt.Errorf("pixmap: rle read at %d: %w", d.off, err)
			}
			return 0, false
		}
		d.chunkStart = d.off
		d.chunkLen = n
	}
	b := d.chunk[d.off-d.chunkStart]
	d.off++
	return b, true
}

func (d *Decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
	d.done = true
}

// record loads the next run. It returns false at a terminator or on error.
func (d *Decoder) record() bool {
	run, ok := d.byteAt()
	if !ok {
		d.fail(fmt.Errorf("%w: missing record after %d pixels", ErrTruncated, d.consumed))
		return false
	}
	if run == 0 {
		d.done = true
		if d.consumed < d.total {
			d.fail(fmt.Errorf("%w: terminator after %d of %d pixels", ErrTruncated, d.consumed, d.total))
		}
		return false
	}
	var raw [3]byte
	bpp := d.format.BytesPerPixel()
	for i := 0; i < bpp; i++ {
		if raw[i], ok = d.byteAt(); !ok {
			d.fail(fmt.Errorf("%w: record cut short at byte %d", ErrTruncated, d.off))
			return false
		}
	}
	switch d.format.Base() {
	case RGB332:
		d.color = color.FromRGB332(raw[0])
	case RGB565:
		d.color = color.FromRGB565(uint16(raw[0]) | uint16(raw[1])<<8)
	case RGB888:
		d.color = color.FromRGB888(uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16)
	}
	d.run = int(run)
	return true
}

// ReadRow consumes one logical row. The pixel at column i is stored in
// dst[i-x0] when that index is inside dst; every other pixel is consumed
// without being emitted. It returns false once the stream is exhausted or
// broken, see Err.
func (d *Decoder) ReadRow(dst []color.Color, x0 int) bool {
	if d.done {
		return false
	}
	if d.consumed+d.width > d.total {
		d.fail(fmt.Errorf("%w: row past end of image", ErrTruncated))
		return false
	}
	for i := 0; i < d.width; i++ {
		if d.run == 0 && !d.record() {
			return false
		}
		if j := i - x0; j >= 0 && j < len(dst) {
			dst[j] = d.color
		}
		d.run--
		d.consumed++
	}
	return true
}

// SkipRows consumes n rows without emitting anything.
func (d *Decoder) SkipRows(n int) bool {
	for ; n > 0; n-- {
		if !d.ReadRow(nil, 0) {
			return false
		}
	}
	return true
}

// Finish consumes any rows not yet read and the terminating record.
func (d *Decoder) Finish() error {
	for !d.done && d.consumed < d.total {
		d.ReadRow(nil, 0)
	}
	if d.done {
		return d.err
	}
	if d.run != 0 {
		d.fail(fmt.Errorf("%w: run overlaps end of image", ErrTrailing))
		return d.err
	}
	run, ok := d.byteAt()
	switch {
	case !ok:
		d.fail(fmt.Errorf("%w: missing terminator", ErrTruncated))
	case run != 0:
		d.fail(fmt.Errorf("%w: record after last pixel", ErrTrailing))
	default:
		d.done = true
	}
	return d.err
}

// Consumed is the number of logical pixels decoded so far, emitted or not.
func (d *Decoder) Consumed() int { return d.consumed }

// Offset is the number of stream bytes read so far.
func (d *Decoder) Offset() int64 { return d.off }

// Exhausted reports whether the pass reached the terminator cleanly.
func (d *Decoder) Exhausted() bool { return d.done && d.err == nil }

func (d *Decoder) Err() error { return d.err }

// Encode packs w×h pixels into the payload for format f: a run-length
// stream with terminator for RLE formats, packed rows otherwise.
func Encode(f Format, w, h int, px []color.Color) ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrFormat, uint8(f))
	}
	if w <= 0 || h <= 0 || len(px) < w*h {
		return nil, fmt.Errorf("pixmap: encode %dx%d from %d pixels", w, h, len(px))
	}
	px = px[:w*h]
	bpp := f.BytesPerPixel()
	if !f.IsRLE() {
		out := make([]byte, len(px)*bpp)
		Pack(out, px, f)
		return out, nil
	}

	out := make([]byte, 0, 64)
	var rec [4]byte
	for i := 0; i < len(px); {
		// Runs compare the packed value so lossy formats merge pixels that
		// would decode identically.
		key := packedKey(px[i], f)
		run := 1
		for i+run < len(px) && run < maxRun && packedKey(px[i+run], f) == key {
			run++
		}
		rec[0] = byte(run)
		putColor(rec[1:], px[i], f)
		out = append(out, rec[:1+bpp]...)
		i += run
	}
	return append(out, 0), nil
}

func packedKey(c color.Color, f Format) uint32 {
	switch f.Base() {
	case RGB332:
		return uint32(c.RGB332())
	case RGB565:
		return uint32(c.RGB565())
	default:
		return c.RGB888()
	}
}
