// Package pixmap describes source images for the rasterizer and decodes
// them: packed RGB332/565/888 rows and their run-length encoded variants.
package pixmap

import (
	"errors"
	"fmt"
	"io"

	"glint/gui/color"
)

var (
	ErrFormat    = errors.New("pixmap: unknown format")
	ErrSize      = errors.New("pixmap: bitmap too small")
	ErrTruncated = errors.New("pixmap: rle stream truncated")
	ErrTrailing  = errors.New("pixmap: rle stream not terminated")
)

// Format tags the pixel encoding of a pixmap payload.
type Format uint8

const (
	FormatInvalid Format = iota
	RGB332
	RGB565
	RGB888
	RLERGB332
	RLERGB565
	RLERGB888
)

func (f Format) String() string {
	switch f {
	case RGB332:
		return "rgb332"
	case RGB565:
		return "rgb565"
	case RGB888:
		return "rgb888"
	case RLERGB332:
		return "rle-rgb332"
	case RLERGB565:
		return "rle-rgb565"
	case RLERGB888:
		return "rle-rgb888"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	for f := RGB332; f <= RLERGB888; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatInvalid, fmt.Errorf("%w: %q", ErrFormat, s)
}

func (f Format) Valid() bool { return f >= RGB332 && f <= RLERGB888 }

func (f Format) IsRLE() bool { return f >= RLERGB332 && f <= RLERGB888 }

// Base returns the packed color encoding, stripping RLE.
func (f Format) Base() Format {
	if f.IsRLE() {
		return f - RLERGB332 + RGB332
	}
	return f
}

// BytesPerPixel is the size of one packed color. For RLE formats it is the
// size of the color field of a record.
func (f Format) BytesPerPixel() int {
	switch f.Base() {
	case RGB332:
		return 1
	case RGB565:
		return 2
	case RGB888:
		return 3
	default:
		return 0
	}
}

// Pixmap is a borrowed source image. Pixel data comes from Source when it is
// set (flash, files) and from Bitmap otherwise. The rasterizer never mutates it.
type Pixmap struct {
	Width  int
	Height int
	Format Format
	Bitmap []byte
	Source io.ReaderAt
}

// Validate checks the header fields and, for in-memory direct pixmaps, that
// the bitmap covers every pixel.
func (p *Pixmap) Validate() error {
	if !p.Format.Valid() {
		return fmt.Errorf("%w: %d", ErrFormat, uint8(p.Format))
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("pixmap: invalid size %dx%d", p.Width, p.Height)
	}
	if p.Source == nil && !p.Format.IsRLE() {
		if need := p.RowBytes() * p.Height; len(p.Bitmap) < need {
			return fmt.Errorf("%w: have %d bytes, need %d", ErrSize, len(p.Bitmap), need)
		}
	}
	return nil
}

// RowBytes is the size of one packed row of a direct pixmap.
func (p *Pixmap) RowBytes() int { return p.Width * p.Format.BytesPerPixel() }

// Unpack decodes packed pixels from src into dst until either runs out and
// returns the number of pixels written.
func Unpack(dst []color.Color, src []byte, f Format) int {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return 0
	}
	n := min(len(dst), len(src)/bpp)
	switch f.Base() {
	case RGB332:
		for i := 0; i < n; i++ {
			dst[i] = color.FromRGB332(src[i])
		}
	case RGB565:
		for i := 0; i < n; i++ {
			dst[i] = color.FromRGB565(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
		}
	case RGB888:
		for i := 0; i < n; i++ {
			b := src[3*i:]
			dst[i] = color.FromRGB888(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16)
		}
	}
	return n
}

// Pack is the inverse of Unpack for direct formats.
func Pack(dst []byte, src []color.Color, f Format) int {
	bpp := f.BytesPerPixel()
	if bpp == 0 {
		return 0
	}
	n := min(len(src), len(dst)/bpp)
	for i := 0; i < n; i++ {
		putColor(dst[i*bpp:], src[i], f)
	}
	return n
}

func putColor(dst []byte, c color.Color, f Format) {
	switch f.Base() {
	case RGB332:
		dst[0] = c.RGB332()
	case RGB565:
		v := c.RGB565()
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
	case RGB888:
		v := c.RGB888()
		dst[0] = byte(v)
		dst[1] = byte(v >> 8)
		dst[2] = byte(v >> 16)
	}
}

// ReadSpan unpacks len(dst) pixels of row y starting at column x of a direct
// pixmap. When the pixmap streams from Source the bytes pass through stage,
// which must hold len(dst)*BytesPerPixel bytes.
func (p *Pixmap) ReadSpan(dst []color.Color, x, y int, stage []byte) error {
	if p.Format.IsRLE() {
		return fmt.Errorf("%w: random access into %s", ErrFormat, p.Format)
	}
	if x < 0 || y < 0 || y >= p.Height || x+len(dst) > p.Width {
		return fmt.Errorf("pixmap: span (%d,%d)+%d outside %dx%d", x, y, len(dst), p.Width, p.Height)
	}
	bpp := p.Format.BytesPerPixel()
	off := (y*p.Width + x) * bpp
	n := len(dst) * bpp

	var src []byte
	if p.Source != nil {
		if len(stage) < n {
			return fmt.Errorf("pixmap: staging buffer %d < %d", len(stage), n)
		}
		got, err := p.Source.ReadAt(stage[:n], int64(off))
		if got < n {
			if err == nil || errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("pixmap: read row %d: %w", y, err)
		}
		src = stage[:n]
	} else {
		if off+n > len(p.Bitmap) {
			return ErrSize
		}
		src = p.Bitmap[off : off+n]
	}
	Unpack(dst, src, p.Format)
	return nil
}
