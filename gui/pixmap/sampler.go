package pixmap

import (
	"fmt"
	"strings"

	"glint/gui/color"
)

// FixedShift is the number of fractional bits in sampling coordinates.
const (
	FixedShift = 16
	FixedOne   = 1 << FixedShift
	FixedMask  = FixedOne - 1
)

// Interp selects how a scaled pixmap is sampled.
type Interp uint8

const (
	InterpNearest Interp = iota
	InterpBilinear
)

func (i Interp) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Interp(%d)", uint8(i))
	}
}

// ParseInterp accepts the names produced by Interp.String.
func ParseInterp(s string) (Interp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return InterpNearest, nil
	case "bilinear":
		return InterpBilinear, nil
	}
	return InterpNearest, fmt.Errorf("pixmap: unknown interpolation %q", s)
}

// Sampler reads pixels of one pixmap through a two-row cache. Rows are
// decoded on first use; RLE pixmaps are decoded forward and restart only
// when an earlier row is requested.
type Sampler struct {
	pm    *Pixmap
	rows  [2][]color.Color
	rowY  [2]int
	last  int
	stage []byte

	dec  Decoder
	decY int

	err error
}

// ScratchSize returns the color and byte scratch lengths NewSampler needs.
func ScratchSize(pm *Pixmap) (colors, bytes int) {
	colors = 2 * pm.Width
	if pm.Source != nil && !pm.Format.IsRLE() {
		bytes = pm.RowBytes()
	}
	return colors, bytes
}

// NewSampler binds pm to caller-owned scratch buffers sized by ScratchSize.
func NewSampler(pm *Pixmap, rows []color.Color, stage []byte) Sampler {
	s := Sampler{pm: pm, stage: stage, rowY: [2]int{-1, -1}}
	if err := pm.Validate(); err != nil {
		s.err = err
		return s
	}
	if len(rows) < 2*pm.Width {
		s.err = fmt.Errorf("pixmap: sampler scratch %d < %d", len(rows), 2*pm.Width)
		return s
	}
	s.rows[0] = rows[:pm.Width]
	s.rows[1] = rows[pm.Width : 2*pm.Width]
	if pm.Format.IsRLE() {
		s.dec = NewDecoder(pm)
	}
	return s
}

// Err returns the first decode error. Pixels read after an error are black.
func (s *Sampler) Err() error { return s.err }

// Row returns the decoded row y, clamped to the pixmap.
func (s *Sampler) Row(y int) []color.Color {
	if s.err != nil {
		return nil
	}
	y = clamp(y, 0, s.pm.Height-1)
	if s.rowY[s.last] == y {
		return s.rows[s.last]
	}
	if other := 1 - s.last; s.rowY[other] == y {
		s.last = other
		return s.rows[other]
	}
	slot := 1 - s.last
	if err := s.load(s.rows[slot], y); err != nil {
		s.err = err
		return nil
	}
	s.rowY[slot] = y
	s.last = slot
	return s.rows[slot]
}

func (s *Sampler) load(dst []color.Color, y int) error {
	if !s.pm.Format.IsRLE() {
		return s.pm.ReadSpan(dst, 0, y, s.stage)
	}
	if y < s.decY {
		s.dec = NewDecoder(s.pm)
		s.decY = 0
	}
	if !s.dec.SkipRows(y - s.decY) {
		return s.dec.Err()
	}
	if !s.dec.ReadRow(dst, 0) {
		return s.dec.Err()
	}
	s.decY = y + 1
	return nil
}

// Pixel returns the source pixel at (x, y), clamped to the pixmap.
func (s *Sampler) Pixel(x, y int) color.Color {
	row := s.Row(y)
	if row == nil {
		return color.Black
	}
	return row[clamp(x, 0, s.pm.Width-1)]
}

// Bilinear blends the four pixels around the fixed-point position (fx, fy).
// Positions with zero fraction return the source pixel unchanged.
func (s *Sampler) Bilinear(fx, fy int64) color.Color {
	maxX := int64(s.pm.Width-1) << FixedShift
	maxY := int64(s.pm.Height-1) << FixedShift
	fx = clamp(fx, 0, maxX)
	fy = clamp(fy, 0, maxY)

	x0 := int(fx >> FixedShift)
	y0 := int(fy >> FixedShift)
	dx := uint64(fx & FixedMask)
	dy := uint64(fy & FixedMask)
	x1 := min(x0+1, s.pm.Width-1)

	top := s.Row(y0)
	if top == nil {
		return color.Black
	}
	c00, c10 := top[x0], top[x1]
	c01, c11 := c00, c10
	if dy != 0 {
		bot := s.Row(y0 + 1)
		if bot == nil {
			return color.Black
		}
		c01, c11 = bot[x0], bot[x1]
	}

	w00 := (FixedOne - dx) * (FixedOne - dy)
	w10 := dx * (FixedOne - dy)
	w01 := (FixedOne - dx) * dy
	w11 := dx * dy
	const half = 1 << (2*FixedShift - 1)
	ch := func(a, b, c, d uint8) uint8 {
		v := uint64(a)*w00 + uint64(b)*w10 + uint64(c)*w01 + uint64(d)*w11
		return uint8((v + half) >> (2 * FixedShift))
	}
	return color.Color{
		R: ch(c00.R, c10.R, c01.R, c11.R),
		G: ch(c00.G, c10.G, c01.G, c11.G),
		B: ch(c00.B, c10.B, c01.B, c11.B),
	}
}

// Scale returns the fixed-point step that maps a destination span of dst
// pixels onto src source pixels.
func Scale(src, dst int) int64 {
	if dst <= 0 {
		return 0
	}
	return (int64(src) << FixedShift) / int64(dst)
}

func clamp[T int | int64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
