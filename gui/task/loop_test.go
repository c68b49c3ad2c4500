package task

import (
	"errors"
	"testing"

	"glint/gui/anim"
	"glint/gui/color"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/scene"
	"glint/hal"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
	err      error
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) ClearRGB(r, g, b uint8)  {}

func (f *fakeFB) Present() error {
	f.presents++
	return f.err
}

func (f *fakeFB) pixel(x, y int) color.Color {
	i := (y*f.w + x) * 2
	return color.FromRGB565(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
}

// block fills its coords with a color and counts paints.
type block struct {
	c      color.Color
	alpha  uint8
	paints int
}

func (b *block) Construct(s *draw.Surface, n *scene.Node, e *scene.Event) {
	if e.Type != scene.DrawMain {
		return
	}
	b.paints++
	draw.FillRect(s, n.Area(), n.Coords(), 0, b.c, b.alpha)
}

func newLoop(t *testing.T, fb *fakeFB, band int) (*Loop, *scene.Scene) {
	t.Helper()
	sc := scene.New(scene.Config{Width: fb.w, Height: fb.h, Background: color.Black})
	l, err := New(sc, nil, fb, Config{BandLines: band})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, sc
}

func TestTickPaintsDirtyAreas(t *testing.T) {
	fb := newFakeFB(32, 24)
	l, sc := newLoop(t, fb, 5)
	b := &block{c: color.Red, alpha: color.AlphaMax}
	n, err := sc.NewNode(nil, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	n.SetCoords(geom.Rect(4, 4, 8, 8))

	if err := l.Tick(16); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if got := fb.pixel(5, 5); got != color.Red {
		t.Errorf("pixel(5,5) = %v, want red", got)
	}
	if got := fb.pixel(20, 20); got != color.Black {
		t.Errorf("pixel(20,20) = %v, want black", got)
	}
	st := l.Stats()
	if st.Frames != 1 || st.Pixels != 32*24 || st.Bands != 5 || fb.presents != 1 {
		t.Errorf("stats = %+v presents %d", st, fb.presents)
	}

	if err := l.Tick(16); err != nil {
		t.Fatal(err)
	}
	if fb.presents != 1 || l.Stats().Ticks != 2 {
		t.Errorf("idle tick presented: presents %d", fb.presents)
	}

	b.c = color.Green
	n.SetDirty()
	if err := l.Tick(16); err != nil {
		t.Fatal(err)
	}
	if got := fb.pixel(11, 11); got != color.Green {
		t.Errorf("pixel(11,11) = %v, want green", got)
	}
	if st := l.Stats(); st.Pixels != 64 || st.Bands != 2 {
		t.Errorf("partial frame stats = %+v", st)
	}
}

func TestTickAdvancesAnimations(t *testing.T) {
	fb := newFakeFB(16, 16)
	l, sc := newLoop(t, fb, 16)
	b := &block{c: color.White}
	n, err := sc.NewNode(nil, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	a := &anim.Animation{Start: 0, End: 255, Duration: 100, Data: n,
		Callback: func(a *anim.Animation, v int32) {
			b.alpha = uint8(v)
			a.Data.(*scene.Node).SetDirty()
		}}
	l.Animations().Start(a)

	ticks := 0
	err = l.RunUntil(a.IsFinished, func() uint32 { ticks++; return 25 })
	if err != nil {
		t.Fatalf("RunUntil: %v", err)
	}
	if ticks != 4 {
		t.Errorf("ticks = %d, want 4", ticks)
	}
	if got := fb.pixel(8, 8); got != color.White {
		t.Errorf("pixel = %v, want white after fade in", got)
	}
}

func TestPresentError(t *testing.T) {
	fb := newFakeFB(8, 8)
	fb.err = errors.New("bus fault")
	l, _ := newLoop(t, fb, 4)
	if err := l.Tick(1); !errors.Is(err, fb.err) {
		t.Errorf("Tick = %v, want %v", err, fb.err)
	}
}

func TestTickDispatchesEvents(t *testing.T) {
	fb := newFakeFB(8, 8)
	l, sc := newLoop(t, fb, 8)
	l.Tick(0)
	for i := 0; i < scene.DefaultQueueSize; i++ {
		sc.Post(scene.Event{Type: scene.Motion})
	}
	l.Tick(0)
	if sc.Pending() != 0 {
		t.Errorf("pending = %d after tick", sc.Pending())
	}
}

type regionFB struct {
	*fakeFB
	regions []geom.Area
}

func (f *regionFB) PresentRegion(x, y, w, h int) error {
	f.regions = append(f.regions, geom.Rect(x, y, w, h))
	return f.err
}

func TestTickPresentsRegions(t *testing.T) {
	fb := &regionFB{fakeFB: newFakeFB(32, 24)}
	sc := scene.New(scene.Config{Width: 32, Height: 24, Background: color.Black})
	l, err := New(sc, nil, fb, Config{BandLines: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n, err := sc.NewNode(nil, &block{c: color.Blue, alpha: color.AlphaMax}, 0)
	if err != nil {
		t.Fatal(err)
	}
	n.SetCoords(geom.Rect(2, 3, 4, 5))
	if err := l.Tick(0); err != nil {
		t.Fatal(err)
	}
	fb.regions = nil

	n.SetDirty()
	if err := l.Tick(0); err != nil {
		t.Fatal(err)
	}
	if fb.presents != 0 {
		t.Errorf("Present called %d times, want 0", fb.presents)
	}
	want := geom.Rect(2, 3, 4, 5)
	if len(fb.regions) != 1 || fb.regions[0] != want {
		t.Errorf("regions = %v, want [%v]", fb.regions, want)
	}
}
