// Package task drives the UI from a periodic tick: it dispatches queued
// events, advances animations and repaints dirty areas band by band into
// a HAL framebuffer.
package task

import (
	"fmt"

	"glint/gui/anim"
	"glint/gui/draw"
	"glint/gui/geom"
	"glint/gui/glog"
	"glint/gui/scene"
	"glint/hal"
)

// DefaultBandLines is the height of the redraw band.
const DefaultBandLines = 16

type Config struct {
	// BandLines bounds how many rows are rendered per pass.
	BandLines int
	// Batch is the number of events dispatched per tick.
	Batch int
}

// Stats describes the work done by the loop so far.
type Stats struct {
	Ticks  uint64
	Frames uint64
	// Pixels is the number of pixels repainted by the last frame.
	Pixels int
	Bands  int
}

type Loop struct {
	scene *scene.Scene
	anims *anim.Scheduler
	fb    hal.Framebuffer

	band      *draw.Surface
	bandLines int
	batch     int
	bounds    geom.Area
	areas     []geom.Area

	stats Stats
}

func New(sc *scene.Scene, anims *anim.Scheduler, fb hal.Framebuffer, cfg Config) (*Loop, error) {
	if fb == nil {
		return nil, fmt.Errorf("task: no framebuffer")
	}
	if f := fb.Format(); f != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("task: framebuffer format %d: %w", f, hal.ErrNotImplemented)
	}
	if fb.Width() <= 0 || fb.Height() <= 0 || fb.StrideBytes() < fb.Width()*2 {
		return nil, fmt.Errorf("task: invalid framebuffer %dx%d stride %d", fb.Width(), fb.Height(), fb.StrideBytes())
	}
	if cfg.BandLines <= 0 {
		cfg.BandLines = DefaultBandLines
	}
	cfg.BandLines = min(cfg.BandLines, fb.Height())
	if cfg.Batch <= 0 {
		cfg.Batch = scene.DefaultQueueSize
	}
	if anims == nil {
		anims = &anim.Scheduler{}
	}
	bounds, ok := geom.Clip(sc.Bounds(), geom.Rect(0, 0, fb.Width(), fb.Height()))
	if !ok {
		return nil, fmt.Errorf("task: scene %v does not overlap the framebuffer", sc.Bounds())
	}
	return &Loop{
		scene:     sc,
		anims:     anims,
		fb:        fb,
		band:      draw.NewSurface(fb.Width(), cfg.BandLines),
		bandLines: cfg.BandLines,
		batch:     cfg.Batch,
		bounds:    bounds,
	}, nil
}

func (l *Loop) Scene() *scene.Scene         { return l.scene }
func (l *Loop) Animations() *anim.Scheduler { return l.anims }
func (l *Loop) Stats() Stats                { return l.stats }

// Tick runs one cooperative pass: dispatch a batch of events, advance the
// animations by dt milliseconds and repaint whatever became dirty.
func (l *Loop) Tick(dt uint32) error {
	l.stats.Ticks++
	l.scene.Dispatch(l.batch)
	l.anims.Advance(dt)

	l.areas = append(l.areas[:0], l.scene.Collect()...)
	l.scene.Reset()
	if len(l.areas) == 0 {
		return nil
	}

	rp, partial := l.fb.(hal.RegionPresenter)
	pixels, bands := 0, 0
	for _, a := range l.areas {
		a, ok := geom.Clip(a, l.bounds)
		if !ok {
			continue
		}
		for y := a.Y1; y <= a.Y2; y += l.bandLines {
			h := min(l.bandLines, a.Y2-y+1)
			if !l.band.Reshape(a.Width(), h) {
				return fmt.Errorf("task: band %dx%d exceeds surface", a.Width(), h)
			}
			l.band.SetOrigin(a.X1, y)
			l.scene.Draw(l.band)
			Blit(l.fb, l.band)
			bands++
		}
		pixels += a.Pixels()
		if partial {
			if err := rp.PresentRegion(a.X1, a.Y1, a.Width(), a.Height()); err != nil {
				return fmt.Errorf("task: present %v: %w", a, err)
			}
		}
	}

	l.stats.Frames++
	l.stats.Pixels = pixels
	l.stats.Bands = bands
	glog.Logger().Debug("frame", "n", l.stats.Frames, "areas", len(l.areas), "pixels", pixels, "bands", bands)
	if partial {
		return nil
	}
	if err := l.fb.Present(); err != nil {
		return fmt.Errorf("task: present: %w", err)
	}
	return nil
}

// Blit copies s into fb at the surface origin as little-endian RGB565.
// The surface must lie inside the framebuffer.
func Blit(fb hal.Framebuffer, s *draw.Surface) {
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	b := s.Bounds()
	for y := 0; y < s.Height(); y++ {
		off := (b.Y1+y)*stride + b.X1*2
		dst := buf[off : off+s.Width()*2]
		for i, c := range s.LocalRow(y) {
			v := c.RGB565()
			dst[2*i] = byte(v)
			dst[2*i+1] = byte(v >> 8)
		}
	}
}

// RunUntil ticks until done reports true. next returns the milliseconds
// elapsed since the previous tick and may block to pace the loop.
func (l *Loop) RunUntil(done func() bool, next func() uint32) error {
	for !done() {
		if err := l.Tick(next()); err != nil {
			return err
		}
	}
	return nil
}
