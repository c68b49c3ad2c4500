// Package app wires a HAL to the scene: it shows the boot logo, builds the
// demo screen and turns HAL ticks and input into loop passes.
package app

import (
	"fmt"
	"log/slog"

	"glint/gui/anim"
	"glint/gui/color"
	"glint/gui/glog"
	"glint/gui/pixmap"
	"glint/gui/scene"
	"glint/gui/task"
	"glint/gui/widget"
	"glint/hal"
	"glint/internal/buildinfo"
)

type Config struct {
	// BandLines is the redraw band height; zero uses task.DefaultBandLines.
	BandLines int
	// Interp samples scaled pixmaps.
	Interp pixmap.Interp
	// BootLogo fades the logo in before the demo screen.
	BootLogo bool
	// DirtyLimit and QueueSize override the scene defaults when non-zero.
	DirtyLimit int
	QueueSize  int
	// HeapBytes budgets node memory. Zero is unlimited.
	HeapBytes int
	Debug     bool
}

// DefaultConfig is what the firmware runs with.
func DefaultConfig() Config {
	return Config{Interp: pixmap.InterpBilinear, BootLogo: true}
}

type App struct {
	h   hal.HAL
	cfg Config

	loop *task.Loop
	clk  clock
	in   input

	started bool
	logo    *widget.BootLogo
	demo    *demo
}

// New installs the HAL logger and builds an empty scene on the HAL
// framebuffer.
func New(h hal.HAL, cfg Config) (*App, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if l := h.Logger(); l != nil {
		glog.SetLogger(slog.New(hal.NewSlogHandler(l, level)))
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("app: no framebuffer: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = scene.DefaultQueueSize
	}
	sc := scene.New(scene.Config{
		Width:      fb.Width(),
		Height:     fb.Height(),
		Background: color.ThemeBG,
		QueueSize:  cfg.QueueSize,
		DirtyLimit: cfg.DirtyLimit,
		Heap:       scene.NewHeap(cfg.HeapBytes),
	})
	loop, err := task.New(sc, &anim.Scheduler{}, fb, task.Config{BandLines: cfg.BandLines, Batch: cfg.QueueSize})
	if err != nil {
		return nil, err
	}

	glog.Logger().Info("glint starting",
		"build", buildinfo.Long(),
		"width", fb.Width(), "height", fb.Height(),
		"band", cfg.BandLines, "interp", cfg.Interp)
	return &App{
		h:    h,
		cfg:  cfg,
		loop: loop,
		clk:  newClock(h.Time()),
		in:   newInput(h.Input()),
	}, nil
}

// Loop is the task loop driving the scene.
func (a *App) Loop() *task.Loop { return a.loop }

// Step runs one pass without blocking: pending ticks and input are drained
// and the loop ticks once. It is the step function of the host runners.
func (a *App) Step() error {
	return a.step(a.clk.elapsed())
}

func (a *App) step(dt uint32) (err error) {
	defer func() {
		if r := recover(); r != nil {
			showPanic(a.h, r)
			err = fmt.Errorf("app: panic: %v", r)
		}
	}()

	if !a.started {
		a.started = true
		if a.cfg.BootLogo {
			if a.logo, err = widget.StartBootLogo(a.loop.Scene(), a.loop.Animations()); err != nil {
				return err
			}
		} else if err := a.showDemo(); err != nil {
			return err
		}
	}

	a.in.pump(a.loop.Scene(), a.cfg.QueueSize)
	if err := a.loop.Tick(dt); err != nil {
		return err
	}
	if a.logo != nil && a.logo.Done() {
		a.logo.Close()
		a.logo = nil
		return a.showDemo()
	}
	return nil
}

func (a *App) showDemo() error {
	d, err := newDemo(a.loop, a.h.Flash(), a.cfg.Interp)
	if err != nil {
		return fmt.Errorf("app: demo: %w", err)
	}
	a.demo = d
	return nil
}

// Run shows the boot logo, then ticks the demo screen forever, pacing on
// the HAL tick stream. It never returns; fatal errors are painted on the
// screen.
func Run(h hal.HAL, cfg Config) {
	a, err := New(h, cfg)
	if err != nil {
		showFatal(h, err)
	}
	a.started = true
	if cfg.BootLogo {
		if err := widget.RunBootLogo(a.loop, a.clk.wait); err != nil {
			showFatal(h, err)
		}
	}
	if err := a.showDemo(); err != nil {
		showFatal(h, err)
	}
	for {
		if err := a.step(a.clk.wait()); err != nil {
			showFatal(h, err)
		}
	}
}
