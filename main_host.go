//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"glint/app"
	"glint/gui/pixmap"
	"glint/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	appCfg := app.DefaultConfig()
	var interp string
	var noLogo bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&appCfg.BandLines, "band", 0, "Redraw band height in rows (0 = default).")
	flag.StringVar(&interp, "interp", appCfg.Interp.String(), "Pixmap scaling: nearest|bilinear.")
	flag.BoolVar(&noLogo, "no-logo", false, "Skip the boot logo.")
	flag.BoolVar(&appCfg.Debug, "debug", false, "Log frame statistics.")
	flag.Parse()

	ip, err := pixmap.ParseInterp(interp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	appCfg.Interp = ip
	appCfg.BootLogo = !noLogo

	newApp := func(h hal.HAL) func() error {
		a, err := app.New(h, appCfg)
		if err != nil {
			return func() error { return err }
		}
		return a.Step
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
