package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"prism/app"
	"prism/hal"
	"prism/internal/buildinfo"
	"prism/internal/config"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "TOML config file.")
		meshPath = flag.String("mesh", "", "Mesh file to view (default: built-in cube).")
		hc       hal.HeadlessConfig
	)
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&hc.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&hc.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatalf("%v", err)
	}
	if *meshPath != "" {
		cfg.Mesh.Path = *meshPath
	}

	hal.NewLogger(os.Stdout).WriteLineString("main: " + buildinfo.String())

	hcfg := hal.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		Scale:  cfg.Window.Scale,
		TPS:    cfg.Animation.FrameRate,
	}
	newApp := func(h hal.HAL) (hal.StepFunc, error) {
		v, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		return app.Guard(h.Logger(), v.Step), nil
	}

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, hcfg, hc, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatalf("%v", err)
		}
		return
	}

	if err := hal.RunWindow(hcfg, newApp); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
