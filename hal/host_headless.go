package hal

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	// Frames stops the run after N steps (0 = run until ErrQuit or ctx ends).
	Frames uint64
	// Snapshot, if set, receives the last presented frame as PNG.
	Snapshot string
}

func normalize(cfg Config) Config {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "prism"
	}
	return cfg
}

// RunHeadless runs the app without opening a window, one step per tick.
func RunHeadless(ctx context.Context, cfg Config, hc HeadlessConfig, newApp AppFunc) error {
	cfg = normalize(cfg)
	h := New(cfg).(*hostHAL)
	return runHeadless(ctx, h, cfg, hc, newApp)
}

func runHeadless(ctx context.Context, h *hostHAL, cfg Config, hc HeadlessConfig, newApp AppFunc) error {
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.TPS)
	if d <= 0 {
		return fmt.Errorf("invalid headless tps: %d", cfg.TPS)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
loop:
	for {
		select {
		case <-ctx.Done():
			if err := writeSnapshot(h.fb, hc.Snapshot); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						break loop
					}
					return err
				}
			}
			frame++
			if hc.Frames > 0 && frame >= hc.Frames {
				break loop
			}
		}
	}
	return writeSnapshot(h.fb, hc.Snapshot)
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %q: %w", path, err)
	}
	if err := png.Encode(f, fb.frontImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %q: %w", path, err)
	}
	return nil
}
