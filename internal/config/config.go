// Package config loads the viewer configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"prism/engine/pipeline"
	"prism/engine/raster"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window    Window    `toml:"window"`
	Camera    Camera    `toml:"camera"`
	Animation Animation `toml:"animation"`
	Light     Light     `toml:"light"`
	Mesh      Mesh      `toml:"mesh"`
	Render    Render    `toml:"render"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Scale  int    `toml:"scale"`
}

type Camera struct {
	FOVDegrees float64 `toml:"fov_degrees"`
	// ZFar holds the small plane distance and ZNear the large one.
	ZFar   float64 `toml:"z_far"`
	ZNear  float64 `toml:"z_near"`
	Offset float64 `toml:"offset"`
}

type Animation struct {
	ThetaStep float64 `toml:"theta_step"`
	FrameRate int     `toml:"frame_rate"`
}

type Light struct {
	X    float64 `toml:"x"`
	Step float64 `toml:"step"`
}

type Mesh struct {
	// Path is empty for the built-in cube.
	Path         string `toml:"path"`
	FallbackCube bool   `toml:"fallback_cube"`
}

type Render struct {
	Mode       string `toml:"mode"`
	HUD        bool   `toml:"hud"`
	StatsEvery uint64 `toml:"stats_every"`
}

var ErrInvalid = errors.New("invalid config")

// Default returns the built-in configuration.
func Default() Config {
	sc := pipeline.DefaultConfig()
	return Config{
		Window: Window{
			Width:  sc.Width,
			Height: sc.Height,
			Title:  "prism",
			Scale:  1,
		},
		Camera: Camera{
			FOVDegrees: sc.FOVDegrees,
			ZFar:       sc.ZFar,
			ZNear:      sc.ZNear,
			Offset:     sc.Offset,
		},
		Animation: Animation{
			ThetaStep: pipeline.DefaultThetaStep,
			FrameRate: 60,
		},
		Light: Light{
			X:    0,
			Step: 0.1,
		},
		Mesh: Mesh{
			FallbackCube: true,
		},
		Render: Render{
			Mode: raster.ModeSolid.String(),
			HUD:  true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := Parse(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, keeping values for absent keys, and validates
// the result.
func Parse(b []byte, cfg *Config) error {
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalid, c.Window.Scale)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov %v outside (0,180)", ErrInvalid, c.Camera.FOVDegrees)
	case c.Camera.ZFar == c.Camera.ZNear:
		return fmt.Errorf("%w: z planes both %v", ErrInvalid, c.Camera.ZFar)
	case c.Animation.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalid, c.Animation.FrameRate)
	}
	if _, err := raster.ParseMode(c.Render.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Scene returns the pipeline parameters.
func (c Config) Scene() pipeline.Config {
	return pipeline.Config{
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		FOVDegrees: c.Camera.FOVDegrees,
		ZFar:       c.Camera.ZFar,
		ZNear:      c.Camera.ZNear,
		Offset:     c.Camera.Offset,
	}
}

// RenderMode returns the parsed render mode. Validate has already rejected
// unknown names.
func (c Config) RenderMode() raster.Mode {
	m, _ := raster.ParseMode(c.Render.Mode)
	return m
}
