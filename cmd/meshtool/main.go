package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"prism/app"
	"prism/engine/mesh"
	"prism/engine/pipeline"
	"prism/engine/raster"
	"prism/internal/config"
)

const usage = `usage: meshtool cube [-out cube.obj]
       meshtool check file...
       meshtool render [-config prism.toml] [-mesh file] [-theta 0] [-light 0] [-mode solid] -out frame.png`

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "cube":
		return cmdCube(args[1:], stdout)
	case "check":
		return cmdCheck(args[1:], stdout)
	case "render":
		return cmdRender(args[1:], stdout)
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func cmdCube(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cube", flag.ContinueOnError)
	out := fs.String("out", "", "Output file (default: stdout).")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return mesh.Encode(stdout, mesh.Cube())
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %q: %w", *out, err)
	}
	if err := mesh.Encode(f, mesh.Cube()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %q: %w", *out, err)
	}
	return f.Close()
}

// cmdCheck parses every file and reports its triangle count. All files are
// checked; the first failure is returned.
func cmdCheck(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	var first error
	for _, path := range args {
		m, err := mesh.Load(path)
		if err != nil {
			_, _ = fmt.Fprintf(stdout, "%s: FAIL %v\n", path, err)
			if first == nil {
				first = err
			}
			continue
		}
		_, _ = fmt.Fprintf(stdout, "%s: ok, %d triangles\n", path, len(m))
	}
	return first
}

func cmdRender(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "TOML config file.")
		meshPath = fs.String("mesh", "", "Mesh file (default: built-in cube).")
		theta    = fs.Float64("theta", 0, "Rotation angle in radians.")
		light    = fs.Float64("light", 0, "Horizontal light component.")
		mode     = fs.String("mode", "", "solid|wireframe|both (default: from config).")
		out      = fs.String("out", "", "Output PNG file.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return errUsage
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *meshPath != "" {
		cfg.Mesh = config.Mesh{Path: *meshPath}
	}
	if *mode != "" {
		cfg.Render.Mode = *mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	m, _, err := app.LoadMesh(cfg.Mesh, nil)
	if err != nil {
		return err
	}
	scene, err := pipeline.NewScene(m, cfg.Scene())
	if err != nil {
		return err
	}
	prims, stats := scene.Render(pipeline.FrameState{Theta: *theta, LightX: *light}, nil)

	t := raster.NewRGBATarget(cfg.Window.Width, cfg.Window.Height)
	t.Clear(raster.RGB(0, 0, 0))
	rm := cfg.RenderMode()
	for _, p := range prims {
		raster.Triangle(t, p.Points, raster.Gray(p.Shade), rm)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %q: %w", *out, err)
	}
	if err := png.Encode(f, t.Img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "%s: %d triangles, %d culled, %d drawn\n", *out, stats.Total, stats.Culled, stats.Drawn)
	return nil
}
