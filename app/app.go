package app

import (
	"errors"
	"fmt"

	"prism/engine/mesh"
	"prism/engine/pipeline"
	"prism/engine/raster"
	"prism/hal"
	"prism/internal/config"
)

var clearColor = raster.RGB(0, 0, 0)

// Viewer spins a mesh in front of a fixed camera, one pipeline pass per step.
type Viewer struct {
	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	scene  *pipeline.Scene
	anim   *pipeline.Animator
	target *raster.RGBATarget
	prims  []pipeline.Primitive
	stats  pipeline.Stats

	mode       raster.Mode
	hud        bool
	statsEvery uint64
	source     string
}

// New loads the configured mesh and prepares a viewer on h.
func New(h hal.HAL, cfg config.Config) (*Viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil || fb.Image() == nil {
		return nil, errors.New("app: no framebuffer")
	}

	v := &Viewer{
		log:        h.Logger(),
		fb:         fb,
		anim:       pipeline.NewAnimator(cfg.Animation.ThetaStep, cfg.Light.Step),
		target:     &raster.RGBATarget{Img: fb.Image()},
		mode:       cfg.RenderMode(),
		hud:        cfg.Render.HUD,
		statsEvery: cfg.Render.StatsEvery,
	}
	if in := h.Input(); in != nil {
		v.kbd = in.Keyboard()
	}
	v.anim.State.LightX = cfg.Light.X

	m, source, err := LoadMesh(cfg.Mesh, v.logf)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	v.source = source

	sc := cfg.Scene()
	sc.Width, sc.Height = fb.Width(), fb.Height()
	scene, err := pipeline.NewScene(m, sc)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	v.scene = scene
	v.prims = make([]pipeline.Primitive, 0, len(m))

	v.logf("app: %s, %d triangles, %dx%d, mode %s", source, len(m), sc.Width, sc.Height, v.mode)
	return v, nil
}

// LoadMesh returns the mesh named by c and a short description of where it
// came from. An empty path selects the cube. A failed load falls back to the
// cube only when c.FallbackCube is set.
func LoadMesh(c config.Mesh, logf func(format string, args ...any)) (mesh.Mesh, string, error) {
	if c.Path == "" {
		return mesh.Cube(), "cube", nil
	}
	m, err := mesh.Load(c.Path)
	if err == nil {
		return m, c.Path, nil
	}
	if !c.FallbackCube {
		return nil, "", err
	}
	if logf != nil {
		logf("mesh: %v; using cube", err)
	}
	return mesh.Cube(), "cube (fallback)", nil
}

// Step handles pending input and renders one frame. It returns hal.ErrQuit
// once a quit key was seen.
func (v *Viewer) Step() error {
	if err := v.handleInput(); err != nil {
		return err
	}

	st := v.anim.Advance()
	v.prims, v.stats = v.scene.Render(st, v.prims[:0])

	v.target.Clear(clearColor)
	for _, p := range v.prims {
		raster.Triangle(v.target, p.Points, raster.Gray(p.Shade), v.mode)
	}
	if v.hud {
		v.drawHUD(st)
	}

	if n := v.anim.Frames(); v.statsEvery > 0 && n%v.statsEvery == 0 {
		v.logf("frame: %d theta=%.2f light=%.2f drawn=%d culled=%d", n, st.Theta, st.LightX, v.stats.Drawn, v.stats.Culled)
	}
	return v.fb.Present()
}

func (v *Viewer) handleInput() error {
	if v.kbd == nil {
		return nil
	}
	ch := v.kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *Viewer) handleKey(ev hal.KeyEvent) error {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEscape:
		v.logf("app: quit after %d frames", v.anim.Frames())
		return hal.ErrQuit
	case hal.KeyLeft:
		v.anim.NudgeLight(-1)
	case hal.KeyRight:
		v.anim.NudgeLight(1)
	}
	switch ev.Rune {
	case 'q':
		v.logf("app: quit after %d frames", v.anim.Frames())
		return hal.ErrQuit
	case 'w':
		v.mode = v.mode.Next()
	case 'h':
		v.hud = !v.hud
	}
	return nil
}

// Stats returns the counts from the last rendered frame.
func (v *Viewer) Stats() pipeline.Stats { return v.stats }

// State returns the animation state of the last rendered frame.
func (v *Viewer) State() pipeline.FrameState { return v.anim.State }

func (v *Viewer) Mode() raster.Mode { return v.mode }

func (v *Viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}
