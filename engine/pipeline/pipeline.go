// Package pipeline turns a mesh into shaded screen-space triangles, one frame
// at a time.
//
// Stages (fixed):
//
//	Rotate → Translate → Backface cull → Shade → Depth order → Project → Viewport map.
//
// A Scene is built once and never mutated by rendering. All per-frame inputs
// travel in a FrameState.
package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"prism/engine/geom"
	"prism/engine/mesh"
)

var ErrBadViewport = errors.New("viewport must be positive")

// Config holds the fixed camera and viewport parameters of a scene.
type Config struct {
	Width, Height int

	FOVDegrees float64
	ZFar       float64
	ZNear      float64

	// Offset pushes the mesh along +Z in front of the camera.
	Offset float64
}

// DefaultConfig matches an 800x600 window with a 90° field of view.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		FOVDegrees: 90,
		ZFar:       0.1,
		ZNear:      1000,
		Offset:     10,
	}
}

// Scene is the per-run input to the pipeline.
type Scene struct {
	Mesh       mesh.Mesh
	Projection geom.Mat4
	Offset     geom.Vec3
	Camera     geom.Vec3
	Width      float64 // viewport scale for both axes
}

// NewScene builds a scene for m. The projection aspect is height/width.
func NewScene(m mesh.Mesh, c Config) (*Scene, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("scene %dx%d: %w", c.Width, c.Height, ErrBadViewport)
	}
	proj := geom.Projection(geom.ProjectionParams{
		FOVDegrees: c.FOVDegrees,
		Aspect:     float64(c.Height) / float64(c.Width),
		ZFar:       c.ZFar,
		ZNear:      c.ZNear,
	})
	return &Scene{
		Mesh:       m,
		Projection: proj,
		Offset:     geom.V3(0, 0, c.Offset),
		Width:      float64(c.Width),
	}, nil
}

// FrameState is everything that changes between frames.
type FrameState struct {
	Theta  float64 // rotation angle, radians
	LightX float64 // horizontal component of the light direction
}

// Primitive is one shaded triangle ready for rasterization.
type Primitive struct {
	Points [3]geom.Point2d
	Shade  uint8

	// View is the rotated and translated triangle before projection.
	View mesh.Triangle
}

// Stats counts triangles seen by one Render call.
type Stats struct {
	Total  int
	Culled int
	Drawn  int
}

// Render runs the pipeline for one frame and appends the visible triangles to
// dst, farthest first.
func (s *Scene) Render(st FrameState, dst []Primitive) ([]Primitive, Stats) {
	var stats Stats
	if s == nil {
		return dst, stats
	}

	world := Chain(Rotate(st.Theta), Translate(s.Offset))
	screen := Chain(Project(s.Projection), ViewportMap(s.Width))
	light := LightDirection(st.LightX)

	start := len(dst)
	for _, tri := range s.Mesh {
		stats.Total++
		view := tri.Map(world)

		n := CullNormal(view)
		if !FacesCamera(n, view.A, s.Camera) {
			stats.Culled++
			continue
		}

		dst = append(dst, Primitive{
			Shade: Shade(n.Dot(light)),
			View:  view,
		})
	}

	frame := dst[start:]
	SortByDepth(frame)

	for i := range frame {
		p := frame[i].View.Map(screen)
		frame[i].Points = [3]geom.Point2d{p.A.Point2d(), p.B.Point2d(), p.C.Point2d()}
	}
	stats.Drawn = len(frame)
	return dst, stats
}

// SortByDepth orders primitives by descending mean view-space Z. Ties keep
// their input order.
func SortByDepth(ps []Primitive) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].View.MidZ() > ps[j].View.MidZ()
	})
}
