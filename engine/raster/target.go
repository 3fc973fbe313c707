// Package raster draws screen-space triangles into pixel targets.
//
// It is the drawing half of the presentation side: callers hand it projected
// points and a color, it fills or outlines them. Nothing here knows about
// meshes or cameras.
package raster

import (
	"fmt"
	"image"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Mode selects how triangles are drawn.
type Mode uint8

const (
	ModeSolid Mode = iota
	ModeWireframe
	ModeSolidWireframe
)

var modeNames = [...]string{
	ModeSolid:          "solid",
	ModeWireframe:      "wireframe",
	ModeSolidWireframe: "both",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Next cycles solid → wireframe → both → solid.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(modeNames))
}

// ParseMode parses a mode name as printed by String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return ModeSolid, fmt.Errorf("unknown render mode %q", s)
}

// RGBATarget renders into an *image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

func NewRGBATarget(w, h int) *RGBATarget {
	return &RGBATarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *RGBATarget) Size() (w, h int) {
	if t == nil || t.Img == nil {
		return 0, 0
	}
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *RGBATarget) Clear(c Color) {
	if t == nil || t.Img == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if t.Img.Stride != 4*w {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				t.SetPixel(x, y, c)
			}
		}
		return
	}
	pix := t.Img.Pix[:4*w*h]
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for i := 4; i < len(pix); i *= 2 {
		copy(pix[i:], pix[:i])
	}
}

func (t *RGBATarget) SetPixel(x, y int, c Color) {
	if t == nil || t.Img == nil {
		return
	}
	w, h := t.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	off := t.Img.PixOffset(x+t.Img.Rect.Min.X, y+t.Img.Rect.Min.Y)
	if off < 0 || off+3 >= len(t.Img.Pix) {
		return
	}
	t.Img.Pix[off+0] = c.R
	t.Img.Pix[off+1] = c.G
	t.Img.Pix[off+2] = c.B
	t.Img.Pix[off+3] = c.A
}
