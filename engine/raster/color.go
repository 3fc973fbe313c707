package raster

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Gray returns an opaque color with every channel set to v.
func Gray(v uint8) Color { return RGB(v, v, v) }

func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

// FromRGBA converts a standard library color.
func FromRGBA(c color.RGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }
