package raster

import (
	"math"

	"prism/engine/geom"
)

// coordLimit keeps pixel coordinates far from integer overflow when a
// projection blows up near w == 0.
const coordLimit = 1 << 20

// Triangle draws one screen-space triangle in the given mode. Triangles with
// non-finite coordinates are skipped.
func Triangle(t Target, pts [3]geom.Point2d, c Color, mode Mode) {
	if t == nil {
		return
	}
	var xs, ys [3]int
	for i, p := range pts {
		x, ok0 := pixel(p.X)
		y, ok1 := pixel(p.Y)
		if !ok0 || !ok1 {
			return
		}
		xs[i], ys[i] = x, y
	}

	switch mode {
	case ModeWireframe:
		outline(t, xs, ys, c)
	case ModeSolidWireframe:
		FillTriangle(t, xs[0], ys[0], xs[1], ys[1], xs[2], ys[2], c)
		outline(t, xs, ys, edgeColor(c))
	default:
		FillTriangle(t, xs[0], ys[0], xs[1], ys[1], xs[2], ys[2], c)
	}
}

func outline(t Target, xs, ys [3]int, c Color) {
	DrawLine(t, xs[0], ys[0], xs[1], ys[1], c)
	DrawLine(t, xs[1], ys[1], xs[2], ys[2], c)
	DrawLine(t, xs[2], ys[2], xs[0], ys[0], c)
}

// edgeColor keeps outlines visible on top of their own fill.
func edgeColor(c Color) Color {
	if int(c.R)+int(c.G)+int(c.B) > 3*0x80 {
		return RGB(0, 0, 0)
	}
	return RGB(0xFF, 0xFF, 0xFF)
}

// pixel truncates toward zero like an integer cast.
func pixel(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v > coordLimit {
		v = coordLimit
	}
	if v < -coordLimit {
		v = -coordLimit
	}
	return int(v), true
}

// FillTriangle fills the triangle with a flat color. Either winding works.
func FillTriangle(t Target, x0, y0, x1, y1, x2, y2 int, c Color) {
	w, h := t.Size()
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			t.SetPixel(x, y, c)
		}
	}
}

// DrawLine draws a Bresenham line. Off-target pixels are left to the target
// to clip.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	w, h := t.Size()
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= w && x1 >= w) || (y0 >= h && y1 >= h) {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
