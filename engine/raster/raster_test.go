package raster

import (
	"image"
	"math"
	"testing"

	"prism/engine/geom"
)

func countColor(t *RGBATarget, c Color) int {
	n := 0
	w, h := t.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if FromRGBA(t.Img.RGBAAt(x, y)) == c {
				n++
			}
		}
	}
	return n
}

func TestClearAndSetPixel(t *testing.T) {
	tg := NewRGBATarget(7, 5)
	tg.Clear(RGB(1, 2, 3))
	if got := countColor(tg, RGB(1, 2, 3)); got != 35 {
		t.Fatalf("expected 35 cleared pixels, got %d", got)
	}

	tg.SetPixel(2, 3, Gray(200))
	tg.SetPixel(-1, 0, Gray(200))
	tg.SetPixel(7, 0, Gray(200))
	tg.SetPixel(0, 5, Gray(200))
	if got := countColor(tg, Gray(200)); got != 1 {
		t.Fatalf("expected 1 pixel set, got %d", got)
	}
}

func TestClearSubImage(t *testing.T) {
	parent := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := parent.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)
	tg := &RGBATarget{Img: sub}
	tg.Clear(RGB(9, 9, 9))

	parentTarget := &RGBATarget{Img: parent}
	if got := countColor(parentTarget, RGB(9, 9, 9)); got != 4 {
		t.Fatalf("expected only the 2x2 sub-image cleared, got %d pixels", got)
	}
}

func TestFillTriangleBothWindings(t *testing.T) {
	a := NewRGBATarget(32, 32)
	b := NewRGBATarget(32, 32)
	white := Gray(255)

	FillTriangle(a, 2, 2, 20, 2, 2, 20, white)
	FillTriangle(b, 2, 2, 2, 20, 20, 2, white)

	na := countColor(a, white)
	nb := countColor(b, white)
	if na == 0 {
		t.Fatal("expected filled pixels")
	}
	if na != nb {
		t.Fatalf("winding changed coverage: %d vs %d", na, nb)
	}
	// Right isoceles with legs of 18 covers about half of 19x19.
	if na < 150 || na > 220 {
		t.Fatalf("unexpected coverage %d", na)
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	tg := NewRGBATarget(16, 16)
	FillTriangle(tg, 1, 1, 5, 5, 9, 9, Gray(255))
	if got := countColor(tg, Gray(255)); got != 0 {
		t.Fatalf("expected no pixels for a zero-area triangle, got %d", got)
	}
}

func TestFillTriangleClipsToTarget(t *testing.T) {
	tg := NewRGBATarget(10, 10)
	FillTriangle(tg, -100, -100, 300, -100, -100, 300, Gray(255))
	if got := countColor(tg, Gray(255)); got != 100 {
		t.Fatalf("expected the whole target covered, got %d", got)
	}
}

func TestDrawLine(t *testing.T) {
	tg := NewRGBATarget(10, 10)
	DrawLine(tg, 0, 0, 9, 9, Gray(255))
	if got := countColor(tg, Gray(255)); got != 10 {
		t.Fatalf("expected 10 diagonal pixels, got %d", got)
	}
	for i := 0; i < 10; i++ {
		if FromRGBA(tg.Img.RGBAAt(i, i)) != Gray(255) {
			t.Fatalf("pixel (%d,%d) not drawn", i, i)
		}
	}
}

func TestDrawLineOffTarget(t *testing.T) {
	tg := NewRGBATarget(10, 10)
	DrawLine(tg, -50, 3, -1, 8, Gray(255))
	if got := countColor(tg, Gray(255)); got != 0 {
		t.Fatalf("expected nothing drawn, got %d", got)
	}
}

func TestTriangleModes(t *testing.T) {
	pts := [3]geom.Point2d{{X: 2.9, Y: 2.2}, {X: 25.5, Y: 3}, {X: 4, Y: 27.99}}
	c := Gray(100)

	solid := NewRGBATarget(32, 32)
	Triangle(solid, pts, c, ModeSolid)

	wire := NewRGBATarget(32, 32)
	Triangle(wire, pts, c, ModeWireframe)

	both := NewRGBATarget(32, 32)
	Triangle(both, pts, c, ModeSolidWireframe)

	ns, nw := countColor(solid, c), countColor(wire, c)
	if ns <= nw {
		t.Fatalf("solid fill (%d) should cover more than outline (%d)", ns, nw)
	}
	if got := countColor(both, RGB(0xFF, 0xFF, 0xFF)); got == 0 {
		t.Fatal("expected light edges over a dark fill")
	}
	if FromRGBA(wire.Img.RGBAAt(2, 2)) != c {
		t.Fatal("expected truncated vertex (2,2) on the outline")
	}
}

func TestTriangleSkipsNonFinite(t *testing.T) {
	tg := NewRGBATarget(8, 8)
	Triangle(tg, [3]geom.Point2d{{X: 0, Y: 0}, {X: math.NaN(), Y: 7}, {X: 7, Y: 7}}, Gray(255), ModeSolid)
	Triangle(tg, [3]geom.Point2d{{X: 0, Y: 0}, {X: math.Inf(1), Y: 7}, {X: 7, Y: 7}}, Gray(255), ModeSolid)
	if got := countColor(tg, Gray(255)); got != 0 {
		t.Fatalf("expected nothing drawn, got %d", got)
	}
}

func TestModes(t *testing.T) {
	for _, m := range []Mode{ModeSolid, ModeWireframe, ModeSolidWireframe} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("ParseMode(%q) = %v", m.String(), got)
		}
	}
	if _, err := ParseMode("points"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if ModeSolid.Next() != ModeWireframe || ModeWireframe.Next() != ModeSolidWireframe || ModeSolidWireframe.Next() != ModeSolid {
		t.Fatal("unexpected mode cycle")
	}
}
