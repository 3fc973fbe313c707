package app

import (
	"fmt"
	"image/color"

	"prism/engine/pipeline"
	"prism/engine/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const hudLineHeight = 8

var (
	hudFont  = &tinyfont.TomThumb
	hudTitle = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudText  = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
)

func (v *Viewer) drawHUD(st pipeline.FrameState) {
	d := &hudDisplay{t: v.target}
	v.drawText(d, 4, 0, v.source, hudTitle)
	v.drawText(d, 4, 1, fmt.Sprintf("theta %.2f  light %.2f  %s", st.Theta, st.LightX, v.mode), hudText)
	v.drawText(d, 4, 2, fmt.Sprintf("drawn %d  culled %d", v.stats.Drawn, v.stats.Culled), hudText)
	v.drawText(d, 4, 3, "q/ESC exit  <- -> light  w mode  h hud", hudText)
}

func (v *Viewer) drawText(d drivers.Displayer, x int16, line int16, s string, c color.RGBA) {
	tinyfont.WriteLine(d, hudFont, x, (line+1)*hudLineHeight, s, c)
}

// hudDisplay lets tinyfont draw into a raster target.
type hudDisplay struct {
	t *raster.RGBATarget
}

var _ drivers.Displayer = (*hudDisplay)(nil)

func (d *hudDisplay) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *hudDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.SetPixel(int(x), int(y), raster.FromRGBA(c))
}

func (d *hudDisplay) Display() error { return nil }
