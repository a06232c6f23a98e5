package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"wireframe/scene"
	"wireframe/wiregl"
)

var (
	hudFont   tinyfont.Fonter = &proggy.TinySZ8pt7b
	hudFg                     = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	hudSelect                 = color.RGBA{R: 0xC0, G: 0x20, B: 0x20, A: 0xFF}
)

const (
	hudLineHeight int16 = 11
	hudMargin     int16 = 6
)

// hudLines returns the panel text: one row per editable field plus a status
// row. The selected field is marked with '>'.
func hudLines(st *scene.State, sel Field, stats wiregl.Stats, diagonals bool) []string {
	lines := make([]string, 0, int(numFields)+2)
	for f := Field(0); f < numFields; f++ {
		mark := ' '
		if f == sel {
			mark = '>'
		}
		lines = append(lines, fmt.Sprintf("%c %-18s %8.3f", mark, f.String(), Value(st, f)))
	}
	diag := "off"
	if diagonals {
		diag = "on"
	}
	lines = append(lines,
		fmt.Sprintf("lines %d  skipped %d  diagonals %s", stats.Emitted, stats.Skipped, diag),
		"arrows drag  shift x10  home reset  F1 hud  F2 diag  F3 png  esc quit",
	)
	return lines
}

func drawHUD(t *wiregl.RGB565Target, lines []string, sel Field) {
	if t == nil {
		return
	}
	var d drivers.Displayer = fbDisplayer{t: t}
	y := hudMargin + hudLineHeight
	for i, s := range lines {
		c := hudFg
		if Field(i) == sel {
			c = hudSelect
		}
		tinyfont.WriteLine(d, hudFont, hudMargin, y, s, c)
		y += hudLineHeight
	}
}

// fbDisplayer lets tinyfont draw into the framebuffer target.
type fbDisplayer struct {
	t *wiregl.RGB565Target
}

func (d fbDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), wiregl.RGBA(c.R, c.G, c.B, c.A))
}

func (d fbDisplayer) Display() error { return nil }
