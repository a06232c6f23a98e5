package wiregl

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

const (
	ColorBlack     Color = 0x000000FF
	ColorWhite     Color = 0xFFFFFFFF
	ColorLightGray Color = 0xAAAAAAFF
)

func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// NRGBA converts c to a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGB565 packs the color channels into 16 bits, dropping alpha.
func (c Color) RGB565() uint16 {
	return uint16(c.R()>>3)<<11 | uint16(c.G()>>2)<<5 | uint16(c.B()>>3)
}

func (c Color) String() string { return fmt.Sprintf("0x%08X", uint32(c)) }
