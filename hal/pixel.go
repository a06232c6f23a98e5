package hal

// RGB565 is a packed 16-bit pixel: rrrrrggggggbbbbb.
type RGB565 uint16

// PackRGB565 drops the low bits of each 8-bit channel.
func PackRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands p back to 8-bit channels, rounding to nearest.
func (p RGB565) RGB() (r, g, b uint8) {
	rr := uint32(p>>11) & 0x1F
	gg := uint32(p>>5) & 0x3F
	bb := uint32(p) & 0x1F
	return uint8((rr*255 + 15) / 31), uint8((gg*255 + 31) / 63), uint8((bb*255 + 15) / 31)
}
