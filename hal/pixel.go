package hal

// RGB565 packs 8-bit channels into a 16bpp pixel.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands a 16bpp pixel back to 8-bit channels. Full-scale channels
// round-trip exactly.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PixelAt decodes the RGB565 pixel at (x, y) of buf. Out of range reads
// return black.
func PixelAt(buf []byte, stride, x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 {
		return 0, 0, 0
	}
	off := y*stride + x*2
	if off+1 >= len(buf) || x*2+1 >= stride {
		return 0, 0, 0
	}
	return RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
}

// expandRGB565 converts a packed RGB565 buffer to opaque RGBA8888.
func expandRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := RGB888(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
