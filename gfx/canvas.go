// Package gfx draws onto RGB565 framebuffers.
package gfx

import (
	"image/color"

	"flyingballs/hal"
)

// Canvas draws clipped lines onto a framebuffer. It implements sim.Canvas.
type Canvas struct {
	fb hal.Framebuffer
	bg color.RGBA
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb, bg: color.RGBA{A: 0xFF}}
}

// SetBackground sets the colour used by ClearScreen.
func (c *Canvas) SetBackground(bg color.RGBA) { c.bg = bg }

func (c *Canvas) Framebuffer() hal.Framebuffer { return c.fb }

func (c *Canvas) ClearScreen() {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(c.bg.R, c.bg.G, c.bg.B)
}

// DrawLine draws from (x1,y1) to (x2,y2) inclusive. Horizontal lines take a
// span fill; everything else is Bresenham.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, r, g, b uint8) {
	buf, ok := c.target()
	if !ok {
		return
	}
	pixel := hal.RGB565(r, g, b)
	w, h, stride := c.fb.Width(), c.fb.Height(), c.fb.StrideBytes()
	if y1 == y2 {
		hlineRGB565(buf, stride, w, h, x1, x2, y1, pixel)
		return
	}
	drawLineRGB565(buf, stride, w, h, x1, y1, x2, y2, pixel)
}

// FillRect fills a w x h rectangle with its top-left corner at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	buf, ok := c.target()
	if !ok || w <= 0 || h <= 0 {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	fw, fh, stride := c.fb.Width(), c.fb.Height(), c.fb.StrideBytes()
	for yy := y; yy < y+h; yy++ {
		hlineRGB565(buf, stride, fw, fh, x, x+w-1, yy, pixel)
	}
}

func (c *Canvas) target() ([]byte, bool) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return nil, false
	}
	buf := c.fb.Buffer()
	return buf, buf != nil
}

func setPixelRGB565(buf []byte, stride, w, h, x, y int, pixel uint16) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	off := y*stride + x*2
	if off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func hlineRGB565(buf []byte, stride, w, h, x0, x1, y int, pixel uint16) {
	if y < 0 || y >= h {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= w {
		x1 = w - 1
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	row := y * stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off+1 >= len(buf) {
			return
		}
		buf[off] = lo
		buf[off+1] = hi
	}
}

func drawLineRGB565(buf []byte, stride, w, h, x0, y0, x1, y1 int, pixel uint16) {
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
		setPixelRGB565(buf, stride, w, h, x0, y0, pixel)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
