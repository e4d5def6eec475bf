package gfx

import (
	"image/color"

	"flyingballs/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Text writes single lines of text onto a framebuffer.
type Text struct {
	d    *fbDisplayer
	font tinyfont.Fonter
}

func NewText(fb hal.Framebuffer) *Text {
	return &Text{d: &fbDisplayer{fb: fb}, font: &proggy.TinySZ8pt7b}
}

// LineHeight is the vertical advance between lines, in pixels.
func (t *Text) LineHeight() int { return int(t.font.GetYAdvance()) }

// Width returns the rendered width of s in pixels.
func (t *Text) Width(s string) int {
	_, outbox := tinyfont.LineWidth(t.font, s)
	return int(outbox)
}

// WriteLine draws s with its top edge at y.
func (t *Text) WriteLine(x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(t.d, t.font, int16(x), int16(y+fontOffset), s, c)
}

// fontOffset is the distance from the top of a line to the glyph baseline.
const fontOffset = 10

var _ drivers.Displayer = (*fbDisplayer)(nil)

type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	setPixelRGB565(buf, d.fb.StrideBytes(), d.fb.Width(), d.fb.Height(), int(x), int(y), hal.RGB565(c.R, c.G, c.B))
}

func (d *fbDisplayer) Display() error { return nil }
