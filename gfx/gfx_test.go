package gfx

import (
	"image/color"
	"testing"

	"flyingballs/hal"
)

type testFB struct {
	w, h  int
	buf   []byte
	clear color.RGBA
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	f.clear = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	p := hal.RGB565(r, g, b)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func (f *testFB) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *testFB) count(p uint16) int {
	n := 0
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.at(x, y) == p {
				n++
			}
		}
	}
	return n
}

var red = hal.RGB565(255, 0, 0)

func TestClearScreen(t *testing.T) {
	fb := newTestFB(4, 4)
	c := NewCanvas(fb)
	c.SetBackground(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})
	c.ClearScreen()

	if fb.clear != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
		t.Fatalf("clear = %+v", fb.clear)
	}
	if c.Framebuffer() != hal.Framebuffer(fb) {
		t.Fatal("Framebuffer mismatch")
	}
}

func TestDrawLineHorizontalClipped(t *testing.T) {
	fb := newTestFB(10, 5)
	c := NewCanvas(fb)

	c.DrawLine(7, 2, -3, 2, 255, 0, 0)
	if n := fb.count(red); n != 8 {
		t.Fatalf("painted %d pixels, want 8", n)
	}
	for x := 0; x <= 7; x++ {
		if fb.at(x, 2) != red {
			t.Fatalf("pixel (%d,2) not painted", x)
		}
	}

	// Off-screen rows and spans past the right edge must not wrap.
	c.DrawLine(0, -1, 9, -1, 255, 0, 0)
	c.DrawLine(0, 5, 9, 5, 255, 0, 0)
	c.DrawLine(8, 3, 20, 3, 255, 0, 0)
	if n := fb.count(red); n != 10 {
		t.Fatalf("painted %d pixels, want 10", n)
	}
	if fb.at(0, 4) == red {
		t.Fatal("span wrapped onto the next row")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	fb := newTestFB(8, 8)
	c := NewCanvas(fb)

	c.DrawLine(0, 0, 7, 7, 255, 0, 0)
	for i := 0; i < 8; i++ {
		if fb.at(i, i) != red {
			t.Fatalf("pixel (%d,%d) not painted", i, i)
		}
	}
	if n := fb.count(red); n != 8 {
		t.Fatalf("painted %d pixels, want 8", n)
	}

	fb = newTestFB(8, 8)
	c = NewCanvas(fb)
	c.DrawLine(2, 7, 2, 0, 255, 0, 0)
	if n := fb.count(red); n != 8 {
		t.Fatalf("vertical painted %d pixels, want 8", n)
	}

	// Clipped at the edge, endpoints far outside.
	fb = newTestFB(8, 8)
	c = NewCanvas(fb)
	c.DrawLine(-4, -4, 11, 11, 255, 0, 0)
	if n := fb.count(red); n != 8 {
		t.Fatalf("clipped diagonal painted %d pixels, want 8", n)
	}
}

func TestFillRect(t *testing.T) {
	fb := newTestFB(6, 6)
	c := NewCanvas(fb)

	c.FillRect(4, 4, 5, 5, color.RGBA{R: 255, A: 255})
	if n := fb.count(red); n != 4 {
		t.Fatalf("painted %d pixels, want 4", n)
	}
	c.FillRect(0, 0, 0, 3, color.RGBA{R: 255, A: 255})
	if n := fb.count(red); n != 4 {
		t.Fatalf("empty rect painted, count %d", n)
	}
}

func TestNilFramebuffer(t *testing.T) {
	c := NewCanvas(nil)
	c.ClearScreen()
	c.DrawLine(0, 0, 5, 5, 1, 2, 3)
	c.FillRect(0, 0, 2, 2, color.RGBA{})

	txt := NewText(nil)
	txt.WriteLine(0, 0, "x", color.RGBA{})
}

func TestTextWriteLine(t *testing.T) {
	fb := newTestFB(64, 32)
	txt := NewText(fb)

	if txt.LineHeight() <= 0 {
		t.Fatalf("LineHeight = %d", txt.LineHeight())
	}
	if txt.Width("WW") <= txt.Width("W") {
		t.Fatalf("Width not increasing: %d, %d", txt.Width("W"), txt.Width("WW"))
	}

	txt.WriteLine(2, 2, "WM", color.RGBA{R: 255, A: 255})
	if fb.count(red) == 0 {
		t.Fatal("no glyph pixels drawn")
	}

	// Text running off every edge is clipped, not wrapped or panicking.
	txt.WriteLine(-10, -5, "clipped text", color.RGBA{G: 255, A: 255})
	txt.WriteLine(60, 30, "clipped text", color.RGBA{G: 255, A: 255})
}
