package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
		{255, 255, 0, 0xFFE0},
		{255, 255, 255, 0xFFFF},
	}
	for _, tt := range tests {
		p := RGB565(tt.r, tt.g, tt.b)
		if p != tt.want {
			t.Fatalf("RGB565(%d,%d,%d) = %#04x, want %#04x", tt.r, tt.g, tt.b, p, tt.want)
		}
		r, g, b := RGB888(p)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Fatalf("RGB888(%#04x) = %d,%d,%d, want %d,%d,%d", p, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestPixelAt(t *testing.T) {
	const w, h = 3, 2
	buf := make([]byte, w*2*h)
	p := RGB565(0, 0, 255)
	off := 1*w*2 + 2*2
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)

	if r, g, b := PixelAt(buf, w*2, 2, 1); r != 0 || g != 0 || b != 255 {
		t.Fatalf("PixelAt(2,1) = %d,%d,%d, want blue", r, g, b)
	}
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if r, g, b := PixelAt(buf, w*2, xy[0], xy[1]); r|g|b != 0 {
			t.Fatalf("PixelAt(%d,%d) = %d,%d,%d, want black", xy[0], xy[1], r, g, b)
		}
	}
}

func TestExpandRGB565(t *testing.T) {
	src := []byte{0x00, 0xF8, 0xE0, 0x07}
	dst := make([]byte, 8)
	expandRGB565(dst, src)

	want := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = %v, want %v", dst, want)
		}
	}

	short := make([]byte, 4)
	expandRGB565(short, src)
	if short[0] != 255 || short[3] != 255 {
		t.Fatalf("short dst = %v", short)
	}
}
