package hal

import "errors"

// ErrExit is returned by a step function to end a run cleanly. Runners
// translate it to a nil error.
var ErrExit = errors.New("exit requested")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier. Printable keys arrive as runes with
// KeyUnknown.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the program and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
