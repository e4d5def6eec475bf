package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"flyingballs/gfx"
	"flyingballs/hal"
)

// guardStep turns a panic inside step into an error, after logging the
// stack and painting it on the framebuffer.
func guardStep(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			reportPanic(h, v, debug.Stack())
			err = fmt.Errorf("panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	var frames []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		frames = append(frames, line)
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("%spanic: %v", logPrefix, v))
		for _, line := range frames {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(255, 255, 255)
	text := gfx.NewText(fb)
	lh := text.LineHeight()
	cols := fb.Width() / maxInt(text.Width("0"), 1)
	if cols <= 0 {
		cols = 1
	}

	lines := append([]string{"FlyingBalls panic:", fmt.Sprintf("%v", v), "stack:"}, frames...)
	fg := color.RGBA{A: 255}
	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			text.WriteLine(0, y, chunk, fg)
			y += lh
			line = strings.TrimLeft(rest, " \t")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
