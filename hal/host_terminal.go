//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner. A zero Width or Height is
// taken from the terminal: one column per pixel, two pixel rows per cell.
type TerminalConfig struct {
	HostConfig
	Hz    int
	Ticks uint64
}

// RunTerminal draws the framebuffer into the terminal with half-block cells
// and forwards key presses. Log lines go to stderr unless cfg.Log is set.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	return runTerminal(ctx, screen, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp func(HAL) func() error, cfg TerminalConfig) error {
	cols, rows := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = cols
	}
	if cfg.Height <= 0 {
		cfg.Height = rows * 2
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	h := New(cfg.HostConfig).(*hostHAL)
	step := newApp(h)
	go pumpTerminalEvents(screen, h.kbd)

	t := time.NewTicker(d)
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return exitErr(err)
				}
			}
			h.fb.snapshotRGB565(scratch)
			blitHalfBlocks(screen, scratch, h.fb.width, h.fb.stride)
			screen.Show()

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// blitHalfBlocks maps two framebuffer rows onto one cell row: the upper
// pixel is the foreground of '▀', the lower one the background.
func blitHalfBlocks(screen tcell.Screen, buf []byte, width, stride int) {
	cols, rows := screen.Size()
	if width < cols {
		cols = width
	}
	for row := 0; row < rows; row++ {
		for x := 0; x < cols; x++ {
			tr, tg, tb := PixelAt(buf, stride, x, row*2)
			br, bg, bb := PixelAt(buf, stride, x, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(x, row, '▀', nil, style)
		}
	}
}

func pumpTerminalEvents(screen tcell.Screen, kbd *hostKeyboard) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ke, ok := terminalKey(ev); ok {
				kbd.push(ke)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func terminalKey(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyCtrlC:
		return KeyEvent{Press: true, Rune: 0x03}, true
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}
