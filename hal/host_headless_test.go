//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessTicks(t *testing.T) {
	var calls int
	newApp := func(h HAL) func() error {
		return func() error {
			calls++
			return nil
		}
	}
	cfg := HeadlessConfig{Hz: 1000, Ticks: 5, StepBudget: 2}
	cfg.Log = &bytes.Buffer{}

	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if calls != 10 {
		t.Fatalf("calls = %d, want 10", calls)
	}
}

func TestRunHeadlessExit(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		stepErr error
		want    error
	}{
		{"exit is clean", ErrExit, nil},
		{"wrapped exit is clean", errors.Join(ErrExit), nil},
		{"other errors pass through", boom, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			newApp := func(h HAL) func() error {
				return func() error {
					calls++
					if calls == 3 {
						return tt.stepErr
					}
					return nil
				}
			}
			cfg := HeadlessConfig{Hz: 1000}
			cfg.Log = &bytes.Buffer{}

			err := RunHeadless(context.Background(), newApp, cfg)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if calls != 3 {
				t.Fatalf("calls = %d, want 3", calls)
			}
		})
	}
}

func TestRunHeadlessContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	cfg := HeadlessConfig{Hz: 100}
	cfg.Log = &bytes.Buffer{}
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, cfg)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestHostHAL(t *testing.T) {
	var log bytes.Buffer
	h := New(HostConfig{Width: 8, Height: 4, Log: &log})

	fb := h.Display().Framebuffer()
	if fb.Width() != 8 || fb.Height() != 4 || fb.StrideBytes() != 16 || len(fb.Buffer()) != 64 {
		t.Fatalf("framebuffer %dx%d stride %d len %d", fb.Width(), fb.Height(), fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(255, 255, 0)
	if r, g, b := PixelAt(fb.Buffer(), fb.StrideBytes(), 7, 3); r != 255 || g != 255 || b != 0 {
		t.Fatalf("pixel = %d,%d,%d, want yellow", r, g, b)
	}

	h.Logger().WriteLineString("hello")
	h.Logger().WriteLineBytes([]byte("world"))
	if got := log.String(); got != "hello\nworld\n" {
		t.Fatalf("log = %q", got)
	}

	kbd := h.Input().Keyboard().(*hostKeyboard)
	for i := 0; i < 100; i++ {
		kbd.push(KeyEvent{Press: true, Rune: 'x'})
	}
	if n := len(kbd.Events()); n != 64 {
		t.Fatalf("queued %d events, want 64", n)
	}

	d := New(HostConfig{}).Display().Framebuffer()
	if d.Width() != 320 || d.Height() != 320 {
		t.Fatalf("default size %dx%d", d.Width(), d.Height())
	}
}
