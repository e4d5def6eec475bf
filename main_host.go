//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"flyingballs/app"
	"flyingballs/hal"
	"flyingballs/sound"
)

func main() {
	var (
		headless hal.HeadlessConfig
		size     hal.HostConfig
		tty      bool
		seed     uint
		cfg      app.Config
		withBeep bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&tty, "tty", false, "Render into the terminal instead of a window.")
	flag.IntVar(&size.Width, "width", 320, "Arena width in pixels (terminal: 0 = fit).")
	flag.IntVar(&size.Height, "height", 240, "Arena height in pixels (terminal: 0 = fit).")
	flag.UintVar(&seed, "seed", 0, "Layout seed (0 = default).")
	flag.BoolVar(&cfg.Legacy, "legacy", false, "Use the historical physics preset.")
	flag.BoolVar(&withBeep, "sound", false, "Play a tone on bounces.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show tick and collision counters.")
	flag.Parse()

	cfg.Seed = uint32(seed)
	if withBeep {
		p := sound.New()
		if err := p.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "flyingballs: sound disabled:", err)
		} else {
			defer p.Close()
			cfg.Sound = p
		}
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case tty:
		tc := hal.TerminalConfig{HostConfig: size, Hz: headless.Hz, Ticks: headless.Ticks}
		if !isSet("width") {
			tc.Width = 0
		}
		if !isSet("height") {
			tc.Height = 0
		}
		err = hal.RunTerminal(ctx, newApp, tc)
	case headless.Enabled:
		headless.HostConfig = size
		err = hal.RunHeadless(ctx, newApp, headless)
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{HostConfig: size})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
