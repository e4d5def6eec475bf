package app

import (
	"fmt"
	"image/color"

	"flyingballs/gfx"
	"flyingballs/hal"
	"flyingballs/internal/buildinfo"
	"flyingballs/sim"
)

const logPrefix = "flyingballs: "

// Sounder receives the per-tick collision counts.
type Sounder interface {
	Bounce(contacts, wallHits int)
}

type Config struct {
	// Legacy selects the historical physics preset.
	Legacy bool
	// Seed for the initial layout. Zero selects sim.DefaultSeed.
	Seed uint32
	HUD  bool
	// Sound is optional.
	Sound Sounder
}

// App runs one simulation on a HAL framebuffer.
type App struct {
	log    hal.Logger
	fb     hal.Framebuffer
	kbd    hal.Keyboard
	canvas *gfx.Canvas
	text   *gfx.Text
	sound  Sounder

	sim    *sim.Simulation
	seed   uint32
	hud    bool
	paused bool
}

// NewWithConfig seeds a simulation sized to the framebuffer and returns the
// per-tick step function. The step returns hal.ErrExit once the user quits.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := New(h, cfg)
	return guardStep(h, a.Step)
}

func New(h hal.HAL, cfg Config) *App {
	a := &App{
		log:   h.Logger(),
		hud:   cfg.HUD,
		sound: cfg.Sound,
		seed:  cfg.Seed,
	}
	if a.seed == 0 {
		a.seed = sim.DefaultSeed
	}
	if d := h.Display(); d != nil {
		a.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	a.canvas = gfx.NewCanvas(a.fb)
	a.canvas.SetBackground(color.RGBA{R: 0x08, G: 0x0B, B: 0x10, A: 0xFF})
	a.text = gfx.NewText(a.fb)

	w, ht := 0, 0
	if a.fb != nil {
		w, ht = a.fb.Width(), a.fb.Height()
	}
	physics, name := sim.DefaultPhysics(), "default"
	if cfg.Legacy {
		physics, name = sim.LegacyPhysics(), "legacy"
	}
	a.sim = sim.New(w, ht,
		sim.WithPhysics(physics),
		sim.WithSeed(a.seed),
		sim.WithEvents(a.handleEvents),
	)
	a.sim.Init()

	a.logf("%s", buildinfo.String())
	a.logf("arena %dx%d, %d balls, seed %d, %s physics", w, ht, sim.MaxBalls, a.seed, name)
	return a
}

// Sim exposes the running simulation.
func (a *App) Sim() *sim.Simulation { return a.sim }

func (a *App) Paused() bool { return a.paused }

// Step runs one loop iteration: events, update, render, present.
func (a *App) Step() error {
	a.sim.HandleEvents()
	if !a.sim.Running() {
		a.logf("stopped at tick %d", a.sim.Tick())
		return hal.ErrExit
	}

	if !a.paused {
		a.sim.Update()
		if a.sound != nil {
			st := a.sim.Stats()
			a.sound.Bounce(st.Contacts, st.WallHits)
		}
	}

	a.sim.Render(a.canvas)
	if a.hud {
		a.drawHUD()
	}
	if a.fb == nil {
		return nil
	}
	return a.fb.Present()
}

func (a *App) handleEvents(s *sim.Simulation) {
	if a.kbd == nil {
		return
	}
	ch := a.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				a.handleKey(s, ev)
			}
		default:
			return
		}
	}
}

func (a *App) handleKey(s *sim.Simulation, ev hal.KeyEvent) {
	if ev.Code == hal.KeyEscape {
		s.Stop()
		return
	}
	switch ev.Rune {
	case 'q', 'Q', 0x03:
		s.Stop()
	case ' ':
		a.paused = !a.paused
		if a.paused {
			a.logf("paused at tick %d", s.Tick())
		} else {
			a.logf("resumed")
		}
	case 'r', 'R':
		a.seed++
		if a.seed == 0 {
			a.seed++
		}
		s.Reseed(a.seed)
		a.logf("reseeded with %d", a.seed)
	case 'h', 'H':
		a.hud = !a.hud
	}
}

var (
	hudPanel = color.RGBA{R: 0x10, G: 0x14, B: 0x1C, A: 0xFF}
	hudText  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	hudPause = color.RGBA{R: 0xFF, G: 0xC0, B: 0x40, A: 0xFF}
)

func (a *App) drawHUD() {
	st := a.sim.Stats()
	lines := []string{
		fmt.Sprintf("tick %d", a.sim.Tick()),
		fmt.Sprintf("contacts %d  walls %d", st.Contacts, st.WallHits),
		fmt.Sprintf("energy %.1f", a.sim.Energy()),
	}
	if a.paused {
		lines = append(lines, "paused")
	}

	const pad = 4
	lh := a.text.LineHeight()
	w := 0
	for _, l := range lines {
		if lw := a.text.Width(l); lw > w {
			w = lw
		}
	}
	a.canvas.FillRect(0, 0, w+2*pad, len(lines)*lh+2*pad, hudPanel)

	y := pad
	for i, l := range lines {
		c := hudText
		if a.paused && i == len(lines)-1 {
			c = hudPause
		}
		a.text.WriteLine(pad, y, l, c)
		y += lh
	}
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(logPrefix + fmt.Sprintf(format, args...))
}
