package sim

// Stats counts what happened during the last Update.
type Stats struct {
	Contacts int
	WallHits int
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithPhysics selects a physics preset.
func WithPhysics(p Physics) Option {
	return func(s *Simulation) { s.physics = p }
}

// WithSeed sets the xorshift seed used by Init. Zero selects DefaultSeed.
func WithSeed(seed uint32) Option {
	return func(s *Simulation) { s.seed = seed }
}

// WithEvents installs a hook called once per loop iteration by HandleEvents.
// The hook may call Stop to end the run.
func WithEvents(fn func(*Simulation)) Option {
	return func(s *Simulation) { s.events = fn }
}

// Simulation owns a fixed population of balls inside a width x height arena.
//
// A Simulation is not safe for concurrent use.
type Simulation struct {
	balls   [MaxBalls]Ball
	width   int
	height  int
	running bool

	physics Physics
	seed    uint32
	rng     uint32
	events  func(*Simulation)

	tick  uint64
	stats Stats
}

// New returns an unseeded simulation. Call Init before Update.
func New(width, height int, opts ...Option) *Simulation {
	s := &Simulation{
		width:   width,
		height:  height,
		physics: DefaultPhysics(),
		seed:    DefaultSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = DefaultSeed
	}
	return s
}

// Init seeds the population and marks the simulation as running.
func (s *Simulation) Init() {
	s.running = true
	s.tick = 0
	s.stats = Stats{}
	s.rng = s.seed

	w := maxInt(s.width, 1)
	h := maxInt(s.height, 1)
	for i := range s.balls {
		x := s.intn(w)
		y := s.intn(h)
		vx := s.velocity()
		vy := s.velocity()
		radius := s.intn(MaxRadius-MinRadius+1) + MinRadius
		c := Color(s.intn(numColors))

		s.balls[i].Init(float64(x), float64(y), c, V2(float64(vx), float64(vy)), radius)
	}
}

// Reseed replaces the seed and re-runs Init.
func (s *Simulation) Reseed(seed uint32) {
	if seed == 0 {
		seed = DefaultSeed
	}
	s.seed = seed
	s.Init()
}

func (s *Simulation) velocity() int {
	v := s.intn(MaxVelocity-MinVelocity+1) + MinVelocity
	if s.physics.SignedSeed && s.intn(2) == 1 {
		v = -v
	}
	return v
}

func (s *Simulation) intn(n int) int {
	s.rng = xorshift32(s.rng)
	return int(s.rng % uint32(n))
}

// HandleEvents runs the event hook, if any.
func (s *Simulation) HandleEvents() {
	if s.events != nil {
		s.events(s)
	}
}

// Update advances one tick: pairwise collisions, then integration, then the
// border check for each ball.
func (s *Simulation) Update() {
	s.stats = Stats{}
	s.resolveCollisions()

	for i := range s.balls {
		b := &s.balls[i]
		b.Pos.AddAssign(b.Vel.Scale(GameSpeed))
		s.stats.WallHits += s.checkBorderCollision(b)
	}
	s.tick++
}

// Running reports whether the run loop should continue.
func (s *Simulation) Running() bool { return s.running }

// Stop clears the running flag. The loop exits after the current iteration.
func (s *Simulation) Stop() { s.running = false }

func (s *Simulation) Width() int       { return s.width }
func (s *Simulation) Height() int      { return s.height }
func (s *Simulation) Tick() uint64     { return s.tick }
func (s *Simulation) Stats() Stats     { return s.stats }
func (s *Simulation) Physics() Physics { return s.physics }

// Balls returns a copy of the population in index order.
func (s *Simulation) Balls() []Ball {
	out := make([]Ball, len(s.balls))
	copy(out, s.balls[:])
	return out
}

// Ball returns the ball at index i.
func (s *Simulation) Ball(i int) Ball { return s.balls[i] }

// SetBall replaces the ball at index i.
func (s *Simulation) SetBall(i int, b Ball) { s.balls[i] = b }

// Energy returns the total kinetic energy, with mass from the active preset.
func (s *Simulation) Energy() float64 {
	var e float64
	for i := range s.balls {
		b := &s.balls[i]
		e += 0.5 * b.Mass(s.physics.Pi) * b.Vel.LenSq()
	}
	return e
}

// Momentum returns the total mass-weighted velocity.
func (s *Simulation) Momentum() Vec2[float64] {
	var m Vec2[float64]
	for i := range s.balls {
		b := &s.balls[i]
		m.AddAssign(b.Vel.Scale(b.Mass(s.physics.Pi)))
	}
	return m
}

// Run seeds a width x height simulation and loops HandleEvents, Update and
// Render until the simulation stops. It returns the exit status.
func Run(width, height int, canvas Canvas, opts ...Option) int {
	s := New(width, height, opts...)
	s.Init()
	for s.Running() {
		s.HandleEvents()
		if !s.Running() {
			break
		}
		s.Update()
		s.Render(canvas)
	}
	return 0
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = DefaultSeed
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
