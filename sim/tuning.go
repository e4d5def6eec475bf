package sim

// Population and seeding bounds.
const (
	MaxBalls    = 100
	MaxRadius   = 20
	MinRadius   = 2
	MaxVelocity = 2
	MinVelocity = 1

	// GameSpeed is the integration timestep: pos += vel * GameSpeed.
	GameSpeed = 1

	// DefaultRadius is used by Ball.Init when no radius is given.
	DefaultRadius = 15
)

const (
	// MinDistance replaces a centre distance below it in the impulse denominator.
	MinDistance = 1.0

	// StepBackFraction is the share of its velocity a ball moves back per
	// iteration of the legacy separation loop.
	StepBackFraction = 1.0 / 100

	// MaxStepBackIterations bounds the legacy separation loop. Pairs that are
	// still overlapping afterwards are pushed apart along the line of centres.
	MaxStepBackIterations = 10000

	// LegacyPi is the truncated pi of the integer-arithmetic toy.
	LegacyPi = 3

	// DefaultSeed is the xorshift state used when no seed is given.
	DefaultSeed uint32 = 729578
)
