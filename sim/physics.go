package sim

import "math"

// Separation selects how overlapping balls are moved apart.
type Separation uint8

const (
	// SeparateRewind moves an approaching pair back along its velocities to
	// the exact moment of contact. Pairs that are not approaching are pushed
	// apart along the line of centres. Either way the final distance is the
	// sum of the radii.
	SeparateRewind Separation = iota
	// SeparateStepBack moves both balls back by StepBackFraction of their
	// velocity until they no longer overlap.
	SeparateStepBack
)

// BorderPolicy selects how wall contact is checked.
type BorderPolicy uint8

const (
	// BorderIndependent checks both axes every tick and keeps centres
	// inside the arena.
	BorderIndependent BorderPolicy = iota
	// BorderFirstMatch reflects at most one axis per tick, checking min-Y,
	// max-Y, min-X, max-X in that order.
	BorderFirstMatch
)

// Physics is a fixed preset for the collision engine and border check.
// Use DefaultPhysics or LegacyPhysics.
type Physics struct {
	Pi          float64
	FastSqrt    bool
	Separation  Separation
	Border      BorderPolicy
	MaxVelocity float64

	// ResolveSeparating applies the impulse even when the pair is already
	// moving apart.
	ResolveSeparating bool

	// SignedSeed lets Init pick negative velocity components.
	SignedSeed bool
}

// DefaultPhysics uses exact math and the independent border check.
func DefaultPhysics() Physics {
	return Physics{
		Pi:          math.Pi,
		Separation:  SeparateRewind,
		Border:      BorderIndependent,
		MaxVelocity: MaxVelocity,
		SignedSeed:  true,
	}
}

// LegacyPhysics reproduces the historical toy: pi truncated to 3, the fast
// inverse square root, step-back separation, the first-match border chain and
// velocities seeded toward +X/+Y only.
func LegacyPhysics() Physics {
	return Physics{
		Pi:                LegacyPi,
		FastSqrt:          true,
		Separation:        SeparateStepBack,
		Border:            BorderFirstMatch,
		MaxVelocity:       MaxVelocity,
		ResolveSeparating: true,
	}
}

func (p *Physics) hypot(x, y float64) float64 {
	if p.FastSqrt {
		return fastHypot(x, y)
	}
	return math.Hypot(x, y)
}
