package sim

import "math"

// resolveCollisions checks every unordered pair (i < k) in index order and
// resolves the ones in contact.
func (s *Simulation) resolveCollisions() {
	for i := 0; i < len(s.balls); i++ {
		for k := i + 1; k < len(s.balls); k++ {
			if collide(&s.balls[i], &s.balls[k], &s.physics) {
				s.stats.Contacts++
			}
		}
	}
}

// collide resolves one pair and reports whether the pair was in contact.
// Touching pairs (distance == sum of radii) count as contact.
func collide(b1, b2 *Ball, p *Physics) bool {
	reach := float64(b1.Radius + b2.Radius)
	d := b1.Pos.Sub(b2.Pos)
	if p.hypot(d.X, d.Y) > reach {
		return false
	}

	switch p.Separation {
	case SeparateStepBack:
		stepBack(b1, b2, reach, p)
	default:
		rewind(b1, b2, reach)
	}

	exchangeMomentum(b1, b2, p)

	b1.Vel = b1.Vel.Clamp(-p.MaxVelocity, p.MaxVelocity)
	b2.Vel = b2.Vel.Clamp(-p.MaxVelocity, p.MaxVelocity)
	return true
}

// rewind solves |d - t*rel| = reach for the smallest t >= 0 and moves both
// balls back by t times their velocity. Contact that would need more than one
// tick of rewind was not made during the last tick, so such pairs are pushed
// apart instead.
func rewind(b1, b2 *Ball, reach float64) {
	d := b1.Pos.Sub(b2.Pos)
	rel := b1.Vel.Sub(b2.Vel)
	approach := d.Dot(rel)
	relSq := rel.LenSq()
	if approach >= 0 || relSq == 0 {
		pushApart(b1, b2, reach)
		return
	}

	c := d.LenSq() - reach*reach
	if c > 0 {
		return
	}
	t := (approach + math.Sqrt(approach*approach-relSq*c)) / relSq
	if t > GameSpeed {
		pushApart(b1, b2, reach)
		return
	}
	b1.Pos.SubAssign(b1.Vel.Scale(t))
	b2.Pos.SubAssign(b2.Vel.Scale(t))
}

// pushApart moves both balls away from each other along the line of centres
// by half the penetration depth each. Concentric balls split along X.
func pushApart(b1, b2 *Ball, reach float64) {
	d := b1.Pos.Sub(b2.Pos)
	dist := d.Len()
	if dist >= reach {
		return
	}
	n := Vec2[float64]{X: 1}
	if dist > 0 {
		n = d.Scale(1 / dist)
	}
	half := n.Scale((reach - dist) / 2)
	b1.Pos.AddAssign(half)
	b2.Pos.SubAssign(half)
}

// stepBack moves both balls back in StepBackFraction increments of their
// velocity until the pair no longer overlaps. Pairs that stepping back cannot
// separate within MaxStepBackIterations are restored and pushed apart.
func stepBack(b1, b2 *Ball, reach float64, p *Physics) {
	if b1.Vel == b2.Vel {
		pushApart(b1, b2, reach)
		return
	}
	p1, p2 := b1.Pos, b2.Pos
	for i := 0; i < MaxStepBackIterations; i++ {
		d := b1.Pos.Sub(b2.Pos)
		if p.hypot(d.X, d.Y) > reach {
			return
		}
		b1.Pos.SubAssign(b1.Vel.Scale(StepBackFraction))
		b2.Pos.SubAssign(b2.Vel.Scale(StepBackFraction))
	}
	b1.Pos, b2.Pos = p1, p2
	pushApart(b1, b2, reach)
}

// exchangeMomentum applies the two-body elastic impulse along the line of
// centres, using the pre-collision velocities for both balls.
func exchangeMomentum(b1, b2 *Ball, p *Physics) {
	d := b1.Pos.Sub(b2.Pos)
	dist := p.hypot(d.X, d.Y)
	if dist < MinDistance {
		dist = MinDistance
	}

	v1, v2 := b1.Vel, b2.Vel
	dot := v1.Sub(v2).Dot(d)
	if dot > 0 && !p.ResolveSeparating {
		return
	}

	m1, m2 := b1.Mass(p.Pi), b2.Mass(p.Pi)
	total := m1 + m2
	if total <= 0 {
		total = 1
	}

	scalar := dot / (dist * dist)
	b1.Vel = v1.Sub(d.Scale(2 * m2 / total * scalar))
	// dot(v2-v1, -d) == dot(v1-v2, d), so the same scalar applies along -d.
	b2.Vel = v2.Sub(d.Neg().Scale(2 * m1 / total * scalar))
}
