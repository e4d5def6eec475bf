package sim

// checkBorderCollision reflects the velocity of a ball whose leading edge is
// at or past a wall it is moving toward. It returns the number of axes
// reflected.
func (s *Simulation) checkBorderCollision(b *Ball) int {
	w, h := float64(s.width), float64(s.height)
	if s.physics.Border == BorderFirstMatch {
		if reflectFirstMatch(b, w, h) {
			return 1
		}
		return 0
	}
	return reflectIndependent(b, w, h)
}

func reflectFirstMatch(b *Ball, w, h float64) bool {
	r := float64(b.Radius)
	switch {
	case b.Pos.Y-r <= 0 && b.Vel.Y < 0:
		b.Vel.Y = -b.Vel.Y
	case b.Pos.Y+r >= h && b.Vel.Y > 0:
		b.Vel.Y = -b.Vel.Y
	case b.Pos.X-r <= 0 && b.Vel.X < 0:
		b.Vel.X = -b.Vel.X
	case b.Pos.X+r >= w && b.Vel.X > 0:
		b.Vel.X = -b.Vel.X
	default:
		return false
	}
	return true
}

func reflectIndependent(b *Ball, w, h float64) int {
	r := float64(b.Radius)
	hits := 0
	if (b.Pos.X-r <= 0 && b.Vel.X < 0) || (b.Pos.X+r >= w && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
		hits++
	}
	if (b.Pos.Y-r <= 0 && b.Vel.Y < 0) || (b.Pos.Y+r >= h && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y
		hits++
	}
	b.Pos.X = clamp(b.Pos.X, 0, w)
	b.Pos.Y = clamp(b.Pos.Y, 0, h)
	return hits
}
