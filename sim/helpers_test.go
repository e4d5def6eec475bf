package sim

import (
	"math"
	"testing"
)

type line struct {
	x1, y1, x2, y2 int
	r, g, b        uint8
}

type recCanvas struct {
	clears int
	lines  []line
}

func (c *recCanvas) ClearScreen() {
	c.clears++
	c.lines = c.lines[:0]
}

func (c *recCanvas) DrawLine(x1, y1, x2, y2 int, r, g, b uint8) {
	c.lines = append(c.lines, line{x1: x1, y1: y1, x2: x2, y2: y2, r: r, g: g, b: b})
}

// gridSim returns a running simulation whose balls sit on a 10x10 grid with
// 100px spacing, radius 5 and zero velocity: no contacts, no wall contact.
func gridSim(t *testing.T, opts ...Option) *Simulation {
	t.Helper()
	s := New(1000, 1000, opts...)
	s.Init()
	for i := 0; i < MaxBalls; i++ {
		var b Ball
		b.Init(float64(50+(i%10)*100), float64(50+(i/10)*100), Color(i%numColors), Vec2[float64]{}, 5)
		s.SetBall(i, b)
	}
	return s
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVec(a, b Vec2[float64], eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}

func finite(v Vec2[float64]) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
