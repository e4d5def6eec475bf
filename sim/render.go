package sim

// Canvas is the display collaborator the simulation draws through.
type Canvas interface {
	ClearScreen()
	DrawLine(x1, y1, x2, y2 int, r, g, b uint8)
}

// Render clears the canvas and draws every ball as a filled circle.
func (s *Simulation) Render(c Canvas) {
	if c == nil {
		return
	}
	c.ClearScreen()
	for i := range s.balls {
		b := &s.balls[i]
		r, g, bl := b.Color.RGB()
		FillCircle(c, int(b.Pos.X), int(b.Pos.Y), b.Radius, r, g, bl)
	}
}

// FillCircle draws a filled circle from horizontal spans. Each offset pair of
// the integer midpoint circle walk yields four spans mirrored across the
// centre lines.
func FillCircle(c Canvas, x, y, radius int, r, g, b uint8) {
	if radius < 0 {
		return
	}
	ox, oy := 0, radius
	d := radius - 1

	for oy >= ox {
		c.DrawLine(x-oy, y+ox, x+oy, y+ox, r, g, b)
		c.DrawLine(x-ox, y+oy, x+ox, y+oy, r, g, b)
		c.DrawLine(x-ox, y-oy, x+ox, y-oy, r, g, b)
		c.DrawLine(x-oy, y-ox, x+oy, y-ox, r, g, b)

		switch {
		case d >= 2*ox:
			d -= 2*ox + 1
			ox++
		case d < 2*(radius-oy):
			d += 2*oy - 1
			oy--
		default:
			d += 2 * (oy - ox - 1)
			oy--
			ox++
		}
	}
}
