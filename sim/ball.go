package sim

// Color tags a ball for rendering.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Yellow

	numColors = 4
)

// RGB returns the 8-bit draw colour for the tag.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case Red:
		return 0xFF, 0x00, 0x00
	case Blue:
		return 0x00, 0x00, 0xFF
	case Green:
		return 0x00, 0xFF, 0x00
	case Yellow:
		return 0xFF, 0xFF, 0x00
	default:
		return 0x00, 0x00, 0x00
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Ball is the physical state of one body. It owns its velocity.
type Ball struct {
	Pos    Vec2[float64]
	Vel    Vec2[float64]
	Radius int
	Color  Color
}

// Init sets every field. A radius <= 0 selects DefaultRadius.
func (b *Ball) Init(x, y float64, c Color, vel Vec2[float64], radius int) {
	if radius <= 0 {
		radius = DefaultRadius
	}
	b.Pos = Vec2[float64]{X: x, Y: y}
	b.Vel = vel
	b.Radius = radius
	b.Color = c
}

// Mass is proportional to area.
func (b *Ball) Mass(pi float64) float64 {
	r := float64(b.Radius)
	return pi * r * r
}
