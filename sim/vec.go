package sim

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the component types a Vec2 can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2D vector.
//
// Value methods (Add, Sub, Mul, Div, Scale) leave their operands untouched and
// return a new vector. The *Assign methods and Zero mutate the receiver and
// return it, so calls can be chained:
//
//	v.AddAssign(a).MulAssign(b)
//
// Division by a zero component is left to the caller: it panics for integer
// vectors and yields Inf/NaN for float vectors.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 returns the vector (x, y).
func V2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul multiplies component-wise.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y} }

// Div divides component-wise.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y} }

func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{X: v.X * s, Y: v.Y * s} }
func (v Vec2[T]) Neg() Vec2[T]      { return Vec2[T]{X: -v.X, Y: -v.Y} }

func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

func (v *Vec2[T]) MulAssign(o Vec2[T]) *Vec2[T] {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

func (v *Vec2[T]) DivAssign(o Vec2[T]) *Vec2[T] {
	v.X /= o.X
	v.Y /= o.Y
	return v
}

// Zero resets both components and returns the receiver.
func (v *Vec2[T]) Zero() *Vec2[T] {
	v.X = 0
	v.Y = 0
	return v
}

func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }
func (v Vec2[T]) LenSq() T        { return v.X*v.X + v.Y*v.Y }

// Len returns the exact Euclidean length.
func (v Vec2[T]) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Clamp limits each component to [lo, hi].
func (v Vec2[T]) Clamp(lo, hi T) Vec2[T] {
	return Vec2[T]{X: clamp(v.X, lo, hi), Y: clamp(v.Y, lo, hi)}
}

// Float converts to a float64 vector.
func (v Vec2[T]) Float() Vec2[float64] {
	return Vec2[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// Snap rounds a float vector to the nearest integer grid point.
func Snap(v Vec2[float64]) Vec2[int] {
	return Vec2[int]{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func clamp[T Scalar](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FastInvSqrt approximates 1/sqrt(x) from the float bit pattern plus one
// Newton step. Relative error stays below 0.2%.
func FastInvSqrt(x float32) float32 {
	half := 0.5 * x
	i := math.Float32bits(x)
	i = 0x5f375a86 - i>>1
	y := math.Float32frombits(i)
	return y * (1.5 - half*y*y)
}

func fastHypot(x, y float64) float64 {
	sq := float32(x*x + y*y)
	if sq == 0 {
		return 0
	}
	return float64(1 / FastInvSqrt(sq))
}
