package geometry

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/image/math/f32"
)

// Vec2 is an immutable 2D vector of float32 components. Neither component is
// NaN when built through NewVec2. The zero value is the zero vector.
type Vec2 struct {
	x float32
	y float32
}

// ZeroVec2 returns the vector (0, 0).
func ZeroVec2() Vec2 {
	return Vec2{}
}

// NewVec2 returns the vector (x, y). Infinities are accepted as given.
func NewVec2(x, y float32) (Vec2, error) {
	if isNaN(x) || isNaN(y) {
		return Vec2{}, fmt.Errorf("%w: vec2 component is NaN (%v, %v)", ErrInvalidValue, x, y)
	}
	return Vec2{x: x, y: y}, nil
}

// Vec2FromF32 converts an f32.Vec2 into a validated Vec2.
func Vec2FromF32(v f32.Vec2) (Vec2, error) {
	return NewVec2(v[0], v[1])
}

func (v Vec2) X() float32 {
	return v.x
}

func (v Vec2) Y() float32 {
	return v.y
}

// F32 returns the vector as an f32.Vec2.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.x, v.y}
}

// Magnitude calculates the magnitude (length) of a vector. Components are
// widened to float64 first so only lengths beyond float32 range overflow.
func (v Vec2) Magnitude() float32 {
	return float32(math.Hypot(float64(v.x), float64(v.y)))
}

// Normalized returns v scaled to unit length. The zero vector normalizes to
// itself; a vector with an infinite component normalizes to NaN components.
func (v Vec2) Normalized() Vec2 {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vec2{}
	}
	norm := 1 / magnitude
	return Vec2{v.x * norm, v.y * norm}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.x + other.x, v.y + other.y}
}

func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.x - other.x, v.y - other.y}
}

func (v Vec2) Scale(factor float32) Vec2 {
	return Vec2{v.x * factor, v.y * factor}
}

// Dot calculates the dot product of two vectors
func (v Vec2) Dot(other Vec2) float32 {
	return v.x*other.x + v.y*other.y
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vec2) AngleTo(other Vec2) float32 {
	magV := float64(v.Magnitude())
	magOther := float64(other.Magnitude())

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	dot := float64(v.x)*float64(other.x) + float64(v.y)*float64(other.y)
	cosTheta := dot / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return float32(math.Acos(cosTheta))
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vec2) Reflect(normal Vec2) Vec2 {
	return v.Subtract(normal.Scale(2 * v.Dot(normal)))
}

// ApproxEqual reports whether both components differ by at most epsilon.
func (v Vec2) ApproxEqual(other Vec2, epsilon float32) bool {
	return approxEqual(v.x, other.x, epsilon) && approxEqual(v.y, other.y, epsilon)
}

// String formats the vector as "(x, y)".
func (v Vec2) String() string {
	return "(" + formatScalar(v.x) + ", " + formatScalar(v.y) + ")"
}

func isNaN(f float32) bool {
	return math.IsNaN(float64(f))
}

func approxEqual(a, b, epsilon float32) bool {
	if a == b {
		return true
	}
	return math.Abs(float64(a)-float64(b)) <= float64(epsilon)
}

func formatScalar(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
