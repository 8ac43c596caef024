package geometry

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"
)

const mat3Size = 9

// Mat3 is an immutable 3x3 float32 matrix stored in row major order. No
// element is NaN when built through one of the constructors.
//
// The zero value is the zero matrix, not the identity; use Identity for that.
type Mat3 struct {
	m f32.Mat3
}

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{m: f32.Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewMat3 builds a matrix from nine scalars given in row major order.
func NewMat3(
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 float32,
) (Mat3, error) {
	return Mat3FromF32(f32.Mat3{
		a00, a01, a02,
		a10, a11, a12,
		a20, a21, a22,
	})
}

// NewMat3FromSlice builds a matrix from a 9 element row major slice.
func NewMat3FromSlice(s []float32) (Mat3, error) {
	if s == nil {
		return Mat3{}, fmt.Errorf("%w: mat3 slice is nil", ErrInvalidArgument)
	}
	if len(s) != mat3Size {
		return Mat3{}, fmt.Errorf("%w: mat3 slice has %d elements, want %d", ErrInvalidArgument, len(s), mat3Size)
	}
	var m f32.Mat3
	copy(m[:], s)
	return Mat3FromF32(m)
}

// Mat3FromF32 converts an f32.Mat3 into a validated Mat3.
func Mat3FromF32(m f32.Mat3) (Mat3, error) {
	for i, v := range m {
		if isNaN(v) {
			return Mat3{}, fmt.Errorf("%w: mat3 element (%d, %d) is NaN", ErrInvalidValue, i/3, i%3)
		}
	}
	return Mat3{m: m}, nil
}

// F32 returns a copy of the matrix elements.
func (m Mat3) F32() f32.Mat3 {
	return m.m
}

// Get returns the element at row, col.
func (m Mat3) Get(row, col int) (float32, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, fmt.Errorf("%w: mat3 index (%d, %d)", ErrIndexOutOfRange, row, col)
	}
	return m.m[3*row+col], nil
}

// Multiply returns the matrix product m × other.
func (m Mat3) Multiply(other Mat3) Mat3 {
	a, b := &m.m, &other.m
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = a[3*r+0]*b[0*3+c] + a[3*r+1]*b[1*3+c] + a[3*r+2]*b[2*3+c]
		}
	}
	return Mat3{m: out}
}

// Scale multiplies every element by factor.
func (m Mat3) Scale(factor float32) Mat3 {
	out := m.m
	for i := range out {
		out[i] *= factor
	}
	return Mat3{m: out}
}

// Transpose returns m with rows and columns swapped.
func (m Mat3) Transpose() Mat3 {
	a := m.m
	return Mat3{m: f32.Mat3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}}
}

// ApproxEqual reports whether every element differs by at most epsilon.
func (m Mat3) ApproxEqual(other Mat3, epsilon float32) bool {
	for i := range m.m {
		if !approxEqual(m.m[i], other.m[i], epsilon) {
			return false
		}
	}
	return true
}

// String formats the matrix row by row, e.g. "[[1, 0, 0], [0, 1, 0], [0, 0, 1]]".
func (m Mat3) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatScalar(m.m[3*r+c]))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
