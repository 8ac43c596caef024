package geometry

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

const testEpsilon = 1e-6

var nan32 = float32(math.NaN())
var inf32 = float32(math.Inf(1))

func mustVec2(t *testing.T, x, y float32) Vec2 {
	t.Helper()
	v, err := NewVec2(x, y)
	if err != nil {
		t.Fatalf("NewVec2(%v, %v): unexpected error: %v", x, y, err)
	}
	return v
}

func TestZeroVec2(t *testing.T) {
	v := ZeroVec2()
	if v.X() != 0 || v.Y() != 0 {
		t.Fatalf("expected (0, 0), got %v", v)
	}
	if v.Magnitude() != 0 {
		t.Fatalf("expected zero magnitude, got %v", v.Magnitude())
	}
	if v != (Vec2{}) {
		t.Fatalf("expected zero value to equal ZeroVec2")
	}
}

func TestNewVec2KeepsComponents(t *testing.T) {
	cases := [][2]float32{
		{0, 0},
		{1, 2},
		{-3.5, 7.25},
		{math.MaxFloat32, -math.MaxFloat32},
		{math.SmallestNonzeroFloat32, 1e-20},
		{inf32, -inf32},
	}
	for _, c := range cases {
		v := mustVec2(t, c[0], c[1])
		if v.X() != c[0] || v.Y() != c[1] {
			t.Fatalf("expected (%v, %v), got (%v, %v)", c[0], c[1], v.X(), v.Y())
		}
	}
}

func TestNewVec2RejectsNaN(t *testing.T) {
	cases := [][2]float32{
		{nan32, 0},
		{0, nan32},
		{nan32, nan32},
		{inf32, nan32},
	}
	for _, c := range cases {
		if _, err := NewVec2(c[0], c[1]); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("NewVec2(%v, %v): expected ErrInvalidValue, got %v", c[0], c[1], err)
		}
	}
}

func TestVec2Magnitude(t *testing.T) {
	if got := mustVec2(t, 3, 4).Magnitude(); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := mustVec2(t, -3, -4).Magnitude(); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := mustVec2(t, inf32, 1).Magnitude(); !math.IsInf(float64(got), 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

func TestVec2MagnitudeLarge(t *testing.T) {
	v := mustVec2(t, 3e19, 4e19)

	got := v.Magnitude()
	if math.IsInf(float64(got), 0) || math.Abs(float64(got)/5e19-1) > testEpsilon {
		t.Fatalf("expected 5e+19, got %v", got)
	}

	n := v.Normalized()
	if !n.ApproxEqual(mustVec2(t, 0.6, 0.8), testEpsilon) {
		t.Fatalf("expected (0.6, 0.8), got %v", n)
	}
}

func TestVec2AngleToLarge(t *testing.T) {
	got := mustVec2(t, 3e30, 0).AngleTo(mustVec2(t, 0, 4e30))
	if math.Abs(float64(got)-math.Pi/2) > testEpsilon {
		t.Fatalf("expected pi/2, got %v", got)
	}
}

func TestVec2Normalized(t *testing.T) {
	n := mustVec2(t, 3, 4).Normalized()
	if !n.ApproxEqual(mustVec2(t, 0.6, 0.8), testEpsilon) {
		t.Fatalf("expected (0.6, 0.8), got %v", n)
	}
	if m := n.Magnitude(); math.Abs(float64(m)-1) > testEpsilon {
		t.Fatalf("expected unit magnitude, got %v", m)
	}

	n = mustVec2(t, 0, -10).Normalized()
	if n != mustVec2(t, 0, -1) {
		t.Fatalf("expected (0, -1), got %v", n)
	}
}

func TestVec2NormalizedZeroVector(t *testing.T) {
	if n := ZeroVec2().Normalized(); n != ZeroVec2() {
		t.Fatalf("expected zero vector to normalize to itself, got %v", n)
	}
}

func TestVec2NormalizedInfinite(t *testing.T) {
	n := mustVec2(t, inf32, 0).Normalized()
	if !isNaN(n.X()) {
		t.Fatalf("expected NaN x component, got %v", n.X())
	}
	if n.Y() != 0 {
		t.Fatalf("expected zero y component, got %v", n.Y())
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := mustVec2(t, 1, 2)
	b := mustVec2(t, 3, -5)

	if got := a.Add(b); got != mustVec2(t, 4, -3) {
		t.Fatalf("expected (4, -3), got %v", got)
	}
	if got := a.Subtract(b); got != mustVec2(t, -2, 7) {
		t.Fatalf("expected (-2, 7), got %v", got)
	}
	if got := a.Scale(-2); got != mustVec2(t, -2, -4) {
		t.Fatalf("expected (-2, -4), got %v", got)
	}
	if got := a.Dot(b); got != -7 {
		t.Fatalf("expected -7, got %v", got)
	}
	// operands are left untouched
	if a != mustVec2(t, 1, 2) || b != mustVec2(t, 3, -5) {
		t.Fatalf("operands changed: a=%v b=%v", a, b)
	}
}

func TestVec2AddOverflow(t *testing.T) {
	v := mustVec2(t, math.MaxFloat32, 0)
	if got := v.Add(v).X(); !math.IsInf(float64(got), 1) {
		t.Fatalf("expected +Inf, got %v", got)
	}
}

func TestVec2AddSubtractRoundTrip(t *testing.T) {
	vectors := [][2]float32{
		{0, 0},
		{1, 1},
		{-2.5, 3.75},
		{0.1, 0.2},
		{1234.5678, -8765.4321},
	}
	for _, av := range vectors {
		for _, bv := range vectors {
			a := mustVec2(t, av[0], av[1])
			b := mustVec2(t, bv[0], bv[1])
			if got := a.Add(b).Subtract(b); !got.ApproxEqual(a, 1e-2) {
				t.Fatalf("expected %v + %v - %v to equal %v, got %v", a, b, b, a, got)
			}
		}
	}
}

func TestVec2DotCommutative(t *testing.T) {
	vectors := [][2]float32{
		{0, 0},
		{1, -1},
		{0.3, 0.7},
		{-100.25, 42},
	}
	for _, av := range vectors {
		for _, bv := range vectors {
			a := mustVec2(t, av[0], av[1])
			b := mustVec2(t, bv[0], bv[1])
			if a.Dot(b) != b.Dot(a) {
				t.Fatalf("expected %v·%v == %v·%v, got %v and %v", a, b, b, a, a.Dot(b), b.Dot(a))
			}
		}
	}
}

func TestVec2AngleTo(t *testing.T) {
	got := mustVec2(t, 1, 0).AngleTo(mustVec2(t, 0, 3))
	if math.Abs(float64(got)-math.Pi/2) > testEpsilon {
		t.Fatalf("expected pi/2, got %v", got)
	}
	got = mustVec2(t, 1, 0).AngleTo(mustVec2(t, 5, 0))
	if got != 0 {
		t.Fatalf("expected 0 for parallel vectors, got %v", got)
	}
	got = mustVec2(t, 1, 0).AngleTo(mustVec2(t, -1, 0))
	if math.Abs(float64(got)-math.Pi) > testEpsilon {
		t.Fatalf("expected pi, got %v", got)
	}
	if got := ZeroVec2().AngleTo(mustVec2(t, 1, 0)); got != 0 {
		t.Fatalf("expected 0 for zero vector, got %v", got)
	}
}

func TestVec2Reflect(t *testing.T) {
	got := mustVec2(t, 1, -1).Reflect(mustVec2(t, 0, 1))
	if got != mustVec2(t, 1, 1) {
		t.Fatalf("expected (1, 1), got %v", got)
	}
}

func TestVec2String(t *testing.T) {
	cases := []struct {
		x, y float32
		want string
	}{
		{0, 0, "(0, 0)"},
		{1, 2, "(1, 2)"},
		{0.5, -1.25, "(0.5, -1.25)"},
		{0.1, 3e10, "(0.1, 3e+10)"},
		{inf32, -inf32, "(+Inf, -Inf)"},
	}
	for _, c := range cases {
		if got := mustVec2(t, c.x, c.y).String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestVec2F32(t *testing.T) {
	v := mustVec2(t, 1.5, -2)
	if got := v.F32(); got != (f32.Vec2{1.5, -2}) {
		t.Fatalf("expected [1.5 -2], got %v", got)
	}
	back, err := Vec2FromF32(v.F32())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != v {
		t.Fatalf("expected %v, got %v", v, back)
	}
	if _, err := Vec2FromF32(f32.Vec2{0, nan32}); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}
