package collage

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func matrixNear(a, b Matrix) bool {
	return math.Abs(a.A-b.A) < epsilon && math.Abs(a.B-b.B) < epsilon &&
		math.Abs(a.C-b.C) < epsilon && math.Abs(a.D-b.D) < epsilon &&
		math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translation(10, -5), Pt(1, 2), Pt(11, -3)},
		{"uniform scale", Scale(2), Pt(3, 4), Pt(6, 8)},
		{"scale x only", ScaleX(3), Pt(2, 5), Pt(6, 5)},
		{"flip y", ScaleY(-1), Pt(2, 5), Pt(2, -5)},
		{"rotate quarter turn", Rotation(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate half turn", Rotation(math.Pi), Pt(1, 0), Pt(-1, 0)},
		{"rotate eighth turn", Rotation(math.Pi / 4), Pt(1, 0), Pt(math.Sqrt2 / 2, math.Sqrt2 / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !pointNear(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMultiplyAppliesRightOperandFirst(t *testing.T) {
	// Shift then rotate about the shifted origin: the unit x vector ends up
	// at (10 + cos 45, sin 45).
	m := Translation(10, 0).Multiply(Rotation(math.Pi / 4))
	got := m.TransformPoint(Pt(1, 0))
	want := Pt(10+math.Sqrt2/2, math.Sqrt2/2)
	if !pointNear(got, want) {
		t.Errorf("TransformPoint(1, 0) = %v, want %v", got, want)
	}

	// The reverse order rotates the translation as well.
	rev := Rotation(math.Pi / 4).Multiply(Translation(10, 0))
	got = rev.TransformPoint(Pt(1, 0))
	want = Rotation(math.Pi / 4).TransformPoint(Pt(11, 0))
	if !pointNear(got, want) {
		t.Errorf("reverse order TransformPoint(1, 0) = %v, want %v", got, want)
	}
}

func TestMultiplyIdentityLaws(t *testing.T) {
	ms := []Matrix{
		Identity(),
		Translation(3, -7),
		Rotation(1.2),
		Scale(0.5),
		NewMatrix(1, 2, 3, 4, 5, 6),
	}
	for _, m := range ms {
		if got := m.Multiply(Identity()); !matrixNear(got, m) {
			t.Errorf("m.Multiply(Identity()) = %+v, want %+v", got, m)
		}
		if got := Identity().Multiply(m); !matrixNear(got, m) {
			t.Errorf("Identity().Multiply(m) = %+v, want %+v", got, m)
		}
	}
}

func TestMultiplyAssociative(t *testing.T) {
	a := Translation(2, 3)
	b := Rotation(0.7)
	c := Scale(1.5)
	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !matrixNear(left, right) {
		t.Errorf("(ab)c = %+v, a(bc) = %+v", left, right)
	}
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"translation", Translation(1, 0), false},
		{"rotation", Rotation(0.1), false},
		{"full turn", Rotation(0), true},
		{"scale", Scale(2), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"uniform scale", Scale(2), 2},
		{"rotation", Rotation(math.Pi / 3), 1},
		{"flip", ScaleY(-1), 1},
		{"non-uniform", ScaleX(8).Multiply(ScaleY(2)), 4},
		{"rotated scale", Rotation(0.4).Multiply(Scale(3)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.ScaleFactor(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}
