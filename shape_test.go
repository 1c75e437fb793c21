package collage

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	got := Rect(10, 4).Points
	want := []Point{{-5, -2}, {-5, 2}, {5, 2}, {5, -2}}
	if len(got) != len(want) {
		t.Fatalf("Rect(10, 4) has %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rect(10, 4).Points[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSquare(t *testing.T) {
	sq := Square(6).Points
	rc := Rect(6, 6).Points
	for i := range rc {
		if sq[i] != rc[i] {
			t.Errorf("Square(6).Points[%d] = %v, want %v", i, sq[i], rc[i])
		}
	}
}

func TestOval(t *testing.T) {
	o := Oval(20, 10)
	if len(o.Points) != 49 {
		t.Fatalf("Oval has %d points, want 49", len(o.Points))
	}
	if !pointNear(o.Points[0], Pt(10, 0)) {
		t.Errorf("Oval first point = %v, want (10, 0)", o.Points[0])
	}
	// Every vertex lies on the ellipse.
	for i, p := range o.Points {
		d := (p.X*p.X)/100 + (p.Y*p.Y)/25
		if math.Abs(d-1) > epsilon {
			t.Errorf("Oval point %d = %v is off the ellipse (%v)", i, p, d)
		}
	}
}

func TestCircleIsRoundOval(t *testing.T) {
	c := Circle(7).Points
	o := Oval(14, 14).Points
	if len(c) != len(o) {
		t.Fatalf("Circle has %d points, Oval has %d", len(c), len(o))
	}
	for i := range c {
		if c[i] != o[i] {
			t.Errorf("Circle(7).Points[%d] = %v, want %v", i, c[i], o[i])
		}
	}
	for i, p := range c {
		if math.Abs(p.Length()-7) > epsilon {
			t.Errorf("Circle point %d has radius %v, want 7", i, p.Length())
		}
	}
}

func TestNgon(t *testing.T) {
	tests := []struct {
		n int
		r float64
	}{
		{3, 10},
		{5, 30},
		{8, 1},
	}
	for _, tt := range tests {
		s := Ngon(tt.n, tt.r)
		if len(s.Points) != tt.n {
			t.Errorf("Ngon(%d, %v) has %d points", tt.n, tt.r, len(s.Points))
			continue
		}
		for i, p := range s.Points {
			if math.Abs(p.Length()-tt.r) > epsilon {
				t.Errorf("Ngon(%d, %v) point %d has radius %v", tt.n, tt.r, i, p.Length())
			}
		}
	}
}

func TestPolygon(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}, {1, 1}}
	s := Polygon(pts...)
	if len(s.Points) != 3 {
		t.Fatalf("Polygon kept %d points, want 3", len(s.Points))
	}
	for i := range pts {
		if s.Points[i] != pts[i] {
			t.Errorf("Polygon.Points[%d] = %v, want %v", i, s.Points[i], pts[i])
		}
	}
}

func TestShapeStyling(t *testing.T) {
	s := Circle(10)

	if f, ok := s.Filled(Blue).Basic().(ShapeForm); !ok {
		t.Error("Filled did not produce a ShapeForm")
	} else if fill, ok := f.Fill.(SolidFill); !ok || fill.Color != Blue {
		t.Errorf("Filled fill = %#v, want solid blue", f.Fill)
	}

	if f, ok := s.Textured("wood.png").Basic().(ShapeForm); !ok {
		t.Error("Textured did not produce a ShapeForm")
	} else if fill, ok := f.Fill.(TextureFill); !ok || fill.Path != "wood.png" {
		t.Errorf("Textured fill = %#v", f.Fill)
	}

	g := Linear(Pt(0, 0), Pt(0, 10), Stop{0, White}, Stop{1, Black})
	if f, ok := s.Gradient(g).Basic().(ShapeForm); !ok {
		t.Error("Gradient did not produce a ShapeForm")
	} else if _, ok := f.Fill.(GradientFill); !ok {
		t.Errorf("Gradient fill = %#v", f.Fill)
	}

	style := Solid(Red)
	if f, ok := s.Outlined(style).Basic().(ShapeForm); !ok {
		t.Error("Outlined did not produce a ShapeForm")
	} else {
		if f.Line == nil || f.Line.Color != Red {
			t.Errorf("Outlined line = %#v, want red", f.Line)
		}
		if f.Fill != nil {
			t.Errorf("Outlined fill = %#v, want nil", f.Fill)
		}
	}
}
