package collage_test

import (
	"testing"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/recording"
	"github.com/gogpu/collage/textmetrics"
)

func TestTextRendersAsContours(t *testing.T) {
	m, err := textmetrics.New()
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder()
	r := collage.NewRenderer(rec, collage.WithTextMeasurer(m))

	text := collage.NewText("go").Height(24).Color(collage.DarkBlue)
	if err := r.DrawForms(200, 100, collage.TextOf(text)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	if got := rec.Count(recording.CmdFillContours); got != 1 {
		t.Fatalf("recorded %d contour fills, want 1 per unit:\n%s", got, rec)
	}
	for _, cmd := range rec.Commands() {
		if fc, ok := cmd.(recording.FillContoursCommand); ok {
			if len(fc.Contours) < 3 {
				t.Errorf("go has %d contours, want at least 3", len(fc.Contours))
			}
			if fc.Color != collage.DarkBlue {
				t.Errorf("contour color = %v, want dark blue", fc.Color)
			}
		}
	}
}

func TestTextRunCentering(t *testing.T) {
	m, err := textmetrics.New()
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder()
	r := collage.NewRenderer(rec, collage.WithTextMeasurer(m))

	text := collage.NewText("mm").Height(20)
	if err := r.DrawForms(100, 100, collage.TextOf(text)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	// The run is centered: its transformed origin sits half the measured
	// width left of the viewport center.
	width := m.Width(20, "mm")
	ms := transformsBefore(rec.Commands(), recording.CmdFillContours)
	if len(ms) != 1 {
		t.Fatalf("recorded %d contour fills, want 1", len(ms))
	}
	origin := ms[0].TransformPoint(collage.Pt(0, 0))
	wantX := 50 - width/2
	if diff := origin.X - wantX; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("run origin x = %v, want %v", origin.X, wantX)
	}
}

func TestTextPositionHints(t *testing.T) {
	m, err := textmetrics.New()
	if err != nil {
		t.Fatal(err)
	}
	width := m.Width(20, "mm")

	originX := func(pos collage.TextPosition) float64 {
		rec := recording.NewRecorder()
		r := collage.NewRenderer(rec, collage.WithTextMeasurer(m))
		text := collage.NewText("mm").Height(20).WithPosition(pos)
		if err := r.DrawForms(100, 100, collage.TextOf(text)); err != nil {
			t.Fatalf("DrawForms() error = %v", err)
		}
		ms := transformsBefore(rec.Commands(), recording.CmdFillContours)
		if len(ms) != 1 {
			t.Fatalf("recorded %d contour fills, want 1", len(ms))
		}
		return ms[0].TransformPoint(collage.Pt(0, 0)).X
	}

	tests := []struct {
		name string
		pos  collage.TextPosition
		want float64
	}{
		{"center", collage.TextCenter, 50 - width/2},
		{"to left", collage.TextToLeft, 50 - width},
		{"to right", collage.TextToRight, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := originX(tt.pos)
			if diff := got - tt.want; diff > epsilon || diff < -epsilon {
				t.Errorf("run origin x = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextDecorationLine(t *testing.T) {
	m, err := textmetrics.New()
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder()
	r := collage.NewRenderer(rec, collage.WithTextMeasurer(m))

	text := collage.NewText("hi").Height(20).Line(collage.LineUnder)
	if err := r.DrawForms(100, 100, collage.TextOf(text)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	if rec.Count(recording.CmdFillContours) != 1 {
		t.Fatalf("glyphs not drawn:\n%s", rec)
	}
	if got := rec.Count(recording.CmdStrokeSegment); got != 1 {
		t.Fatalf("recorded %d decoration segments, want 1:\n%s", got, rec)
	}
	width := m.Width(20, "hi")
	for _, cmd := range rec.Commands() {
		if seg, ok := cmd.(recording.StrokeSegmentCommand); ok {
			if seg.A.Y >= 0 {
				t.Errorf("underline at y = %v, want below the baseline", seg.A.Y)
			}
			if diff := seg.B.X - width; diff > epsilon || diff < -epsilon {
				t.Errorf("underline spans to x = %v, want the run width %v", seg.B.X, width)
			}
		}
	}
}

func TestOutlinedTextStrokesContours(t *testing.T) {
	m, err := textmetrics.New()
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder()
	r := collage.NewRenderer(rec, collage.WithTextMeasurer(m))

	form := collage.OutlinedTextOf(collage.Solid(collage.Black), collage.NewText("i").Height(24))
	if err := r.DrawForms(100, 100, form); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	if rec.Count(recording.CmdFillContours) != 0 {
		t.Error("outlined text was filled")
	}
	if rec.Count(recording.CmdStrokeSegment) == 0 {
		t.Error("outlined text produced no stroke segments")
	}
}
