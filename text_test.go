package collage

import "testing"

func TestNewText(t *testing.T) {
	tx := NewText("hello")
	if got := tx.String(); got != "hello" {
		t.Errorf("String() = %q, want %q", got, "hello")
	}
	units := tx.Units()
	if len(units) != 1 {
		t.Fatalf("Units() has %d entries, want 1", len(units))
	}
	if units[0].Style != DefaultTextStyle() {
		t.Errorf("unit style = %#v, want default", units[0].Style)
	}
	if got := EmptyText().String(); got != "" {
		t.Errorf("EmptyText().String() = %q", got)
	}
}

func TestBroadcastStyling(t *testing.T) {
	tx := NewText("ab").Append(NewText("cd")).Color(Red).Bold()
	units := tx.Units()
	if len(units) != 2 {
		t.Fatalf("Units() has %d entries, want 2", len(units))
	}
	for i, u := range units {
		if u.Style.Color != Red {
			t.Errorf("unit %d color = %v, want red", i, u.Style.Color)
		}
		if !u.Style.Bold {
			t.Errorf("unit %d is not bold", i)
		}
	}
	if got := tx.String(); got != "abcd" {
		t.Errorf("String() = %q, want %q", got, "abcd")
	}
}

func TestStylingDoesNotMutate(t *testing.T) {
	plain := NewText("x")
	_ = plain.Bold().Italic().Height(40).Monospace().Typeface("serif.ttf").Line(LineUnder)
	u := plain.Units()[0]
	if u.Style != DefaultTextStyle() {
		t.Errorf("styling mutated the original: %#v", u.Style)
	}
}

func TestAppendKeepsUnitStyles(t *testing.T) {
	red := NewText("r").Color(Red)
	blue := NewText("b").Color(Blue)
	both := red.Append(blue)
	units := both.Units()
	if len(units) != 2 {
		t.Fatalf("Units() has %d entries, want 2", len(units))
	}
	if units[0].Style.Color != Red || units[1].Style.Color != Blue {
		t.Errorf("unit colors = %v, %v", units[0].Style.Color, units[1].Style.Color)
	}
}

func TestConcatAndJoin(t *testing.T) {
	parts := []Text{NewText("a"), NewText("b"), NewText("c")}
	if got := Concat(parts...).String(); got != "abc" {
		t.Errorf("Concat = %q, want %q", got, "abc")
	}
	if got := Join(NewText(", "), parts...).String(); got != "a, b, c" {
		t.Errorf("Join = %q, want %q", got, "a, b, c")
	}
	if got := Join(NewText("-")).String(); got != "" {
		t.Errorf("Join of nothing = %q, want empty", got)
	}
	if got := Join(NewText("-"), NewText("solo")).String(); got != "solo" {
		t.Errorf("Join of one = %q, want %q", got, "solo")
	}
}

func TestRestyleCollapses(t *testing.T) {
	tx := NewText("a").Color(Red).Append(NewText("b").Color(Blue))
	mono := DefaultTextStyle()
	mono.Monospace = true
	restyled := tx.Restyle(mono)
	units := restyled.Units()
	if len(units) != 1 {
		t.Fatalf("Restyle left %d units, want 1", len(units))
	}
	if units[0].String != "ab" {
		t.Errorf("collapsed text = %q, want %q", units[0].String, "ab")
	}
	if !units[0].Style.Monospace {
		t.Errorf("collapsed style = %#v, want monospace", units[0].Style)
	}
}

func TestHeightBroadcast(t *testing.T) {
	tx := NewText("a").Append(NewText("b")).Height(32)
	for i, u := range tx.Units() {
		if u.Style.Height != 32 {
			t.Errorf("unit %d height = %v, want 32", i, u.Style.Height)
		}
	}
}

func TestUnitsReturnsCopy(t *testing.T) {
	tx := NewText("a")
	units := tx.Units()
	units[0].String = "mutated"
	if tx.String() != "a" {
		t.Errorf("Units() exposed internal state: %q", tx.String())
	}
}

func TestTextPosition(t *testing.T) {
	tx := NewText("a")
	if tx.Position() != TextCenter {
		t.Errorf("default position = %v, want TextCenter", tx.Position())
	}
	if got := tx.WithPosition(TextToLeft).Position(); got != TextToLeft {
		t.Errorf("WithPosition(TextToLeft).Position() = %v", got)
	}
}
