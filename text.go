package collage

import "strings"

// TextLine styles lines on text: an underline, an overline, or a strike
// through the text.
type TextLine int

const (
	// LineNone draws no decoration line.
	LineNone TextLine = iota
	// LineUnder underlines the text.
	LineUnder
	// LineOver draws a line above the text.
	LineOver
	// LineThrough strikes the text out.
	LineThrough
)

// TextPosition places rendered text relative to its center point.
type TextPosition int

const (
	// TextCenter centers the text run on the form's position.
	TextCenter TextPosition = iota
	// TextToLeft ends the text run at the form's position.
	TextToLeft
	// TextToRight starts the text run at the form's position.
	TextToRight
)

// TextStyle represents all the ways you can style Text. If the typeface is
// empty or the height is zero, rendering falls back on default settings.
type TextStyle struct {
	// Typeface is an opaque font asset path; empty means the default face.
	Typeface string
	// Height is the pixel height of the text; zero means the default of 16.
	Height float64
	Color  Color
	Bold   bool
	Italic bool
	Line   TextLine
	// Monospace switches to a fixed-width face. Good for code snippets.
	Monospace bool
}

// DefaultTextStyle returns the default style: black text at the default
// height with no decorations.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: Black}
}

// DefaultTextHeight is the pixel height used when a style does not set one.
const DefaultTextHeight = 16.0

// TextUnit is a run of characters sharing one style.
type TextUnit struct {
	String string
	Style  TextStyle
}

// Text is drawable text: an ordered sequence of styled runs plus a
// position hint. Style builders apply to every run; Restyle collapses the
// runs into one.
type Text struct {
	units []TextUnit
	pos   TextPosition
}

// NewText converts a string into text which can be styled and displayed.
func NewText(s string) Text {
	return Text{units: []TextUnit{{String: s, Style: DefaultTextStyle()}}}
}

// EmptyText is text with nothing in it.
func EmptyText() Text {
	return NewText("")
}

// Units returns a copy of the styled runs making up the text.
func (t Text) Units() []TextUnit {
	units := make([]TextUnit, len(t.units))
	copy(units, t.units)
	return units
}

// Position returns the text's position hint.
func (t Text) Position() TextPosition {
	return t.pos
}

// String returns the concatenated contents of all runs.
func (t Text) String() string {
	var b strings.Builder
	for _, u := range t.units {
		b.WriteString(u.String)
	}
	return b.String()
}

// Append puts two chunks of text together, keeping each run's style.
func (t Text) Append(other Text) Text {
	units := make([]TextUnit, 0, len(t.units)+len(other.units))
	units = append(units, t.units...)
	units = append(units, other.units...)
	return Text{units: units, pos: t.pos}
}

// Concat puts many chunks of text together, keeping each run's style.
func Concat(texts ...Text) Text {
	var pos TextPosition
	if len(texts) > 0 {
		pos = texts[0].pos
	}
	var units []TextUnit
	for _, t := range texts {
		units = append(units, t.units...)
	}
	return Text{units: units, pos: pos}
}

// Join puts many chunks of text together with a separator.
func Join(separator Text, texts ...Text) Text {
	if len(texts) == 0 {
		return EmptyText()
	}
	result := texts[0]
	for _, t := range texts[1:] {
		result = result.Append(separator).Append(t)
	}
	return result
}

// Restyle sets the style of some text wholesale. The individual run styles
// are discarded: the runs are concatenated into a single run carrying the
// new style. For example, if you design a style called footerStyle
// specifically for the bottom of your page, you could apply it like this:
//
//	NewText("the old prince / 2007").Restyle(footerStyle)
func (t Text) Restyle(style TextStyle) Text {
	t.units = []TextUnit{{String: t.String(), Style: style}}
	return t
}

// Typeface provides an asset path of a typeface to be used for the text.
func (t Text) Typeface(path string) Text {
	return t.eachUnit(func(s *TextStyle) { s.Typeface = path })
}

// Monospace switches to a monospace typeface. Good for code snippets.
//
//	NewText("fold(+, 0, ns)").Monospace()
func (t Text) Monospace() Text {
	return t.eachUnit(func(s *TextStyle) { s.Monospace = true })
}

// Height sets the height of the text in pixels.
func (t Text) Height(h float64) Text {
	return t.eachUnit(func(s *TextStyle) { s.Height = h })
}

// Color sets the color of the text.
func (t Text) Color(c Color) Text {
	return t.eachUnit(func(s *TextStyle) { s.Color = c })
}

// Bold makes the text bold.
func (t Text) Bold() Text {
	return t.eachUnit(func(s *TextStyle) { s.Bold = true })
}

// Italic makes the text italic.
func (t Text) Italic() Text {
	return t.eachUnit(func(s *TextStyle) { s.Italic = true })
}

// Line puts a decoration line on the text.
func (t Text) Line(line TextLine) Text {
	return t.eachUnit(func(s *TextStyle) { s.Line = line })
}

// WithPosition changes the text position relative to its center point.
func (t Text) WithPosition(pos TextPosition) Text {
	t.pos = pos
	return t
}

// eachUnit applies fn to a copy of every run's style (broadcast
// semantics).
func (t Text) eachUnit(fn func(*TextStyle)) Text {
	units := make([]TextUnit, len(t.units))
	copy(units, t.units)
	for i := range units {
		fn(&units[i].Style)
	}
	t.units = units
	return t
}
