package collage

import "math"

// Color is a color in either the RGB or the HSL representation, with an
// alpha component for transparency. The zero value is opaque black.
//
// Colors are plain immutable values: the representation chosen at
// construction is kept, and conversions happen on demand via ToRGBA and
// ToHSLA.
type Color struct {
	hsl     bool
	r, g, b uint8
	h, s, l float64
	a       float64
}

// RGBA creates an RGB color with an alpha component for transparency.
// The alpha component is specified with numbers between 0 and 1.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{r: r, g: g, b: b, a: a}
}

// RGB creates an opaque color from components between 0 and 255 inclusive.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1)
}

// HSLA creates an HSL color with an alpha component for transparency.
// The hue is given in radians and is normalized into [0, 2π).
func HSLA(hue, saturation, lightness, alpha float64) Color {
	hue -= Turns(math.Floor(hue / (2 * math.Pi)))
	return Color{hsl: true, h: hue, s: saturation, l: lightness, a: alpha}
}

// HSL creates an opaque HSL color. This gives you access to colors more
// like a color wheel, where all hues are arranged in a circle that you
// specify with radians.
//
//	red   = HSL(Degrees(0), 1, 0.5)
//	green = HSL(Degrees(120), 1, 0.5)
//	blue  = HSL(Degrees(240), 1, 0.5)
//
// To cycle through all colors, just cycle through degrees. The saturation
// level is how vibrant the color is, like a dial between grey and bright
// colors. The lightness level is a dial between white and black.
func HSL(hue, saturation, lightness float64) Color {
	return HSLA(hue, saturation, lightness, 1)
}

// Grayscale produces a gray based on the input. 0 is white, 1 is black.
func Grayscale(p float64) Color {
	return Color{hsl: true, h: 0, s: 0, l: 1 - p, a: 1}
}

// Greyscale produces a gray based on the input. 0 is white, 1 is black.
func Greyscale(p float64) Color {
	return Grayscale(p)
}

// Complement produces a complementary color. The two colors will accent
// each other. This is the same as rotating the hue by 180 degrees.
func (c Color) Complement() Color {
	h, s, l, a := c.ToHSLA()
	return HSLA(h+Degrees(180), s, l, a)
}

// ToHSLA extracts the components of the color in the HSL format.
// The hue is in [0, 2π), the remaining components in [0, 1].
func (c Color) ToHSLA() (hue, saturation, lightness, alpha float64) {
	if c.hsl {
		return c.h, c.s, c.l, c.a
	}
	h, s, l := RGBToHSL(c.r, c.g, c.b)
	return h, s, l, c.a
}

// ToRGBA extracts the components of the color in the RGB format, with
// channels in bytes and alpha in [0, 1].
func (c Color) ToRGBA() (r, g, b uint8, alpha float64) {
	if !c.hsl {
		return c.r, c.g, c.b, c.a
	}
	fr, fg, fb := HSLToRGB(c.h, c.s, c.l)
	return uint8(math.Round(255 * fr)),
		uint8(math.Round(255 * fg)),
		uint8(math.Round(255 * fb)),
		c.a
}

// Alpha returns the alpha component of the color.
func (c Color) Alpha() float64 {
	return c.a
}

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.a = a
	return c
}

// RGBToHSL converts byte RGB channels to hue (radians), saturation and
// lightness.
func RGBToHSL(red, green, blue uint8) (hue, saturation, lightness float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255
	cMax := math.Max(math.Max(r, g), b)
	cMin := math.Min(math.Min(r, g), b)
	chroma := cMax - cMin

	switch {
	case chroma == 0:
		hue = 0
	case cMax == r:
		hue = Degrees(60) * FloatMod((g-b)/chroma, 6)
	case cMax == g:
		hue = Degrees(60) * ((b-r)/chroma + 2)
	default:
		hue = Degrees(60) * ((r-g)/chroma + 4)
	}

	lightness = (cMax + cMin) / 2
	if chroma != 0 && lightness != 0 {
		saturation = chroma / (1 - math.Abs(2*lightness-1))
	}
	return hue, saturation, lightness
}

// HSLToRGB converts hue (radians), saturation and lightness to RGB
// channels in [0, 1]. It is the numeric inverse of RGBToHSL up to floating
// point rounding.
func HSLToRGB(hue, saturation, lightness float64) (r, g, b float64) {
	chroma := (1 - math.Abs(2*lightness-1)) * saturation
	hue /= Degrees(60)
	x := chroma * (1 - math.Abs(FloatMod(hue, 2)-1))

	switch {
	case hue < 0:
		r, g, b = 0, 0, 0
	case hue < 1:
		r, g, b = chroma, x, 0
	case hue < 2:
		r, g, b = x, chroma, 0
	case hue < 3:
		r, g, b = 0, chroma, x
	case hue < 4:
		r, g, b = 0, x, chroma
	case hue < 5:
		r, g, b = x, 0, chroma
	case hue < 6:
		r, g, b = chroma, 0, x
	default:
		r, g, b = 0, 0, 0
	}

	m := lightness - chroma/2
	return r + m, g + m, b + m
}

// Built-in colors.
//
// These colors come from the Tango palette
// (http://tango.freedesktop.org/Tango_Icon_Theme_Guidelines) which provides
// aesthetically reasonable defaults. Each color also comes with a light and
// dark version.
var (
	LightRed = RGB(239, 41, 41)
	Red      = RGB(204, 0, 0)
	DarkRed  = RGB(164, 0, 0)

	LightOrange = RGB(252, 175, 62)
	Orange      = RGB(245, 121, 0)
	DarkOrange  = RGB(206, 92, 0)

	LightYellow = RGB(255, 233, 79)
	Yellow      = RGB(237, 212, 0)
	DarkYellow  = RGB(196, 160, 0)

	LightGreen = RGB(138, 226, 52)
	Green      = RGB(115, 210, 22)
	DarkGreen  = RGB(78, 154, 6)

	LightBlue = RGB(114, 159, 207)
	Blue      = RGB(52, 101, 164)
	DarkBlue  = RGB(32, 74, 135)

	LightPurple = RGB(173, 127, 168)
	Purple      = RGB(117, 80, 123)
	DarkPurple  = RGB(92, 53, 102)

	LightBrown = RGB(233, 185, 110)
	Brown      = RGB(193, 125, 17)
	DarkBrown  = RGB(143, 89, 2)

	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)

	LightGray = RGB(238, 238, 236)
	Gray      = RGB(211, 215, 207)
	DarkGray  = RGB(186, 189, 182)

	LightGrey = LightGray
	Grey      = Gray
	DarkGrey  = DarkGray

	LightCharcoal = RGB(136, 138, 133)
	Charcoal      = RGB(85, 87, 83)
	DarkCharcoal  = RGB(46, 52, 54)
)
