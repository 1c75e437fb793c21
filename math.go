package collage

import "math"

// Degrees converts an angle in degrees to radians.
func Degrees(d float64) float64 {
	return d * (math.Pi / 180)
}

// Turns converts full turns to radians. One turn is 2π.
func Turns(t float64) float64 {
	return 2 * math.Pi * t
}

// FloatMod is the floating-point modulo with the sign of the divisor,
// so FloatMod(-1, 3) == 2. The divisor must be non-zero.
func FloatMod(f float64, n int) float64 {
	i := int(math.Floor(f))
	return float64(intMod(i, n)) + f - float64(i)
}

// intMod is the integer modulo with the sign of the divisor.
func intMod(a, b int) int {
	r := a % b
	if (r > 0 && b < 0) || (r < 0 && b > 0) {
		return r + b
	}
	return r
}

// Clamp restricts f to the [0, 1] range.
func Clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// MapRange linearly maps a value from the range [inMin, inMax] onto the
// range [outMin, outMax]. Values outside the input range extrapolate.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}
