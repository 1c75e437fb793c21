package collage

// Stop represents a color at a specific position in a gradient.
// Offsets are in [0, 1]. Stop ordering is caller-provided and not
// validated.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient describes a linear or radial color gradient in the local
// coordinate space of the shape it fills.
type Gradient struct {
	// Radial selects between the two gradient kinds.
	Radial bool

	// Start and End are the gradient axis endpoints. For radial gradients
	// they are the centers of the inner and outer circles.
	Start, End Point

	// StartRadius and EndRadius are the inner and outer circle radii.
	// They are only meaningful for radial gradients.
	StartRadius, EndRadius float64

	// Stops indicate how to interpolate between the endpoints.
	Stops []Stop
}

// Linear creates a linear gradient. Takes a start and end point and then a
// series of color stops that indicate how to interpolate between them.
func Linear(start, end Point, stops ...Stop) Gradient {
	return Gradient{Start: start, End: end, Stops: stops}
}

// Radial creates a radial gradient. First takes a start point and inner
// radius, then an end point and outer radius. The color stops indicate how
// to interpolate between the inner and outer circles.
func Radial(start Point, startRadius float64, end Point, endRadius float64, stops ...Stop) Gradient {
	return Gradient{
		Radial:      true,
		Start:       start,
		End:         end,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Stops:       stops,
	}
}
