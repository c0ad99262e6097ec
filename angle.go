package sketch

import "math"

// Mode selects how a Context interprets angle arguments.
type Mode int

const (
	// RadiansMode interprets angles as radians (the default).
	RadiansMode Mode = iota

	// DegreesMode interprets angles as degrees; they are converted to
	// radians before reaching the renderer.
	DegreesMode
)

// Radians and Degrees are the values passed to [Context.AngleMode].
// They alias the Mode constants under the names sketch code uses.
const (
	Radians = RadiansMode
	Degrees = DegreesMode
)

// String returns "radians" or "degrees".
func (m Mode) String() string {
	if m == DegreesMode {
		return "degrees"
	}
	return "radians"
}

// ToRadians converts deg from degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts rad from radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
