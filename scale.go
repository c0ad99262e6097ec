package sketch

// ScaleFactor is a resolved scale argument. The variadic and vector call
// shapes of the original sketch API collapse into this one type at the
// call boundary: construct it with [Uniform], [ScaleXY], [ScaleXYZ],
// [ScaleVec] or [ScaleValues], then pass it to [Context.Scale].
// The zero value scales by (0, 0, 1), which is rarely what you want;
// always use a constructor.
type ScaleFactor struct {
	x, y, z float64
}

// Uniform scales x and y by the same factor s; z is left at 1, so
// Uniform(2) is exactly ScaleXYZ(2, 2, 1).
func Uniform(s float64) ScaleFactor {
	return ScaleFactor{x: s, y: s, z: 1}
}

// ScaleXY scales x and y independently; z is left at 1.
func ScaleXY(x, y float64) ScaleFactor {
	return ScaleFactor{x: x, y: y, z: 1}
}

// ScaleXYZ scales all three axes independently.
func ScaleXYZ(x, y, z float64) ScaleFactor {
	return ScaleFactor{x: x, y: y, z: z}
}

// ScaleVec resolves a vector argument. A vector with Z == 0 is treated
// as the two-component form and z defaults to 1; otherwise Z is used.
func ScaleVec(v Vector) ScaleFactor {
	z := v.Z
	if z == 0 {
		z = 1
	}
	return ScaleFactor{x: v.X, y: v.Y, z: z}
}

// ScaleValues resolves 1 to 3 positional scalars:
//
//	ScaleValues(s)        // uniform
//	ScaleValues(x, y)     // z defaults to 1
//	ScaleValues(x, y, z)
//
// Any other arity is an ArgumentError.
func ScaleValues(vals ...float64) (ScaleFactor, error) {
	switch len(vals) {
	case 1:
		return Uniform(vals[0]), nil
	case 2:
		return ScaleXY(vals[0], vals[1]), nil
	case 3:
		return ScaleXYZ(vals[0], vals[1], vals[2]), nil
	}
	return ScaleFactor{}, argErrorf("Scale", "want 1 to 3 factors, got %d", len(vals))
}

// XYZ returns the resolved per-axis factors.
func (f ScaleFactor) XYZ() (x, y, z float64) {
	return f.x, f.y, f.z
}
