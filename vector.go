package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 3-component vector. The Z component is zero for 2D uses;
// RotateAxis and ScaleVec accept either shape.
type Vector struct {
	X, Y, Z float64
}

// Vec constructs a 3D vector.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Vec2 constructs a vector in the XY plane.
func Vec2(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsZero reports whether all components are exactly zero.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Vec3 converts v to a mathgl vector.
func (v Vector) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec3 builds a Vector from a mathgl vector.
func FromVec3(v mgl64.Vec3) Vector {
	return Vector{X: v[0], Y: v[1], Z: v[2]}
}
