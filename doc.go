// Package sketch provides a coordinate-transform layer for drawing contexts.
//
// # Overview
//
// sketch sits between application code and a rendering backend. A [Context]
// exposes the familiar sketch-style transform calls (Translate, Rotate,
// Scale, ShearX/ShearY, ApplyMatrix, Push/Pop) and normalizes their
// arguments: angle-unit conversion, scale-factor resolution, and 2D/3D
// capability checks all happen here before anything reaches the renderer.
// The renderer owns the actual transformation-matrix stack; the package
// ships two ready-made ones, [Transform2D] (2x3 affine) and [Transform3D]
// (4x4 homogeneous on go-gl/mathgl).
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	dc := sketch.NewContext()
//	dc.AngleMode(sketch.Degrees)
//
//	dc.Translate(200, 200).Rotate(45).Scale(sketch.Uniform(2))
//
//	m, _ := dc.Matrix() // resulting 2x3 affine CTM
//
// # Renderers
//
// Any type implementing [Renderer] can back a Context; use
// [WithRenderer] to inject one. Renderers that report 3D capability via
// IsP3D must also implement [Renderer3D], which unlocks RotateX/Y/Z,
// RotateAxis, three-component scaling, and 4x4 matrix application.
// Calling a 3D-only operation on a 2D renderer fails with an
// [UnsupportedModeError] without touching the renderer.
//
// # Angle Units
//
// Angles are radians by default. Switching a Context to [Degrees] makes
// Rotate, RotateX/Y/Z, RotateAxis, ShearX and ShearY convert on the way
// in; the renderer always receives radians. The unit mode is a field on
// the Context, never process-global state.
//
// # Errors
//
// Operations that can fail return an error; the taxonomy is small and
// typed: [ArgumentError] for malformed arguments, [UnsupportedModeError]
// for 3D-only calls without 3D capability, and [DeprecatedError] for the
// removed legacy stack calls (PushMatrix, PopMatrix, PrintMatrix). No
// error is fatal to the Context; every call is independent.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
