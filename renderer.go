package sketch

import "github.com/go-gl/mathgl/mgl64"

// Renderer owns the transformation-matrix stack a [Context] drives.
// All angles are radians; the Context performs unit conversion before
// delegating. Implementations compose incoming transforms onto the
// current matrix (post-multiplication).
type Renderer interface {
	// ApplyMatrix composes a 2x3 affine onto the current transform.
	ApplyMatrix(m Matrix)

	// ResetMatrix replaces the current transform with the identity.
	// The push/pop stack is unaffected.
	ResetMatrix()

	// Rotate composes a rotation about the origin (the z axis in 3D).
	Rotate(angle float64)

	// Scale composes a two-axis scale.
	Scale(x, y float64)

	// ShearX composes a shear along the x axis.
	ShearX(angle float64)

	// ShearY composes a shear along the y axis.
	ShearY(angle float64)

	// Translate composes a translation.
	Translate(x, y float64)

	// Push saves the current transform on the stack.
	Push()

	// Pop restores the most recently pushed transform.
	// Returns ErrStackUnderflow when the stack is empty.
	Pop() error

	// IsP3D reports 3D capability. A renderer returning true must also
	// implement Renderer3D; the Context checks both before dispatching
	// any 3D-only operation.
	IsP3D() bool
}

// Renderer3D extends Renderer with the operations that only make sense
// on a 4x4 homogeneous transform stack.
type Renderer3D interface {
	Renderer

	// RotateX, RotateY and RotateZ compose rotations about the
	// respective axes.
	RotateX(angle float64)
	RotateY(angle float64)
	RotateZ(angle float64)

	// RotateAxis composes a rotation about an arbitrary axis.
	// The axis need not be normalized but must be non-zero; the
	// Context validates that before delegating.
	RotateAxis(angle float64, axis Vector)

	// Scale3 composes a three-axis scale.
	Scale3(x, y, z float64)

	// Translate3 composes a 3D translation.
	Translate3(x, y, z float64)

	// ApplyMatrix4 composes a full 4x4 matrix onto the current
	// transform.
	ApplyMatrix4(m mgl64.Mat4)
}
