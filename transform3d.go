package sketch

import "github.com/go-gl/mathgl/mgl64"

// Transform3D is the stock 3D renderer: a 4x4 homogeneous
// current-transform matrix plus a save/restore stack, built on
// go-gl/mathgl. 2D operations act on the XY plane of the same matrix,
// so mixed 2D/3D call sequences compose in order.
//
// Like Transform2D it is single-threaded state for a draw loop.
type Transform3D struct {
	ctm   mgl64.Mat4
	stack []mgl64.Mat4
}

var _ Renderer3D = (*Transform3D)(nil)

// NewTransform3D returns a 3D transform stack initialized to the
// identity.
func NewTransform3D() *Transform3D {
	return &Transform3D{
		ctm:   mgl64.Ident4(),
		stack: make([]mgl64.Mat4, 0, 8),
	}
}

// Current returns the current 4x4 transformation matrix.
func (t *Transform3D) Current() mgl64.Mat4 {
	return t.ctm
}

// Depth returns the number of saved transforms on the stack.
func (t *Transform3D) Depth() int {
	return len(t.stack)
}

// ApplyMatrix composes a 2x3 affine onto the current transform,
// promoted to a 4x4 acting on the XY plane.
func (t *Transform3D) ApplyMatrix(m Matrix) {
	t.ctm = t.ctm.Mul4(mat4FromAffine(m))
}

// ApplyMatrix4 composes a full 4x4 matrix onto the current transform.
func (t *Transform3D) ApplyMatrix4(m mgl64.Mat4) {
	t.ctm = t.ctm.Mul4(m)
}

// ResetMatrix replaces the current transform with the identity.
func (t *Transform3D) ResetMatrix() {
	t.ctm = mgl64.Ident4()
}

// Rotate composes a rotation about the z axis, the 3D counterpart of a
// 2D rotation.
func (t *Transform3D) Rotate(angle float64) {
	t.RotateZ(angle)
}

// RotateX composes a rotation about the x axis.
func (t *Transform3D) RotateX(angle float64) {
	t.ctm = t.ctm.Mul4(mgl64.HomogRotate3DX(angle))
}

// RotateY composes a rotation about the y axis.
func (t *Transform3D) RotateY(angle float64) {
	t.ctm = t.ctm.Mul4(mgl64.HomogRotate3DY(angle))
}

// RotateZ composes a rotation about the z axis.
func (t *Transform3D) RotateZ(angle float64) {
	t.ctm = t.ctm.Mul4(mgl64.HomogRotate3DZ(angle))
}

// RotateAxis composes a rotation about an arbitrary axis. The axis is
// normalized here; the caller guarantees it is non-zero.
func (t *Transform3D) RotateAxis(angle float64, axis Vector) {
	t.ctm = t.ctm.Mul4(mgl64.HomogRotate3D(angle, axis.Vec3().Normalize()))
}

// Scale composes a two-axis scale; z is untouched.
func (t *Transform3D) Scale(x, y float64) {
	t.Scale3(x, y, 1)
}

// Scale3 composes a three-axis scale.
func (t *Transform3D) Scale3(x, y, z float64) {
	t.ctm = t.ctm.Mul4(mgl64.Scale3D(x, y, z))
}

// ShearX composes an x-axis shear in the XY plane.
func (t *Transform3D) ShearX(angle float64) {
	t.ApplyMatrix(ShearingX(angle))
}

// ShearY composes a y-axis shear in the XY plane.
func (t *Transform3D) ShearY(angle float64) {
	t.ApplyMatrix(ShearingY(angle))
}

// Translate composes a translation in the XY plane.
func (t *Transform3D) Translate(x, y float64) {
	t.Translate3(x, y, 0)
}

// Translate3 composes a 3D translation.
func (t *Transform3D) Translate3(x, y, z float64) {
	t.ctm = t.ctm.Mul4(mgl64.Translate3D(x, y, z))
}

// Push saves the current transform.
func (t *Transform3D) Push() {
	t.stack = append(t.stack, t.ctm)
}

// Pop restores the most recently saved transform.
func (t *Transform3D) Pop() error {
	if len(t.stack) == 0 {
		return ErrStackUnderflow
	}
	t.ctm = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// IsP3D reports true.
func (t *Transform3D) IsP3D() bool {
	return true
}

// mat4FromAffine promotes a 2x3 affine to a 4x4 matrix acting on the XY
// plane. mgl64 matrices are column-major.
func mat4FromAffine(m Matrix) mgl64.Mat4 {
	return mgl64.Mat4{
		m.A, m.D, 0, 0, // column 0
		m.B, m.E, 0, 0, // column 1
		0, 0, 1, 0, // column 2
		m.C, m.F, 0, 1, // column 3
	}
}
