package sketch

// Transform2D is the stock 2D renderer: a 2x3 affine current-transform
// matrix plus a save/restore stack. It is the matrix state a canvas-style
// backend would consume; it performs no drawing of its own.
//
// Transform2D is not safe for concurrent use, matching the one-call-at-a-
// time draw-loop model it serves.
type Transform2D struct {
	ctm   Matrix
	stack []Matrix
}

var _ Renderer = (*Transform2D)(nil)

// NewTransform2D returns a 2D transform stack initialized to the
// identity.
func NewTransform2D() *Transform2D {
	return &Transform2D{
		ctm:   Identity(),
		stack: make([]Matrix, 0, 8),
	}
}

// Current returns the current transformation matrix.
func (t *Transform2D) Current() Matrix {
	return t.ctm
}

// Depth returns the number of saved transforms on the stack.
func (t *Transform2D) Depth() int {
	return len(t.stack)
}

// ApplyMatrix composes m onto the current transform.
func (t *Transform2D) ApplyMatrix(m Matrix) {
	t.ctm = t.ctm.Mul(m)
}

// ResetMatrix replaces the current transform with the identity.
func (t *Transform2D) ResetMatrix() {
	t.ctm = Identity()
}

// Rotate composes a rotation by angle radians.
func (t *Transform2D) Rotate(angle float64) {
	t.ctm = t.ctm.Mul(Rotation(angle))
}

// Scale composes a scale by (x, y).
func (t *Transform2D) Scale(x, y float64) {
	t.ctm = t.ctm.Mul(Scaling(x, y))
}

// ShearX composes an x-axis shear by angle radians.
func (t *Transform2D) ShearX(angle float64) {
	t.ctm = t.ctm.Mul(ShearingX(angle))
}

// ShearY composes a y-axis shear by angle radians.
func (t *Transform2D) ShearY(angle float64) {
	t.ctm = t.ctm.Mul(ShearingY(angle))
}

// Translate composes a translation by (x, y).
func (t *Transform2D) Translate(x, y float64) {
	t.ctm = t.ctm.Mul(Translation(x, y))
}

// Push saves the current transform.
func (t *Transform2D) Push() {
	t.stack = append(t.stack, t.ctm)
}

// Pop restores the most recently saved transform.
func (t *Transform2D) Pop() error {
	if len(t.stack) == 0 {
		return ErrStackUnderflow
	}
	t.ctm = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// IsP3D reports false: Transform2D has no 3D capability.
func (t *Transform2D) IsP3D() bool {
	return false
}
