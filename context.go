package sketch

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Context is the transform facade over a renderer. It normalizes
// arguments (angle units, scale shapes, 2D/3D capability) and delegates
// matrix work to the renderer; it keeps no matrix state of its own.
//
// Operations that cannot fail return the Context for chaining.
// Operations that can fail return an error instead; every call is
// independent, and a failed call leaves the renderer untouched.
type Context struct {
	renderer Renderer
	mode     Mode
	logger   *slog.Logger
}

// NewContext creates a Context. With no options it drives a fresh
// [Transform2D] with radian angles and no logging.
func NewContext(opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewTransform2D()
	}
	logger := options.logger
	if logger == nil {
		logger = newNopLogger()
	}

	return &Context{
		renderer: renderer,
		mode:     options.mode,
		logger:   logger,
	}
}

// Renderer returns the renderer backing the Context.
func (c *Context) Renderer() Renderer {
	return c.renderer
}

// AngleMode sets how subsequent angle arguments are interpreted.
func (c *Context) AngleMode(m Mode) *Context {
	c.mode = m
	return c
}

// CurrentAngleMode returns the active angle unit mode.
func (c *Context) CurrentAngleMode() Mode {
	return c.mode
}

// Matrix returns the current 2x3 affine transform when the renderer
// exposes one (the stock Transform2D does). ok is false otherwise.
func (c *Context) Matrix() (m Matrix, ok bool) {
	if src, has := c.renderer.(interface{ Current() Matrix }); has {
		return src.Current(), true
	}
	return Identity(), false
}

// Matrix4 returns the current 4x4 transform when the renderer exposes
// one (the stock Transform3D does). ok is false otherwise.
func (c *Context) Matrix4() (m mgl64.Mat4, ok bool) {
	if src, has := c.renderer.(interface{ Current() mgl64.Mat4 }); has {
		return src.Current(), true
	}
	return mgl64.Ident4(), false
}

// toRadians converts an incoming angle to radians per the active mode.
func (c *Context) toRadians(angle float64) float64 {
	if c.mode == DegreesMode {
		return ToRadians(angle)
	}
	return angle
}

// capability3D resolves the 3D extension of the renderer. Both the
// capability flag and the interface must agree before any 3D-only call
// is dispatched.
func (c *Context) capability3D() (Renderer3D, bool) {
	r3, ok := c.renderer.(Renderer3D)
	if !ok || !c.renderer.IsP3D() {
		return nil, false
	}
	return r3, true
}

// renderer3D is capability3D for operations that require 3D: the
// missing capability becomes an UnsupportedModeError for op.
func (c *Context) renderer3D(op string) (Renderer3D, error) {
	r3, ok := c.capability3D()
	if !ok {
		return nil, &UnsupportedModeError{Op: op}
	}
	return r3, nil
}

// ApplyMatrix composes the 2x3 affine
//
//	| a  b  c |
//	| d  e  f |
//
// onto the current transform. Non-finite coefficients are rejected
// without reaching the renderer.
func (c *Context) ApplyMatrix(a, b, cc, d, e, f float64) error {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return argErrorf("ApplyMatrix", "coefficients must be finite, got %+v", m)
	}
	c.renderer.ApplyMatrix(m)
	return nil
}

// ApplyMatrix4 composes a full 4x4 matrix onto the current transform.
// Requires a 3D renderer.
func (c *Context) ApplyMatrix4(m mgl64.Mat4) error {
	r3, err := c.renderer3D("ApplyMatrix4")
	if err != nil {
		return err
	}
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return argErrorf("ApplyMatrix4", "coefficients must be finite")
		}
	}
	r3.ApplyMatrix4(m)
	return nil
}

// ResetMatrix replaces the current transform with the identity.
func (c *Context) ResetMatrix() *Context {
	c.renderer.ResetMatrix()
	return c
}

// Rotate composes a rotation by angle (interpreted per the angle mode)
// about the origin; on a 3D renderer this is a rotation about the z
// axis. To rotate about an arbitrary axis use [Context.RotateAxis].
func (c *Context) Rotate(angle float64) *Context {
	c.renderer.Rotate(c.toRadians(angle))
	return c
}

// RotateAxis composes a rotation by angle about the given axis.
// Requires a 3D renderer: an axis is meaningless on a planar transform,
// so rather than silently ignoring it the call fails with an
// UnsupportedModeError. A zero axis is an ArgumentError.
func (c *Context) RotateAxis(angle float64, axis Vector) error {
	r3, err := c.renderer3D("RotateAxis")
	if err != nil {
		return err
	}
	if axis.IsZero() {
		return argErrorf("RotateAxis", "axis must be non-zero")
	}
	r3.RotateAxis(c.toRadians(angle), axis)
	return nil
}

// RotateX composes a rotation about the x axis. Requires a 3D renderer.
func (c *Context) RotateX(angle float64) error {
	r3, err := c.renderer3D("RotateX")
	if err != nil {
		return err
	}
	r3.RotateX(c.toRadians(angle))
	return nil
}

// RotateY composes a rotation about the y axis. Requires a 3D renderer.
func (c *Context) RotateY(angle float64) error {
	r3, err := c.renderer3D("RotateY")
	if err != nil {
		return err
	}
	r3.RotateY(c.toRadians(angle))
	return nil
}

// RotateZ composes a rotation about the z axis. Requires a 3D renderer.
func (c *Context) RotateZ(angle float64) error {
	r3, err := c.renderer3D("RotateZ")
	if err != nil {
		return err
	}
	r3.RotateZ(c.toRadians(angle))
	return nil
}

// Scale composes a scale by the resolved factor. On a 2D renderer the z
// component is dropped; Uniform and two-component forms behave
// identically in both modes since their z resolves to the scalar or 1.
func (c *Context) Scale(f ScaleFactor) *Context {
	x, y, z := f.XYZ()
	if r3, ok := c.capability3D(); ok {
		r3.Scale3(x, y, z)
		return c
	}
	if z != 1 {
		c.logger.Debug("sketch: dropping z scale on 2D renderer", "z", z)
	}
	c.renderer.Scale(x, y)
	return c
}

// ShearX composes a shear along the x axis by angle (interpreted per
// the angle mode).
func (c *Context) ShearX(angle float64) *Context {
	c.renderer.ShearX(c.toRadians(angle))
	return c
}

// ShearY composes a shear along the y axis by angle (interpreted per
// the angle mode).
func (c *Context) ShearY(angle float64) *Context {
	c.renderer.ShearY(c.toRadians(angle))
	return c
}

// Translate composes a translation by (x, y).
func (c *Context) Translate(x, y float64) *Context {
	c.renderer.Translate(x, y)
	return c
}

// Translate3 composes a translation by (x, y, z). On a 2D renderer the
// z component is dropped and the call still succeeds.
func (c *Context) Translate3(x, y, z float64) *Context {
	if r3, ok := c.capability3D(); ok {
		r3.Translate3(x, y, z)
		return c
	}
	if z != 0 {
		c.logger.Debug("sketch: dropping z translation on 2D renderer", "z", z)
	}
	c.renderer.Translate(x, y)
	return c
}

// Push saves the current transform on the renderer's stack.
func (c *Context) Push() *Context {
	c.renderer.Push()
	return c
}

// Pop restores the most recently pushed transform. Popping an empty
// stack returns ErrStackUnderflow.
func (c *Context) Pop() error {
	return c.renderer.Pop()
}
