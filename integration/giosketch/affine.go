// Package giosketch bridges sketch transforms to Gio.
//
// A sketch 2x3 affine converts (with float32 narrowing) to a
// gioui.org/f32.Affine2D, which is what op.Affine expects:
//
//	defer op.Affine(giosketch.Current(dc)).Push(ops).Pop()
package giosketch

import (
	"gioui.org/f32"

	"github.com/gogpu/sketch"
)

// Affine converts a sketch affine to a Gio transform. Coefficients are
// narrowed to float32.
func Affine(m sketch.Matrix) f32.Affine2D {
	return f32.NewAffine2D(
		float32(m.A), float32(m.B), float32(m.C),
		float32(m.D), float32(m.E), float32(m.F),
	)
}

// FromAffine converts a Gio transform to a sketch affine.
func FromAffine(a f32.Affine2D) sketch.Matrix {
	sx, hx, ox, hy, sy, oy := a.Elems()
	return sketch.Matrix{
		A: float64(sx), B: float64(hx), C: float64(ox),
		D: float64(hy), E: float64(sy), F: float64(oy),
	}
}

// Current returns the context's current transform as a Gio Affine2D.
// Contexts backed by a renderer without a 2x3 view yield the identity.
func Current(dc *sketch.Context) f32.Affine2D {
	m, _ := dc.Matrix()
	return Affine(m)
}
