// Package ebitensketch bridges sketch transforms to Ebitengine.
//
// A sketch 2x3 affine converts losslessly to an ebiten.GeoM, so a
// Context can drive DrawImageOptions placement:
//
//	dc := sketch.NewContext(sketch.WithAngleMode(sketch.Degrees))
//	dc.Translate(cx, cy).Rotate(45).Scale(sketch.Uniform(2))
//
//	op := &ebiten.DrawImageOptions{GeoM: ebitensketch.Current(dc)}
//	screen.DrawImage(img, op)
package ebitensketch

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
)

// GeoM converts a sketch affine to an ebiten geometry matrix.
func GeoM(m sketch.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

// FromGeoM converts an ebiten geometry matrix to a sketch affine.
func FromGeoM(g ebiten.GeoM) sketch.Matrix {
	return sketch.Matrix{
		A: g.Element(0, 0), B: g.Element(0, 1), C: g.Element(0, 2),
		D: g.Element(1, 0), E: g.Element(1, 1), F: g.Element(1, 2),
	}
}

// Current returns the context's current transform as an ebiten.GeoM.
// Contexts backed by a renderer without a 2x3 view (such as
// sketch.Transform3D) yield the identity.
func Current(dc *sketch.Context) ebiten.GeoM {
	m, _ := dc.Matrix()
	return GeoM(m)
}
