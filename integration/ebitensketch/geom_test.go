package ebitensketch

import (
	"math"
	"testing"

	"github.com/gogpu/sketch"
)

func TestGeoMRoundTrip(t *testing.T) {
	m := sketch.Translation(10, 20).Mul(sketch.Rotation(0.5)).Mul(sketch.Scaling(2, 3))
	if got := FromGeoM(GeoM(m)); got != m {
		t.Errorf("FromGeoM(GeoM(m)) = %+v, want %+v", got, m)
	}
}

func TestGeoMAppliesLikeMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    sketch.Matrix
	}{
		{"identity", sketch.Identity()},
		{"translate", sketch.Translation(5, -3)},
		{"rotate", sketch.Rotation(math.Pi / 3)},
		{"composite", sketch.Translation(1, 2).Mul(sketch.Scaling(2, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeoM(tt.m)
			gx, gy := g.Apply(7, 11)
			wx, wy := tt.m.Apply(7, 11)
			if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
				t.Errorf("GeoM.Apply = (%v, %v), Matrix.Apply = (%v, %v)", gx, gy, wx, wy)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	dc := sketch.NewContext()
	dc.Translate(30, 40)
	g := Current(dc)
	if x, y := g.Apply(0, 0); x != 30 || y != 40 {
		t.Errorf("Current origin = (%v, %v), want (30, 40)", x, y)
	}

	dc3 := sketch.NewContext(sketch.WithRenderer(sketch.NewTransform3D()))
	dc3.Translate(30, 40)
	g = Current(dc3)
	if x, y := g.Apply(1, 2); x != 1 || y != 2 {
		t.Errorf("Current on 3D renderer = (%v, %v), want identity passthrough", x, y)
	}
}
