package sketch

import (
	"math"
	"testing"
)

func TestVectorLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"zero", Vector{}, 0},
		{"unit x", Vec(1, 0, 0), 1},
		{"3-4-5", Vec2(3, 4), 5},
		{"space diagonal", Vec(1, 1, 1), math.Sqrt(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Len() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(0, 3, 4).Normalize()
	if math.Abs(v.Len()-1) > epsilon {
		t.Errorf("normalized length = %v, want 1", v.Len())
	}
	if zero := (Vector{}).Normalize(); !zero.IsZero() {
		t.Errorf("Normalize() of zero = %+v, want zero", zero)
	}
}

func TestVectorVec3RoundTrip(t *testing.T) {
	v := Vec(1.5, -2, 0.25)
	if got := FromVec3(v.Vec3()); got != v {
		t.Errorf("FromVec3(Vec3()) = %+v, want %+v", got, v)
	}
}
