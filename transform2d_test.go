package sketch

import (
	"errors"
	"math"
	"testing"
)

func TestTransform2DComposition(t *testing.T) {
	tr := NewTransform2D()
	tr.Translate(100, 50)
	tr.Rotate(math.Pi / 2)
	tr.Scale(2, 2)

	// (1, 0) scales to (2, 0), rotates to (0, 2), translates to (100, 52).
	x, y := tr.Current().Apply(1, 0)
	if math.Abs(x-100) > epsilon || math.Abs(y-52) > epsilon {
		t.Errorf("composed Apply(1, 0) = (%v, %v), want (100, 52)", x, y)
	}
}

func TestTransform2DResetMatrix(t *testing.T) {
	tr := NewTransform2D()
	tr.Translate(5, 5)
	tr.Push()
	tr.ResetMatrix()

	if !tr.Current().IsIdentity() {
		t.Errorf("after ResetMatrix Current() = %+v, want identity", tr.Current())
	}
	if tr.Depth() != 1 {
		t.Errorf("ResetMatrix changed stack depth to %d, want 1", tr.Depth())
	}
}

func TestTransform2DPushPop(t *testing.T) {
	tr := NewTransform2D()
	tr.Translate(10, 20)
	saved := tr.Current()

	tr.Push()
	tr.Rotate(1)
	tr.Scale(3, 3)
	if err := tr.Pop(); err != nil {
		t.Fatalf("Pop() err = %v", err)
	}

	if tr.Current() != saved {
		t.Errorf("after Pop Current() = %+v, want %+v", tr.Current(), saved)
	}
	if tr.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", tr.Depth())
	}
}

func TestTransform2DPopUnderflow(t *testing.T) {
	tr := NewTransform2D()
	if err := tr.Pop(); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("Pop() on empty stack = %v, want ErrStackUnderflow", err)
	}
}

func TestTransform2DShear(t *testing.T) {
	tr := NewTransform2D()
	tr.ShearX(math.Pi / 4)
	x, y := tr.Current().Apply(0, 1)
	if math.Abs(x-1) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("ShearX(pi/4) Apply(0, 1) = (%v, %v), want (1, 1)", x, y)
	}

	tr.ResetMatrix()
	tr.ShearY(math.Pi / 4)
	x, y = tr.Current().Apply(1, 0)
	if math.Abs(x-1) > epsilon || math.Abs(y-1) > epsilon {
		t.Errorf("ShearY(pi/4) Apply(1, 0) = (%v, %v), want (1, 1)", x, y)
	}
}

func TestTransform2DIsP3D(t *testing.T) {
	if NewTransform2D().IsP3D() {
		t.Error("Transform2D.IsP3D() = true, want false")
	}
}
