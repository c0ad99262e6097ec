package script

import (
	"math"
	"testing"
)

func TestFromDSL(t *testing.T) {
	const src = `
# warm up
translate 40 60
rotate 90deg
push
scale 2 3
shear-x 0.5rad
rotate-axis 45deg 0 0 1
pop
reset-matrix
`
	prog, err := FromDSL(src)
	if err != nil {
		t.Fatalf("FromDSL err = %v", err)
	}

	want := []Step{
		{Op: "translate", Args: []float64{40, 60}},
		{Op: "rotate", Args: []float64{math.Pi / 2}},
		{Op: "push", Args: []float64{}},
		{Op: "scale", Args: []float64{2, 3}},
		{Op: "shear-x", Args: []float64{0.5}},
		{Op: "rotate-axis", Args: []float64{math.Pi / 4, 0, 0, 1}},
		{Op: "pop", Args: []float64{}},
		{Op: "reset-matrix", Args: []float64{}},
	}
	if len(prog.Steps) != len(want) {
		t.Fatalf("len(Steps) = %d, want %d", len(prog.Steps), len(want))
	}
	for i, w := range want {
		got := prog.Steps[i]
		if got.Op != w.Op {
			t.Errorf("step %d op = %q, want %q", i, got.Op, w.Op)
			continue
		}
		if len(got.Args) != len(w.Args) {
			t.Errorf("step %d args = %v, want %v", i, got.Args, w.Args)
			continue
		}
		for j := range w.Args {
			if math.Abs(got.Args[j]-w.Args[j]) > epsilon {
				t.Errorf("step %d args = %v, want %v", i, got.Args, w.Args)
				break
			}
		}
	}
}

func TestFromDSLNumbers(t *testing.T) {
	prog, err := FromDSL("translate -1.5 +2e3")
	if err != nil {
		t.Fatalf("FromDSL err = %v", err)
	}
	args := prog.Steps[0].Args
	if args[0] != -1.5 || args[1] != 2000 {
		t.Errorf("args = %v, want [-1.5 2000]", args)
	}
}

func TestFromDSLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown op", "spin 1"},
		{"bad arity", "rotate 1 2"},
		{"unit on non-angle arg", "translate 4deg 5"},
		{"unit on scale", "scale 2deg"},
		{"syntax error", "rotate rotate 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromDSL(tt.src); err == nil {
				t.Error("FromDSL succeeded, want error")
			}
		})
	}
}
