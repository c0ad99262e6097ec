package script

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

const epsilon = 1e-9

func TestProgramApply(t *testing.T) {
	prog := &Program{Steps: []Step{
		{Op: "translate", Args: []float64{100, 0}},
		{Op: "rotate", Args: []float64{math.Pi / 2}},
		{Op: "scale", Args: []float64{2}},
	}}

	dc := sketch.NewContext()
	if err := prog.Apply(dc); err != nil {
		t.Fatalf("Apply err = %v", err)
	}

	m, ok := dc.Matrix()
	if !ok {
		t.Fatal("Matrix() not available")
	}
	x, y := m.Apply(1, 0)
	if math.Abs(x-100) > epsilon || math.Abs(y-2) > epsilon {
		t.Errorf("Apply(1, 0) = (%v, %v), want (100, 2)", x, y)
	}
}

func TestProgramApplyRestoresAngleMode(t *testing.T) {
	dc := sketch.NewContext(sketch.WithAngleMode(sketch.Degrees))
	prog := &Program{Steps: []Step{{Op: "rotate", Args: []float64{math.Pi}}}}
	if err := prog.Apply(dc); err != nil {
		t.Fatalf("Apply err = %v", err)
	}
	if dc.CurrentAngleMode() != sketch.DegreesMode {
		t.Errorf("angle mode after Apply = %v, want degrees", dc.CurrentAngleMode())
	}
}

func TestProgramApply3DOpOn2D(t *testing.T) {
	prog := &Program{Steps: []Step{{Op: "rotate-x", Args: []float64{1}}}}
	err := prog.Apply(sketch.NewContext())
	var modeErr *sketch.UnsupportedModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("Apply err = %v, want wrapped UnsupportedModeError", err)
	}
}

func TestProgramApplyPushPop(t *testing.T) {
	prog := &Program{Steps: []Step{
		{Op: "push"},
		{Op: "translate", Args: []float64{5, 5}},
		{Op: "pop"},
	}}
	dc := sketch.NewContext()
	if err := prog.Apply(dc); err != nil {
		t.Fatalf("Apply err = %v", err)
	}
	m, _ := dc.Matrix()
	if !m.IsIdentity() {
		t.Errorf("CTM after push/translate/pop = %+v, want identity", m)
	}

	underflow := &Program{Steps: []Step{{Op: "pop"}}}
	if err := underflow.Apply(sketch.NewContext()); !errors.Is(err, sketch.ErrStackUnderflow) {
		t.Errorf("pop on empty stack err = %v, want ErrStackUnderflow", err)
	}
}

// Programs can be assembled by hand, bypassing the decoders, so Apply
// must reject malformed steps with a typed error rather than indexing
// past the argument list.
func TestProgramApplyMalformedStep(t *testing.T) {
	tests := []struct {
		name string
		step Step
	}{
		{"missing args", Step{Op: "rotate"}},
		{"too many args", Step{Op: "rotate", Args: []float64{1, 2}}},
		{"unknown op", Step{Op: "spin", Args: []float64{1}}},
		{"rotate-axis short", Step{Op: "rotate-axis", Args: []float64{1, 0}}},
		{"apply-matrix short", Step{Op: "apply-matrix", Args: []float64{1, 0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := &Program{Steps: []Step{tt.step}}
			err := prog.Apply(sketch.NewContext())
			var argErr *sketch.ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("Apply err = %v, want wrapped ArgumentError", err)
			}
		})
	}
}

func TestFromYAML(t *testing.T) {
	const doc = `
angle_mode: degrees
steps:
  - {op: translate, args: [40, 60]}
  - {op: rotate, args: [90]}
  - {op: push}
  - {op: scale, args: [2, 3]}
  - {op: pop}
`
	prog, err := FromYAML([]byte(doc))
	if err != nil {
		t.Fatalf("FromYAML err = %v", err)
	}
	if len(prog.Steps) != 5 {
		t.Fatalf("len(Steps) = %d, want 5", len(prog.Steps))
	}
	if got := prog.Steps[1].Args[0]; math.Abs(got-math.Pi/2) > epsilon {
		t.Errorf("rotate arg = %v, want pi/2 (degrees converted)", got)
	}
	// Non-angle args are untouched by angle_mode.
	if got := prog.Steps[0].Args; got[0] != 40 || got[1] != 60 {
		t.Errorf("translate args = %v, want [40 60]", got)
	}
}

func TestFromYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown op", "steps:\n  - {op: spin, args: [1]}"},
		{"bad arity", "steps:\n  - {op: rotate, args: [1, 2]}"},
		{"bad angle mode", "angle_mode: gradians\nsteps: []"},
		{"malformed yaml", "steps: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromYAML([]byte(tt.doc)); err == nil {
				t.Error("FromYAML succeeded, want error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "prog.yaml")
	if err := os.WriteFile(yamlPath, []byte("steps:\n  - {op: push}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prog, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml) err = %v", err)
	}
	if len(prog.Steps) != 1 || prog.Steps[0].Op != "push" {
		t.Errorf("yaml program = %+v", prog.Steps)
	}

	dslPath := filepath.Join(dir, "prog.sketch")
	if err := os.WriteFile(dslPath, []byte("rotate 90deg\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	prog, err = LoadFile(dslPath)
	if err != nil {
		t.Fatalf("LoadFile(dsl) err = %v", err)
	}
	if len(prog.Steps) != 1 || math.Abs(prog.Steps[0].Args[0]-math.Pi/2) > epsilon {
		t.Errorf("dsl program = %+v", prog.Steps)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile of missing file succeeded")
	}
}
