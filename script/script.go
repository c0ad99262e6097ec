// Package script decodes transform programs and replays them against a
// sketch.Context.
//
// Two source formats decode to the same [Program]: a YAML document
// ([FromYAML]) and a small one-command-per-line text language
// ([FromDSL]). Angle arguments are normalized to radians at decode
// time, so a Program means the same thing regardless of the angle mode
// of the context it is applied to.
package script

import (
	"fmt"

	"github.com/gogpu/sketch"
)

// Step is one decoded transform operation. Angle arguments are always
// radians.
type Step struct {
	Op   string
	Args []float64
}

// Program is a decoded sequence of transform operations.
type Program struct {
	Steps []Step
}

// opSpec describes an operation's argument contract: the accepted arity
// range and which argument positions hold angles (for unit conversion
// at decode time).
type opSpec struct {
	minArgs, maxArgs int
	angleArgs        []int
}

var opSpecs = map[string]opSpec{
	"translate":    {minArgs: 2, maxArgs: 3},
	"rotate":       {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"rotate-x":     {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"rotate-y":     {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"rotate-z":     {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"rotate-axis":  {minArgs: 4, maxArgs: 4, angleArgs: []int{0}},
	"scale":        {minArgs: 1, maxArgs: 3},
	"shear-x":      {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"shear-y":      {minArgs: 1, maxArgs: 1, angleArgs: []int{0}},
	"apply-matrix": {minArgs: 6, maxArgs: 6},
	"reset-matrix": {},
	"push":         {},
	"pop":          {},
}

// checkStep validates an operation name and arity, returning its spec.
func checkStep(op string, nargs int) (opSpec, error) {
	spec, ok := opSpecs[op]
	if !ok {
		return opSpec{}, &sketch.ArgumentError{Op: op, Reason: "unknown operation"}
	}
	if nargs < spec.minArgs || nargs > spec.maxArgs {
		return opSpec{}, &sketch.ArgumentError{
			Op:     op,
			Reason: fmt.Sprintf("want %d to %d args, got %d", spec.minArgs, spec.maxArgs, nargs),
		}
	}
	return spec, nil
}

// Apply replays the program against dc. The context's angle mode is
// forced to radians for the duration (steps are pre-normalized) and
// restored afterwards. The first failing step aborts the replay.
func (p *Program) Apply(dc *sketch.Context) error {
	prior := dc.CurrentAngleMode()
	dc.AngleMode(sketch.Radians)
	defer dc.AngleMode(prior)

	for i, step := range p.Steps {
		if err := applyStep(dc, step); err != nil {
			return fmt.Errorf("script: step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

func applyStep(dc *sketch.Context, step Step) error {
	// Steps may be hand-built rather than decoded, so the name and
	// arity contract is re-checked before any argument access.
	if _, err := checkStep(step.Op, len(step.Args)); err != nil {
		return err
	}

	a := step.Args
	switch step.Op {
	case "translate":
		if len(a) == 3 {
			dc.Translate3(a[0], a[1], a[2])
		} else {
			dc.Translate(a[0], a[1])
		}
	case "rotate":
		dc.Rotate(a[0])
	case "rotate-x":
		return dc.RotateX(a[0])
	case "rotate-y":
		return dc.RotateY(a[0])
	case "rotate-z":
		return dc.RotateZ(a[0])
	case "rotate-axis":
		return dc.RotateAxis(a[0], sketch.Vec(a[1], a[2], a[3]))
	case "scale":
		f, err := sketch.ScaleValues(a...)
		if err != nil {
			return err
		}
		dc.Scale(f)
	case "shear-x":
		dc.ShearX(a[0])
	case "shear-y":
		dc.ShearY(a[0])
	case "apply-matrix":
		return dc.ApplyMatrix(a[0], a[1], a[2], a[3], a[4], a[5])
	case "reset-matrix":
		dc.ResetMatrix()
	case "push":
		dc.Push()
	case "pop":
		return dc.Pop()
	default:
		return &sketch.ArgumentError{Op: step.Op, Reason: "unknown operation"}
	}
	return nil
}
