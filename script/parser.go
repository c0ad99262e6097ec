package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/gogpu/sketch"
)

// dslLexer tokenizes the one-command-per-line transform language:
//
//	# comments run to end of line
//	translate 40 60
//	rotate 45deg
//	push
//	scale 2 3
//	pop
//
// Angles take an optional unit suffix, deg or rad; bare numbers are
// radians.
var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
})

type dslProgram struct {
	Commands []*dslCommand `parser:"@@*"`
}

type dslCommand struct {
	Name string    `parser:"@Ident"`
	Args []*dslArg `parser:"@@*"`
}

type dslArg struct {
	Value float64 `parser:"@Number"`
	Unit  string  `parser:"@('deg' | 'rad')?"`
}

var dslParser = participle.MustBuild[dslProgram](
	participle.Lexer(dslLexer),
	participle.Elide("Comment", "Whitespace"),
)

// FromDSL parses the text transform language into a Program. Arguments
// suffixed deg are converted to radians; unit suffixes are only valid
// on angle positions.
func FromDSL(input string) (*Program, error) {
	doc, err := dslParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("script: parse error: %w", err)
	}

	prog := &Program{Steps: make([]Step, 0, len(doc.Commands))}
	for i, cmd := range doc.Commands {
		spec, err := checkStep(cmd.Name, len(cmd.Args))
		if err != nil {
			return nil, fmt.Errorf("script: command %d: %w", i, err)
		}
		args := make([]float64, len(cmd.Args))
		for j, arg := range cmd.Args {
			v := arg.Value
			if arg.Unit != "" && !isAngleArg(spec, j) {
				return nil, fmt.Errorf("script: command %d (%s): %w", i, cmd.Name,
					&sketch.ArgumentError{Op: cmd.Name, Reason: fmt.Sprintf("arg %d takes no unit suffix", j)})
			}
			if arg.Unit == "deg" {
				v = sketch.ToRadians(v)
			}
			args[j] = v
		}
		prog.Steps = append(prog.Steps, Step{Op: cmd.Name, Args: args})
	}
	return prog, nil
}

func isAngleArg(spec opSpec, idx int) bool {
	for _, a := range spec.angleArgs {
		if a == idx {
			return true
		}
	}
	return false
}
