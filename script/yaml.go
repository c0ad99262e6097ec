package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/sketch"
	"gopkg.in/yaml.v3"
)

// yamlProgram mirrors the YAML document layout:
//
//	angle_mode: degrees   # optional, "radians" (default) or "degrees"
//	steps:
//	  - {op: translate, args: [40, 60]}
//	  - {op: rotate, args: [45]}
//	  - {op: push}
//	  - {op: scale, args: [2, 3]}
//	  - {op: pop}
type yamlProgram struct {
	AngleMode string     `yaml:"angle_mode"`
	Steps     []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	Op   string    `yaml:"op"`
	Args []float64 `yaml:"args"`
}

// FromYAML decodes a YAML transform program. Angle arguments are
// converted to radians when the document declares angle_mode: degrees.
func FromYAML(data []byte) (*Program, error) {
	var doc yamlProgram
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("script: decoding yaml: %w", err)
	}

	degrees := false
	switch strings.ToLower(doc.AngleMode) {
	case "", "radians":
	case "degrees":
		degrees = true
	default:
		return nil, &sketch.ArgumentError{
			Op:     "angle_mode",
			Reason: fmt.Sprintf("want \"radians\" or \"degrees\", got %q", doc.AngleMode),
		}
	}

	prog := &Program{Steps: make([]Step, 0, len(doc.Steps))}
	for i, s := range doc.Steps {
		spec, err := checkStep(s.Op, len(s.Args))
		if err != nil {
			return nil, fmt.Errorf("script: step %d: %w", i, err)
		}
		args := append([]float64(nil), s.Args...)
		if degrees {
			for _, idx := range spec.angleArgs {
				args[idx] = sketch.ToRadians(args[idx])
			}
		}
		prog.Steps = append(prog.Steps, Step{Op: s.Op, Args: args})
	}
	return prog, nil
}

// LoadFile reads and decodes a program file, choosing the format by
// extension: .yaml/.yml decode as YAML, anything else as the DSL.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	}
	return FromDSL(string(data))
}
