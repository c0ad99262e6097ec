// Command sketchdemo replays transform scripts against a sketch context
// and prints the resulting current-transform matrix.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/script"
)

var (
	rendererKind string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sketchdemo",
	Short: "Transform script runner for the sketch library",
	Long: `sketchdemo decodes a transform program (YAML or the one-command-per-line
DSL) and replays it against a 2D or 3D transform stack.

Examples:
  sketchdemo run spiral.yaml
  sketchdemo run --renderer 3d orbit.sketch`,
	Version: sketch.Version,
}

var runCmd = &cobra.Command{
	Use:   "run <script-file>",
	Short: "Replay a transform script and print the resulting matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sketch library version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sketchdemo %s\n", sketch.Version)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	runCmd.Flags().StringVarP(&rendererKind, "renderer", "r", "2d",
		"transform stack to drive: 2d or 3d")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func runScript(cmd *cobra.Command, args []string) error {
	prog, err := script.LoadFile(args[0])
	if err != nil {
		return err
	}

	opts := []sketch.ContextOption{}
	if verbose {
		opts = append(opts, sketch.WithLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	switch rendererKind {
	case "2d":
	case "3d":
		opts = append(opts, sketch.WithRenderer(sketch.NewTransform3D()))
	default:
		return fmt.Errorf("unknown renderer %q: want 2d or 3d", rendererKind)
	}

	dc := sketch.NewContext(opts...)
	if err := prog.Apply(dc); err != nil {
		return err
	}

	if m, ok := dc.Matrix(); ok {
		fmt.Printf("| %10.4f %10.4f %10.4f |\n", m.A, m.B, m.C)
		fmt.Printf("| %10.4f %10.4f %10.4f |\n", m.D, m.E, m.F)
		return nil
	}
	m, _ := dc.Matrix4()
	for row := 0; row < 4; row++ {
		fmt.Print("|")
		for col := 0; col < 4; col++ {
			fmt.Printf(" %10.4f", m.At(row, col))
		}
		fmt.Println(" |")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
