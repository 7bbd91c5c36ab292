package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

const usageText = `usage: volgrid [flags] <scene.volg>

Computes the volume of a union of spheres described by a Lisp scene
script. Pass "-" to read the script from stdin.

flags:
`

func main() {
	spacing := flag.Float64("spacing", 0, "grid spacing override (0 keeps the script's choice)")
	single := flag.Bool("single", false, "compute in float32 instead of float64")
	stlPath := flag.String("stl", "", "write a binary STL surface mesh to this path")
	check := flag.Bool("check", false, "cross-check the volume with Monte Carlo sampling")
	samples := flag.Int("samples", 1000000, "Monte Carlo sample count (with -check)")
	seed := flag.Int64("seed", 0, "Monte Carlo seed; 0 means time-based (with -check)")
	quiet := flag.Bool("quiet", false, "print only the volume")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	source, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "volgrid: %v\n", err)
		os.Exit(2)
	}

	app := NewApp()
	result := app.Run(source, Options{
		Spacing: *spacing,
		Single:  *single,
		STLPath: *stlPath,
		Check:   *check,
		Samples: *samples,
		Seed:    *seed,
	})

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				fmt.Fprintf(os.Stderr, "error: line %d: %s\n", e.Line, e.Message)
			} else {
				fmt.Fprintf(os.Stderr, "error: %s\n", e.Message)
			}
		}
		os.Exit(1)
	}

	if *quiet {
		fmt.Printf("%g\n", result.Volume)
		return
	}

	fmt.Printf("spheres:  %d\n", result.SphereCount)
	fmt.Printf("spacing:  %g\n", result.Spacing)
	fmt.Printf("volume:   %g\n", result.Volume)
	if result.MonteCarlo != nil {
		fmt.Printf("mc check: %g ± %g (%d samples)\n",
			result.MonteCarlo.Volume, result.MonteCarlo.StdErr, result.MonteCarlo.Samples)
	}
	if result.STLPath != "" {
		fmt.Printf("stl:      %s\n", result.STLPath)
	}
}

// readSource reads the scene script from a file, or from stdin when the
// path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
