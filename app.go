package main

import (
	"log"

	"github.com/chazu/volgrid/pkg/engine"
	"github.com/chazu/volgrid/pkg/estimate"
	"github.com/chazu/volgrid/pkg/grid"
	"github.com/chazu/volgrid/pkg/kernel"
	"github.com/chazu/volgrid/pkg/kernel/sdfx"
	"github.com/chazu/volgrid/pkg/sphereset"
	"github.com/chazu/volgrid/pkg/tessellate"
)

// App wires the scene engine, the voxel volume computation, and the
// geometry kernel into one pipeline.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// Options controls a single pipeline run.
type Options struct {
	Spacing float64 // grid spacing override; 0 keeps the script's choice
	Single  bool    // compute in float32 instead of float64
	STLPath string  // write a surface mesh here when non-empty
	Check   bool    // cross-check the volume with Monte Carlo sampling
	Samples int     // Monte Carlo sample count when Check is set
	Seed    int64   // Monte Carlo seed; 0 means time-based
}

// EvalErrorData is a serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// RunResult is the full result of a pipeline run.
type RunResult struct {
	Volume      float64          `json:"volume"`
	Spacing     float64          `json:"spacing"`
	SphereCount int              `json:"sphereCount"`
	MonteCarlo  *estimate.Result `json:"monteCarlo,omitempty"`
	STLPath     string           `json:"stlPath,omitempty"`
	Errors      []EvalErrorData  `json:"errors"`
	Warnings    []EvalErrorData  `json:"warnings"`
}

// NewApp creates an App with a fresh engine and the sdfx kernel.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: sdfx.New(),
	}
}

// Run evaluates Lisp source into a sphere set and computes its union
// volume on the grid. Depending on opts it also cross-checks the volume
// by Monte Carlo sampling and writes an STL surface mesh.
func (a *App) Run(source string, opts Options) RunResult {
	result := RunResult{
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a sphere set.
	set, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	if opts.Spacing > 0 {
		set.SetSpacing(opts.Spacing)
	}
	result.SphereCount = set.Len()
	result.Spacing = set.Spacing()

	// Step 2: Validate the set; warnings are advisory, errors stop the run.
	vr := sphereset.ValidateAll(set)
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Message})
	}
	if !vr.OK() {
		for _, e := range vr.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e.Error()})
		}
		return result
	}

	// Step 3: Compute the union volume on the occupancy grid.
	if opts.Single {
		result.Volume, err = grid.VolumeOfSpheres(set.Coords32(), set.Radii32(), float32(set.Spacing()))
	} else {
		result.Volume, err = grid.VolumeOfSpheres(set.Coords(), set.Radii(), set.Spacing())
	}
	if err != nil {
		log.Printf("VolumeOfSpheres error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 4: Optional Monte Carlo cross-check.
	if opts.Check {
		samples := opts.Samples
		if samples <= 0 {
			samples = 1000000
		}
		mc, err := estimate.MonteCarlo(set, samples, opts.Seed)
		if err != nil {
			log.Printf("MonteCarlo error: %v", err)
			result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
			return result
		}
		result.MonteCarlo = &mc
	}

	// Step 5: Optional surface mesh export.
	if opts.STLPath != "" {
		mesh, err := tessellate.Tessellate(set, a.kernel)
		if err != nil {
			log.Printf("Tessellate error: %v", err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "tessellation failed: " + err.Error(),
			})
			return result
		}
		if err := mesh.SaveSTL(opts.STLPath); err != nil {
			log.Printf("SaveSTL error: %v", err)
			result.Errors = append(result.Errors, EvalErrorData{
				Message: "stl export failed: " + err.Error(),
			})
			return result
		}
		result.STLPath = opts.STLPath
	}

	return result
}
