package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestE2EWaterExample exercises the full pipeline: Lisp source → engine →
// sphere set → grid volume. This is the same path the CLI takes.
func TestE2EWaterExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/water.volg")
	if err != nil {
		t.Fatalf("failed to read water.volg: %v", err)
	}

	result := app.Run(string(source), Options{})

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	if result.SphereCount != 3 {
		t.Errorf("sphere count = %d, want 3", result.SphereCount)
	}
	if result.Spacing != 0.05 {
		t.Errorf("spacing = %v, want 0.05", result.Spacing)
	}

	// The union must be larger than the oxygen sphere alone but smaller
	// than the sum of all three (the hydrogens overlap the oxygen).
	oxygen := 4.0 / 3.0 * math.Pi * 1.52 * 1.52 * 1.52
	hydrogen := 4.0 / 3.0 * math.Pi * 1.2 * 1.2 * 1.2
	if result.Volume <= oxygen {
		t.Errorf("volume %v should exceed oxygen alone %v", result.Volume, oxygen)
	}
	if result.Volume >= oxygen+2*hydrogen {
		t.Errorf("volume %v should be below the non-overlapping sum %v",
			result.Volume, oxygen+2*hydrogen)
	}
}

func TestE2EDimerMonteCarloCheck(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/dimer.volg")
	if err != nil {
		t.Fatalf("failed to read dimer.volg: %v", err)
	}

	result := app.Run(string(source), Options{
		Check:   true,
		Samples: 200000,
		Seed:    42,
	})

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.MonteCarlo == nil {
		t.Fatal("expected Monte Carlo result with Check option")
	}

	// The two estimators measure the same union; they should agree to
	// within sampling noise plus grid discretization error.
	diff := math.Abs(result.MonteCarlo.Volume - result.Volume)
	tol := 5*result.MonteCarlo.StdErr + 0.02*result.Volume
	if diff > tol {
		t.Errorf("grid %v vs monte carlo %v: diff %v exceeds tol %v",
			result.Volume, result.MonteCarlo.Volume, diff, tol)
	}
}

func TestE2ESTLExport(t *testing.T) {
	app := NewApp()
	path := filepath.Join(t.TempDir(), "dimer.stl")

	result := app.Run(`(sphere 0 0 0 1.0) (sphere 1.2 0 0 1.0)`, Options{
		STLPath: path,
	})

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.STLPath != path {
		t.Errorf("STLPath = %q, want %q", result.STLPath, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat STL file: %v", err)
	}
	// Binary STL: 80-byte header + 4-byte count + at least one triangle.
	if info.Size() < 84+50 {
		t.Errorf("STL file size = %d, want at least %d", info.Size(), 84+50)
	}
}

func TestE2ESpacingOverride(t *testing.T) {
	app := NewApp()

	source := `
(grid-spacing 0.2)
(sphere 0 0 0 1.0)
`
	coarse := app.Run(source, Options{})
	fine := app.Run(source, Options{Spacing: 0.05})

	if len(coarse.Errors) > 0 || len(fine.Errors) > 0 {
		t.Fatalf("unexpected errors: %v / %v", coarse.Errors, fine.Errors)
	}
	if coarse.Spacing != 0.2 {
		t.Errorf("coarse spacing = %v, want 0.2 from the script", coarse.Spacing)
	}
	if fine.Spacing != 0.05 {
		t.Errorf("fine spacing = %v, want 0.05 from the override", fine.Spacing)
	}

	// The finer grid must be the more accurate of the two.
	exact := 4.0 / 3.0 * math.Pi
	if math.Abs(fine.Volume-exact) > math.Abs(coarse.Volume-exact) {
		t.Errorf("finer grid less accurate: fine %v, coarse %v, exact %v",
			fine.Volume, coarse.Volume, exact)
	}
}

func TestE2ESinglePrecision(t *testing.T) {
	app := NewApp()

	source := `(sphere 0 0 0 1.0)`
	double := app.Run(source, Options{})
	single := app.Run(source, Options{Single: true})

	if len(double.Errors) > 0 || len(single.Errors) > 0 {
		t.Fatalf("unexpected errors: %v / %v", double.Errors, single.Errors)
	}
	if double.Volume <= 0 || single.Volume <= 0 {
		t.Fatalf("volumes must be positive: %v / %v", double.Volume, single.Volume)
	}
	if rel := math.Abs(single.Volume-double.Volume) / double.Volume; rel > 0.01 {
		t.Errorf("float32 and float64 volumes differ by %v%%, want < 1%%", rel*100)
	}
}

// TestE2EEmptySource ensures an empty script is rejected by validation
// before the volume computation runs.
func TestE2EEmptySource(t *testing.T) {
	app := NewApp()
	result := app.Run("", Options{})

	if len(result.Errors) == 0 {
		t.Fatal("expected validation error for empty scene")
	}
	if !strings.Contains(result.Errors[0].Message, "empty") {
		t.Errorf("expected empty-set error, got: %v", result.Errors[0].Message)
	}
	if result.Volume != 0 {
		t.Errorf("volume = %v, want 0 on error", result.Volume)
	}
}

func TestE2ESyntaxErrorHasLineInfo(t *testing.T) {
	app := NewApp()
	result := app.Run("(sphere 0 0 0\n  1.0", Options{})

	if len(result.Errors) == 0 {
		t.Fatal("expected syntax error")
	}
}

func TestE2EZeroRadiusWarning(t *testing.T) {
	app := NewApp()
	result := app.Run(`
(sphere 0 0 0 1.0)
(sphere 3 0 0 0)
`, Options{})

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a zero-radius warning")
	}
	if !strings.Contains(result.Warnings[0].Message, "zero radius") {
		t.Errorf("unexpected warning: %v", result.Warnings[0].Message)
	}
}
