package engine

import (
	"strings"
	"testing"

	"github.com/chazu/volgrid/pkg/sphereset"
)

func evalOK(t *testing.T, source string) *setResult {
	t.Helper()
	eng := NewEngine()
	set, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	return &setResult{t: t, set: set}
}

func evalFails(t *testing.T, source string) []EvalError {
	t.Helper()
	eng := NewEngine()
	set, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if set != nil {
		t.Fatal("expected nil set on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected eval errors, got none")
	}
	return evalErrs
}

type setResult struct {
	t   *testing.T
	set *sphereset.Set
}

func (r *setResult) wantLen(n int) {
	r.t.Helper()
	if r.set.Len() != n {
		r.t.Fatalf("got %d spheres, want %d", r.set.Len(), n)
	}
}

func (r *setResult) wantSphere(i int, cx, cy, cz, radius float64) {
	r.t.Helper()
	sp := r.set.Sphere(i)
	if sp.Center[0] != cx || sp.Center[1] != cy || sp.Center[2] != cz {
		r.t.Errorf("sphere %d center = %v, want [%v %v %v]", i, sp.Center, cx, cy, cz)
	}
	if sp.Radius != radius {
		r.t.Errorf("sphere %d radius = %v, want %v", i, sp.Radius, radius)
	}
}

func TestSphereKeywordForm(t *testing.T) {
	r := evalOK(t, `(sphere :at (vec3 1.5 -2.0 0.25) :radius 1.4)`)
	r.wantLen(1)
	r.wantSphere(0, 1.5, -2.0, 0.25, 1.4)
}

func TestSpherePositionalForm(t *testing.T) {
	r := evalOK(t, `(sphere 1 2 3 0.5)`)
	r.wantLen(1)
	r.wantSphere(0, 1, 2, 3, 0.5)
}

func TestSphereIntegerCoordinates(t *testing.T) {
	// Integer literals must coerce to float64 coordinates.
	r := evalOK(t, `(sphere :at (vec3 0 0 0) :radius 2)`)
	r.wantLen(1)
	r.wantSphere(0, 0, 0, 0, 2)
}

func TestSphereMultiple(t *testing.T) {
	r := evalOK(t, `
(sphere 0 0 0 1.0)
(sphere 3 0 0 1.0)
(sphere :at (vec3 0 3 0) :radius 0.5)
`)
	r.wantLen(3)
	r.wantSphere(2, 0, 3, 0, 0.5)
}

func TestSphereNegativeRadiusRejected(t *testing.T) {
	errs := evalFails(t, `(sphere 0 0 0 -1.0)`)
	if !containsMessage(errs, "non-negative") {
		t.Errorf("expected non-negative radius error, got: %v", errs)
	}
}

func TestSphereZeroRadiusAllowed(t *testing.T) {
	// Zero radius is valid input; validation reports it as a warning later.
	r := evalOK(t, `(sphere 0 0 0 0)`)
	r.wantLen(1)
}

func TestSphereMissingRadius(t *testing.T) {
	errs := evalFails(t, `(sphere :at (vec3 0 0 0))`)
	if !containsMessage(errs, "radius") {
		t.Errorf("expected missing radius error, got: %v", errs)
	}
}

func TestSphereMixedFormRejected(t *testing.T) {
	errs := evalFails(t, `(sphere 1 2 :radius 0.5)`)
	if len(errs) == 0 {
		t.Fatal("expected error for mixed positional/keyword args")
	}
}

func TestVec3WrongArity(t *testing.T) {
	errs := evalFails(t, `(sphere :at (vec3 1 2) :radius 1.0)`)
	if !containsMessage(errs, "3 numbers") {
		t.Errorf("expected vec3 arity error, got: %v", errs)
	}
}

func TestVec3NonNumericComponent(t *testing.T) {
	errs := evalFails(t, `(sphere :at (vec3 1 "two" 3) :radius 1.0)`)
	if !containsMessage(errs, "expected number") {
		t.Errorf("expected number type error, got: %v", errs)
	}
}

func TestGridSpacingKebab(t *testing.T) {
	r := evalOK(t, `
(grid-spacing 0.05)
(sphere 0 0 0 1)
`)
	if r.set.Spacing() != 0.05 {
		t.Errorf("spacing = %v, want 0.05", r.set.Spacing())
	}
}

func TestSpacingAlias(t *testing.T) {
	r := evalOK(t, `(spacing 0.2)`)
	if r.set.Spacing() != 0.2 {
		t.Errorf("spacing = %v, want 0.2", r.set.Spacing())
	}
}

func TestGridSpacingNonPositiveRejected(t *testing.T) {
	errs := evalFails(t, `(grid-spacing 0)`)
	if !containsMessage(errs, "> 0") {
		t.Errorf("expected positive spacing error, got: %v", errs)
	}
	errs = evalFails(t, `(grid-spacing -0.1)`)
	if !containsMessage(errs, "> 0") {
		t.Errorf("expected positive spacing error, got: %v", errs)
	}
}

func TestLattice(t *testing.T) {
	r := evalOK(t, `(lattice :origin (vec3 0 0 0) :step 2.0 :count 3 :radius 0.5)`)
	r.wantLen(27)
	// First sphere at origin, last at (count-1)*step along each axis.
	r.wantSphere(0, 0, 0, 0, 0.5)
	r.wantSphere(26, 4, 4, 4, 0.5)
}

func TestLatticeDefaults(t *testing.T) {
	// Origin defaults to (0,0,0), step to 1.0.
	r := evalOK(t, `(lattice :count 2 :radius 0.25)`)
	r.wantLen(8)
	r.wantSphere(7, 1, 1, 1, 0.25)
}

func TestLatticeMissingCount(t *testing.T) {
	errs := evalFails(t, `(lattice :radius 0.5)`)
	if !containsMessage(errs, "count") {
		t.Errorf("expected count error, got: %v", errs)
	}
}

func TestLispVariables(t *testing.T) {
	// The full language is available: variables and arithmetic can build scenes.
	r := evalOK(t, `
(def r 1.0)
(def spacing-x 2.5)
(sphere 0 0 0 r)
(sphere spacing-x 0 0 r)
(sphere (* 2 spacing-x) 0 0 r)
`)
	r.wantLen(3)
	r.wantSphere(2, 5, 0, 0, 1.0)
}

func TestSemicolonComments(t *testing.T) {
	r := evalOK(t, `
; a water-like scene
(sphere 0 0 0 1.52)   ; oxygen
(sphere 0.96 0 0 1.2) ; hydrogen
`)
	r.wantLen(2)
}

func containsMessage(errs []EvalError, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "keyword",
			in:   `(sphere :at p :radius 1)`,
			want: `(sphere "__kw_at" p "__kw_radius" 1)`,
		},
		{
			name: "kebab identifier",
			in:   `(grid-spacing 0.1)`,
			want: `(grid_spacing 0.1)`,
		},
		{
			name: "minus stays minus",
			in:   `(- 5 3)`,
			want: `(- 5 3)`,
		},
		{
			name: "subtraction between numbers untouched",
			in:   `(+ 1 -2)`,
			want: `(+ 1 -2)`,
		},
		{
			name: "semicolon comment",
			in:   "(sphere 0 0 0 1) ; note\n",
			want: "(sphere 0 0 0 1) // note\n",
		},
		{
			name: "keyword inside string untouched",
			in:   `(print ":radius")`,
			want: `(print ":radius")`,
		},
		{
			name: "kebab inside string untouched",
			in:   `(print "grid-spacing")`,
			want: `(print "grid-spacing")`,
		},
		{
			name: "assignment operator preserved",
			in:   `(def x := 5)`,
			want: `(def x := 5)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.in)
			if got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
