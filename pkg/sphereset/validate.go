package sphereset

import (
	"fmt"
	"math"
)

// ValidationSeverity indicates whether a validation finding blocks the
// volume computation or is merely advisory.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks computation
	SeverityWarning                           // advisory
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Index    int    // which sphere has the problem (-1 if set-level)
	Message  string // human-readable description
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] sphere %d: %s", e.Severity, e.Index, e.Message)
}

// ValidationWarning describes a non-blocking advisory finding.
type ValidationWarning struct {
	Index   int
	Message string
}

// ValidationResult bundles blocking errors and advisory warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// OK reports whether the set may be handed to the engine.
func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate runs the structural checks the engine's precondition contract
// requires: at least one sphere, finite coordinates, non-negative finite
// radii, positive spacing. It is read-only and never mutates the set.
func Validate(s *Set) []ValidationError {
	var errs []ValidationError

	if s.Len() == 0 {
		errs = append(errs, ValidationError{
			Index:    -1,
			Message:  "sphere set is empty",
			Severity: SeverityError,
		})
	}

	if h := s.Spacing(); !(h > 0) || math.IsInf(h, 0) || math.IsNaN(h) {
		errs = append(errs, ValidationError{
			Index:    -1,
			Message:  fmt.Sprintf("grid spacing must be a positive finite number, got %v", h),
			Severity: SeverityError,
		})
	}

	for i := 0; i < s.Len(); i++ {
		sp := s.Sphere(i)
		for a, v := range sp.Center {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, ValidationError{
					Index:    i,
					Message:  fmt.Sprintf("center axis %d is not finite: %v", a, v),
					Severity: SeverityError,
				})
			}
		}
		if math.IsNaN(sp.Radius) || math.IsInf(sp.Radius, 0) {
			errs = append(errs, ValidationError{
				Index:    i,
				Message:  fmt.Sprintf("radius is not finite: %v", sp.Radius),
				Severity: SeverityError,
			})
		} else if sp.Radius < 0 {
			errs = append(errs, ValidationError{
				Index:    i,
				Message:  fmt.Sprintf("radius must be non-negative, got %v", sp.Radius),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

// ValidateAll runs structural validation plus sampling-quality advisories
// and returns the findings separated by severity.
func ValidateAll(s *Set) ValidationResult {
	var result ValidationResult
	result.Errors = Validate(s)

	h := s.Spacing()
	for i := 0; i < s.Len(); i++ {
		r := s.Sphere(i).Radius
		switch {
		case r == 0:
			result.Warnings = append(result.Warnings, ValidationWarning{
				Index:   i,
				Message: "zero radius: sphere occupies no cells",
			})
		case r > 0 && h > 0 && r < h:
			result.Warnings = append(result.Warnings, ValidationWarning{
				Index: i,
				Message: fmt.Sprintf("radius %v is below the grid spacing %v: sphere is undersampled",
					r, h),
			})
		}
	}
	return result
}
