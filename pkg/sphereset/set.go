// Package sphereset defines the sphere-set model consumed by the grid
// engine: an index-aligned collection of centers and radii plus the grid
// spacing chosen for the computation. The set is the system's external
// boundary; it owns input flexibility (uniform-radius broadcast, per-width
// buffer views) and validation, so the engine underneath can assume its
// preconditions hold.
package sphereset

import "github.com/chazu/volgrid/pkg/grid"

// Sphere is one sphere: a world-space center and a non-negative radius.
type Sphere struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// Set is a collection of spheres with a grid spacing. The zero value is an
// empty set with the default spacing. A Set is not safe for concurrent
// mutation; the engine only ever reads it.
type Set struct {
	coords  []float64 // flat [x1,y1,z1, x2,y2,z2, ...]
	radii   []float64 // one entry per sphere, aligned with coords
	spacing float64   // 0 means grid.DefaultSpacing
}

// New returns an empty sphere set.
func New() *Set {
	return &Set{}
}

// FromSpheres builds a set from individual spheres.
func FromSpheres(spheres []Sphere) *Set {
	s := New()
	for _, sp := range spheres {
		s.Add(sp)
	}
	return s
}

// NewUniform builds a set where every sphere shares one radius. This is the
// scalar-radius broadcast convenience: callers with homogeneous probes
// (e.g. a solvent radius) supply centers only.
func NewUniform(centers [][3]float64, radius float64) *Set {
	s := New()
	for _, c := range centers {
		s.Add(Sphere{Center: c, Radius: radius})
	}
	return s
}

// Add appends one sphere to the set.
func (s *Set) Add(sp Sphere) {
	s.coords = append(s.coords, sp.Center[0], sp.Center[1], sp.Center[2])
	s.radii = append(s.radii, sp.Radius)
}

// Len returns the number of spheres.
func (s *Set) Len() int {
	return len(s.radii)
}

// Sphere returns the i-th sphere.
func (s *Set) Sphere(i int) Sphere {
	return Sphere{
		Center: [3]float64{s.coords[3*i], s.coords[3*i+1], s.coords[3*i+2]},
		Radius: s.radii[i],
	}
}

// Spheres returns all spheres as a fresh slice.
func (s *Set) Spheres() []Sphere {
	out := make([]Sphere, s.Len())
	for i := range out {
		out[i] = s.Sphere(i)
	}
	return out
}

// SetSpacing chooses the grid spacing for this set. Values <= 0 are caught
// by Validate, not here.
func (s *Set) SetSpacing(h float64) {
	s.spacing = h
}

// Spacing returns the chosen grid spacing, falling back to
// grid.DefaultSpacing when none was set.
func (s *Set) Spacing() float64 {
	if s.spacing == 0 {
		return grid.DefaultSpacing
	}
	return s.spacing
}

// Coords returns the flat coordinate buffer. The engine treats it as
// read-only; callers must not mutate it during a computation.
func (s *Set) Coords() []float64 {
	return s.coords
}

// Radii returns the radius buffer, index-aligned with Coords.
func (s *Set) Radii() []float64 {
	return s.radii
}

// Coords32 returns a single-precision copy of the coordinate buffer for
// the float32 engine instantiation.
func (s *Set) Coords32() []float32 {
	out := make([]float32, len(s.coords))
	for i, v := range s.coords {
		out[i] = float32(v)
	}
	return out
}

// Radii32 returns a single-precision copy of the radius buffer.
func (s *Set) Radii32() []float32 {
	out := make([]float32, len(s.radii))
	for i, v := range s.radii {
		out[i] = float32(v)
	}
	return out
}
