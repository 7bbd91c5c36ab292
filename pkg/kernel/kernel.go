// Package kernel defines the abstract geometry kernel interface used for
// surface output. The grid engine never needs a kernel; the kernel exists
// so the union-of-spheres being measured can also be meshed and exported
// for inspection. The abstraction allows swapping backends without
// changing the rest of the system.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface, scoped to what a
// union-of-spheres system needs.
type Kernel interface {
	// Sphere creates a sphere of the given radius centered at the origin.
	Sphere(radius float64) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// Union returns the union of two solids.
	Union(a, b Solid) Solid

	// ToMesh converts a solid to a triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
