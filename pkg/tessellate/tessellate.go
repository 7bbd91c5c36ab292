// Package tessellate converts a sphere set into a triangle mesh of its
// union surface using a geometry kernel. One mesh covers the whole union;
// the grid engine does not consume it, but exporting the surface lets a
// caller inspect exactly which solid was measured.
package tessellate

import (
	"fmt"

	"github.com/chazu/volgrid/pkg/kernel"
	"github.com/chazu/volgrid/pkg/sphereset"
)

// Tessellate builds the union of all spheres in the set and meshes it with
// the provided geometry kernel. Spheres with non-positive radius have no
// surface and are skipped. The tessellator is read-only and never mutates
// the set.
func Tessellate(set *sphereset.Set, k kernel.Kernel) (*kernel.Mesh, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("tessellate: empty sphere set")
	}

	var union kernel.Solid
	solids := 0
	for i := 0; i < set.Len(); i++ {
		sp := set.Sphere(i)
		if sp.Radius <= 0 {
			continue
		}
		solid := k.Translate(k.Sphere(sp.Radius), sp.Center[0], sp.Center[1], sp.Center[2])
		if union == nil {
			union = solid
		} else {
			union = k.Union(union, solid)
		}
		solids++
	}
	if union == nil {
		return nil, fmt.Errorf("tessellate: no sphere has a positive radius")
	}

	mesh, err := k.ToMesh(union)
	if err != nil {
		return nil, fmt.Errorf("tessellate: ToMesh failed: %w", err)
	}
	mesh.Name = fmt.Sprintf("union-of-%d-spheres", solids)
	return mesh, nil
}
