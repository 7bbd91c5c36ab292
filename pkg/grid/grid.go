// Package grid implements the voxel occupancy engine at the core of volgrid.
// It rasterizes a set of possibly-overlapping spheres onto a cubic grid and
// converts the occupied-cell count into a volume estimate. The estimate
// approaches the true union volume as the grid spacing shrinks, with O(h)
// boundary error proportional to the total sphere surface area.
//
// The engine is width-polymorphic: all arithmetic runs in the caller's
// chosen floating-point width (float32 or float64) and only the final
// volume is promoted to float64.
package grid

// Float constrains the coordinate width of the engine.
type Float interface {
	~float32 | ~float64
}

// Triple holds three scalars of the chosen width. It is used both for
// real-world positions and for grid-space origins.
type Triple[T Float] struct {
	X, Y, Z T
}

// Extent holds the grid cell counts along each axis. It defines the shape
// of the flat occupancy buffer.
type Extent struct {
	X, Y, Z int
}

// CellCount returns X*Y*Z, the occupancy buffer length. The second return
// is false when the product does not fit in an int.
func (e Extent) CellCount() (int, bool) {
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0, false
	}
	if e.X == 0 || e.Y == 0 || e.Z == 0 {
		return 0, true
	}
	n := e.X
	for _, m := range [2]int{e.Y, e.Z} {
		if n > maxInt/m {
			return 0, false
		}
		n *= m
	}
	return n, true
}

const maxInt = int(^uint(0) >> 1)

// Frame is the affine mapping between real-world coordinates and grid-cell
// indices: grid = (world - Origin) / Spacing. A Frame is immutable once
// built.
type Frame[T Float] struct {
	Origin  Triple[T]
	Spacing T
	Extent  Extent
}
