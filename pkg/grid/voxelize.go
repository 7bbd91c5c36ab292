package grid

import (
	"fmt"
	"math"
)

// newOccupancy allocates the flat occupancy buffer, one byte flag per grid
// cell. A failed allocation surfaces as ErrGridTooLarge instead of crashing
// the process; the buffer is garbage-collected on every exit path.
func newOccupancy(cells int) (buf []byte, err error) {
	defer func() {
		if recover() != nil {
			buf = nil
			err = fmt.Errorf("allocating %d occupancy cells: %w", cells, ErrGridTooLarge)
		}
	}()
	return make([]byte, cells), nil
}

// Voxelize rasterizes every sphere onto the grid frame and returns the
// number of cells whose integer index lies inside at least one sphere.
// A cell is marked at most once; cells already marked by an earlier sphere
// are skipped before the distance test, which is the dominant optimization
// when spheres overlap.
//
// The inside test uses the cell's integer index as a point sample, not the
// cell center offset by 0.5. The index-k cell sits at grid position exactly
// k, so callers get no sub-cell accuracy beyond one grid spacing.
func Voxelize[T Float](coords, radii []T, frame Frame[T]) (int, error) {
	cells, ok := frame.Extent.CellCount()
	if !ok {
		return 0, fmt.Errorf("extent %dx%dx%d overflows: %w",
			frame.Extent.X, frame.Extent.Y, frame.Extent.Z, ErrGridTooLarge)
	}
	if cells == 0 {
		return 0, nil
	}

	occ, err := newOccupancy(cells)
	if err != nil {
		return 0, err
	}

	ex, ey, ez := frame.Extent.X, frame.Extent.Y, frame.Extent.Z
	occupied := 0

	for i := 0; i < len(radii); i++ {
		// Radius and center in grid units.
		r := radii[i] / frame.Spacing
		r2 := r * r

		c := 3 * i
		cx := (coords[c] - frame.Origin.X) / frame.Spacing
		cy := (coords[c+1] - frame.Origin.Y) / frame.Spacing
		cz := (coords[c+2] - frame.Origin.Z) / frame.Spacing

		// Sphere bounding box in cell indices, clamped to the grid.
		// The frame's cushion guarantees the sphere fits, but clamping
		// remains a required defensive bound.
		xMin, xMax := clampRange(cx, r, ex)
		yMin, yMax := clampRange(cy, r, ey)
		zMin, zMax := clampRange(cz, r, ez)

		for x := xMin; x < xMax; x++ {
			dx := T(x) - cx
			for y := yMin; y < yMax; y++ {
				dy := T(y) - cy
				row := (x*ey + y) * ez
				for z := zMin; z < zMax; z++ {
					idx := row + z
					if occ[idx] == 1 {
						continue
					}
					dz := T(z) - cz
					if dx*dx+dy*dy+dz*dz <= r2 {
						occ[idx] = 1
						occupied++
					}
				}
			}
		}
	}
	return occupied, nil
}

// clampRange returns the half-open index range [lo, hi) covered by a sphere
// of grid-space radius r centered at c, clamped to [0, extent).
func clampRange[T Float](c, r T, extent int) (lo, hi int) {
	lo = int(math.Floor(float64(c - r)))
	if lo < 0 {
		lo = 0
	}
	hi = int(math.Ceil(float64(c + r)))
	if hi > extent {
		hi = extent
	}
	return lo, hi
}
