package grid

import "math"

// BuildFrame derives the grid frame covering every sphere in the set.
// The cushion (grid spacing plus largest radius) expands the bounding box
// of the centers so that every sphere's full extent, plus one spacing unit
// of margin against floor/ceil truncation, lies strictly inside the grid.
// No sphere silhouette may be clipped by a grid boundary; violating that
// undercounts volume.
//
// Per axis: lo = floor((min-cushion)/spacing), hi = ceil((max+cushion)/spacing),
// extent = hi-lo+1 cells, origin = lo*spacing.
func BuildFrame[T Float](coords []T, cushion, spacing T) (Frame[T], error) {
	minC, maxC, err := Bounds(coords)
	if err != nil {
		return Frame[T]{}, err
	}

	xLo := int(math.Floor(float64((minC.X - cushion) / spacing)))
	xHi := int(math.Ceil(float64((maxC.X + cushion) / spacing)))
	yLo := int(math.Floor(float64((minC.Y - cushion) / spacing)))
	yHi := int(math.Ceil(float64((maxC.Y + cushion) / spacing)))
	zLo := int(math.Floor(float64((minC.Z - cushion) / spacing)))
	zHi := int(math.Ceil(float64((maxC.Z + cushion) / spacing)))

	return Frame[T]{
		Origin:  Triple[T]{X: T(xLo) * spacing, Y: T(yLo) * spacing, Z: T(zLo) * spacing},
		Spacing: spacing,
		Extent:  Extent{X: xHi - xLo + 1, Y: yHi - yLo + 1, Z: zHi - zLo + 1},
	}, nil
}
