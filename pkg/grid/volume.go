package grid

import "fmt"

// DefaultSpacing is the grid spacing used when the caller does not choose
// one. It is the accuracy/performance knob: halving the spacing roughly
// halves the boundary error and multiplies memory use by eight.
const DefaultSpacing = 0.1

// VolumeOfSpheres estimates the total volume occupied by a set of possibly
// overlapping spheres. coords is a flat buffer of 3 coordinates per sphere,
// radii holds one non-negative radius per sphere, index-aligned with coords.
// Both buffers are read-only for the duration of the call.
//
// The whole computation runs in the width T; only the final volume is
// promoted to float64. One call computes one volume to completion with no
// suspension points; concurrent calls are independent.
//
// Fails with ErrEmptyInput when no spheres are supplied and with
// ErrGridTooLarge when the occupancy grid cannot be allocated. Neither
// failure leaves a partial result.
func VolumeOfSpheres[T Float](coords, radii []T, spacing T) (float64, error) {
	if spacing <= 0 {
		return 0, fmt.Errorf("grid spacing must be > 0, got %v", spacing)
	}
	if len(coords) != 3*len(radii) {
		return 0, fmt.Errorf("coords/radii mismatch: %d coordinates for %d radii",
			len(coords), len(radii))
	}

	maxRadius, err := MaxValue(radii)
	if err != nil {
		return 0, err
	}

	cushion := spacing + maxRadius
	frame, err := BuildFrame(coords, cushion, spacing)
	if err != nil {
		return 0, err
	}

	occupied, err := Voxelize(coords, radii, frame)
	if err != nil {
		return 0, err
	}

	volume := T(occupied) * spacing * spacing * spacing
	return float64(volume), nil
}
