package grid

import (
	"fmt"
	"math"
)

// Bounds scans a flat coordinate buffer [x1,y1,z1, x2,y2,z2, ...] and
// returns the per-axis minimum and maximum over all sphere centers.
// It fails with ErrEmptyInput when the buffer holds no triples.
func Bounds[T Float](coords []T) (min, max Triple[T], err error) {
	if len(coords) < 3 {
		return min, max, fmt.Errorf("bounds: %w", ErrEmptyInput)
	}

	inf := T(math.Inf(1))
	min = Triple[T]{X: inf, Y: inf, Z: inf}
	max = Triple[T]{X: -inf, Y: -inf, Z: -inf}

	for i := 0; i+2 < len(coords); i += 3 {
		x, y, z := coords[i], coords[i+1], coords[i+2]

		if x < min.X {
			min.X = x
		}
		if y < min.Y {
			min.Y = y
		}
		if z < min.Z {
			min.Z = z
		}

		if x > max.X {
			max.X = x
		}
		if y > max.Y {
			max.Y = y
		}
		if z > max.Z {
			max.Z = z
		}
	}
	return min, max, nil
}

// MaxValue returns the maximum value in vals. It fails with ErrEmptyInput
// when vals is empty. Used to size the cushion from the largest radius.
func MaxValue[T Float](vals []T) (T, error) {
	if len(vals) == 0 {
		return 0, fmt.Errorf("max value: %w", ErrEmptyInput)
	}
	maxVal := T(math.Inf(-1))
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}
