package grid

import "errors"

// ErrEmptyInput reports that a reduction was asked for zero spheres.
// Zero spheres is a caller mistake distinct from "spheres with zero total
// volume", so it is propagated rather than silently returning 0.
var ErrEmptyInput = errors.New("empty input: no spheres supplied")

// ErrGridTooLarge reports that the occupancy buffer could not be allocated,
// typically because the grid spacing is too fine relative to the spatial
// extent of the sphere set. Retrying with identical inputs reproduces the
// identical failure; the caller must coarsen the spacing.
var ErrGridTooLarge = errors.New("grid too large: occupancy buffer allocation failed")
