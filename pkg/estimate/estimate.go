// Package estimate provides a Monte Carlo cross-check for the grid-based
// volume computation. It samples uniform points in the bounding box of a
// sphere set and counts how many land inside the union.
package estimate

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/chazu/volgrid/pkg/grid"
	"github.com/chazu/volgrid/pkg/sphereset"
)

// batchCount is the number of independent batches the samples are split
// into. The spread of batch estimates gives the standard error.
const batchCount = 32

// Result holds a Monte Carlo volume estimate.
type Result struct {
	Volume  float64 // estimated union volume
	StdErr  float64 // standard error of the estimate
	Samples int     // total number of sample points used
}

// MonteCarlo estimates the union volume of a sphere set by uniform
// rejection sampling over its bounding box.
//
// A seed of 0 selects a time-based seed; any other value gives a
// deterministic estimate.
func MonteCarlo(set *sphereset.Set, samples int, seed int64) (Result, error) {
	if set == nil || set.Len() == 0 {
		return Result{}, fmt.Errorf("monte carlo: %w", grid.ErrEmptyInput)
	}
	if samples <= 0 {
		return Result{}, fmt.Errorf("monte carlo: samples must be positive, got %d", samples)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spheres := set.Spheres()
	lo, hi, ok := boundingBox(spheres)
	if !ok {
		// All radii are zero: the union has measure zero.
		return Result{Volume: 0, StdErr: 0, Samples: samples}, nil
	}
	boxVol := (hi[0] - lo[0]) * (hi[1] - lo[1]) * (hi[2] - lo[2])

	batches := batchCount
	if batches > samples {
		batches = samples
	}
	per, rem := samples/batches, samples%batches

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > batches {
		workers = batches
	}

	jobs := make(chan int, batches)
	estimates := make([]float64, batches)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				n := per
				if b < rem {
					n++
				}
				// independent RNG per batch for determinism regardless
				// of worker scheduling
				rng := rand.New(rand.NewSource(seed ^ int64(uint64(b+1)*0x9e3779b97f4a7c15)))
				hits := 0
				for i := 0; i < n; i++ {
					p := [3]float64{
						lo[0] + rng.Float64()*(hi[0]-lo[0]),
						lo[1] + rng.Float64()*(hi[1]-lo[1]),
						lo[2] + rng.Float64()*(hi[2]-lo[2]),
					}
					if insideUnion(p, spheres) {
						hits++
					}
				}
				if n > 0 {
					estimates[b] = float64(hits) / float64(n) * boxVol
				}
			}
		}()
	}

	for b := 0; b < batches; b++ {
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	mean := stat.Mean(estimates, nil)
	stderr := 0.0
	if batches > 1 {
		stderr = stat.StdDev(estimates, nil) / math.Sqrt(float64(batches))
	}

	return Result{Volume: mean, StdErr: stderr, Samples: samples}, nil
}

// boundingBox returns the axis-aligned box enclosing all spheres.
// ok is false when the box has zero extent on every axis.
func boundingBox(spheres []sphereset.Sphere) (lo, hi [3]float64, ok bool) {
	for i := range lo {
		lo[i] = math.Inf(1)
		hi[i] = math.Inf(-1)
	}
	for _, sp := range spheres {
		for i := 0; i < 3; i++ {
			if v := sp.Center[i] - sp.Radius; v < lo[i] {
				lo[i] = v
			}
			if v := sp.Center[i] + sp.Radius; v > hi[i] {
				hi[i] = v
			}
		}
	}
	for i := 0; i < 3; i++ {
		if hi[i] > lo[i] {
			ok = true
		}
	}
	return lo, hi, ok
}

// insideUnion reports whether p lies inside at least one sphere.
func insideUnion(p [3]float64, spheres []sphereset.Sphere) bool {
	for _, sp := range spheres {
		dx := p[0] - sp.Center[0]
		dy := p[1] - sp.Center[1]
		dz := p[2] - sp.Center[2]
		if dx*dx+dy*dy+dz*dz <= sp.Radius*sp.Radius {
			return true
		}
	}
	return false
}
