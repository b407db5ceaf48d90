// Package seed provides initial patterns for Grid.SetAll.
package seed

import (
	"github.com/aquilax/go-perlin"

	"life-canvas/internal/core"
)

// DefaultDensity is the chance that Random makes a cell alive.
const DefaultDensity = 0.15

// Fill is a per-cell generator for core.Grid.SetAll.
type Fill func(row, col int) uint8

// Constant returns a Fill setting every cell to v.
func Constant(v uint8) Fill {
	return func(int, int) uint8 { return v }
}

// Random makes each cell alive independently with probability density: a cell
// lives when a uniform draw in [0,1) exceeds 1-density.
func Random(rng *core.RNG, density float64) Fill {
	threshold := 1 - density
	return func(int, int) uint8 {
		if rng.Above(threshold) {
			return 1
		}
		return 0
	}
}

// NoiseParams tunes Noise.
type NoiseParams struct {
	// Scale converts cell coordinates to noise space; smaller values give
	// larger blobs.
	Scale float64
	// Threshold is the noise level above which a cell is alive.
	Threshold float64
}

// DefaultNoise yields scattered organic blobs covering roughly a fifth of the grid.
var DefaultNoise = NoiseParams{Scale: 0.12, Threshold: 0.18}

// Noise seeds coherent clusters from 2-D Perlin noise instead of independent
// coin flips.
func Noise(seed int64, p NoiseParams) Fill {
	if p.Scale <= 0 {
		p.Scale = DefaultNoise.Scale
	}
	gen := perlin.NewPerlin(2, 2, 3, seed)
	return func(row, col int) uint8 {
		if gen.Noise2D(float64(col)*p.Scale, float64(row)*p.Scale) > p.Threshold {
			return 1
		}
		return 0
	}
}
