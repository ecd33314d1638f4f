package mapgen

import (
	"math/rand"

	perlin "github.com/aquilax/go-perlin"

	"github.com/katalvlaran/cavern/grid"
)

// Perlin parameters: alpha (weight falloff), beta (frequency step), octaves.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// RandomFillMap allocates a width×height grid whose perimeter is Wall and
// whose interior cells are Wall with probability fillPercent/100. The stream
// is consumed once per interior cell in row-major order (y outer, x inner);
// perimeter cells consume nothing.
func RandomFillMap(width, height, fillPercent int, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(width, height, grid.Open)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.IsPerimeter(x, y) || rng.Intn(100) < fillPercent {
				g.Cells[y*width+x] = grid.Wall
			}
		}
	}

	return g, nil
}

// PerlinFillMap is RandomFillMap driven by 2D Perlin noise instead of white
// noise: an interior cell is Wall when its noise sample, remapped to [0,100],
// falls below fillPercent. scale is the sampling period in cells.
func PerlinFillMap(width, height, fillPercent int, scale float64, seed int64) (*grid.Grid, error) {
	g, err := grid.New(width, height, grid.Open)
	if err != nil {
		return nil, err
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.IsPerimeter(x, y) {
				g.Cells[y*width+x] = grid.Wall
				continue
			}
			// Sample cell centres; lattice points always yield 0.
			n := p.Noise2D((float64(x)+0.5)/scale, (float64(y)+0.5)/scale)
			if (n+1)/2*100 < float64(fillPercent) {
				g.Cells[y*width+x] = grid.Wall
			}
		}
	}

	return g, nil
}
