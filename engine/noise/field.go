package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	// DefaultSeed is used when a configuration does not name one.
	DefaultSeed int64 = 1337

	alpha   = 2.0
	beta    = 2.0
	octaves = 1
)

// Sampler is a smooth, deterministic scalar field over R^3.
type Sampler interface {
	Sample(x, y, z float32) float32
}

// Field is a seeded gradient noise field. The permutation table is fixed at
// construction, so Sample is a pure function of its arguments.
type Field struct {
	seed int64
	p    *perlin.Perlin
}

func NewField(seed int64) *Field {
	return &Field{
		seed: seed,
		p:    perlin.NewPerlin(alpha, beta, octaves, seed),
	}
}

// Sample returns noise roughly in [-1, 1].
func (f *Field) Sample(x, y, z float32) float32 {
	return float32(f.p.Noise3D(float64(x), float64(y), float64(z)))
}

func (f *Field) Seed() int64 {
	return f.seed
}
