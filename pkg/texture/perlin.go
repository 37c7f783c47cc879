package texture

import (
	"math/rand"

	"github.com/df07/go-raytracing-kernel/pkg/core"
)

// pointCount is the size of the value table and of each permutation
const pointCount = 256

// Perlin is a lattice value-noise generator. Values come straight from the
// table for the lattice cell containing the point; there is no
// interpolation between neighbouring cells.
type Perlin struct {
	randFloat [pointCount]float64
	permX     [pointCount]int
	permY     [pointCount]int
	permZ     [pointCount]int
}

// NewPerlin fills the value table and the three permutations from random.
// Generators seeded alike produce identical noise.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randFloat {
		p.randFloat[i] = random.Float64()
	}

	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)

	return p
}

// Noise returns the table value for the lattice cell containing point.
// Cells are a quarter unit wide and the lattice wraps every 64 units.
func (p *Perlin) Noise(point core.Vec3) float64 {
	i := int(4*point.X) & (pointCount - 1)
	j := int(4*point.Y) & (pointCount - 1)
	k := int(4*point.Z) & (pointCount - 1)

	return p.randFloat[p.permX[i]^p.permY[j]^p.permZ[k]]
}

// generatePerm writes a random permutation of 0..pointCount-1 into perm
func generatePerm(perm *[pointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}

	// Fisher-Yates from the top down; target is uniform in [0, i]
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}
