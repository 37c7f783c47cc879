package geometry

import (
	"math"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// NewBox creates the six quad faces of the box spanned by two opposite
// corners, given in any order. Every face normal points out of the box.
func NewBox(a, b core.Vec3, material core.Material) (*HittableList, error) {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	faces := []struct {
		name   string
		corner core.Vec3
		u, v   core.Vec3
	}{
		{"front", core.NewVec3(min.X, min.Y, max.Z), dx, dy},
		{"right", core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy},
		{"back", core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy},
		{"left", core.NewVec3(min.X, min.Y, min.Z), dz, dy},
		{"top", core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate()},
		{"bottom", core.NewVec3(min.X, min.Y, min.Z), dx, dz},
	}

	sides := NewHittableList()
	for _, face := range faces {
		quad, err := NewQuad(face.corner, face.u, face.v, material)
		if err != nil {
			return nil, xerrors.Errorf("box %s face: %w", face.name, err)
		}
		sides.Add(quad)
	}

	return sides, nil
}
