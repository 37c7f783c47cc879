package scene

import (
	"math/rand"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"github.com/df07/go-raytracing-kernel/pkg/geometry"
	"github.com/df07/go-raytracing-kernel/pkg/texture"
	"golang.org/x/xerrors"
)

// Material is the handle stored in hit records for objects loaded from a
// scene file. The kernel never looks inside it.
type Material struct {
	Name   string
	Kind   string
	Albedo texture.Texture
}

// Color returns the material color at the hit
func (m *Material) Color(rec geometry.HitRecord) core.Vec3 {
	return m.Albedo.Value(rec.U, rec.V, rec.Point)
}

func newMaterial(mc MaterialConfig) (*Material, error) {
	switch mc.Type {
	case "", "solid":
		color, err := toVec3("color", mc.Color)
		if err != nil {
			return nil, err
		}
		return &Material{Name: mc.Name, Kind: "solid", Albedo: texture.NewSolidColor(color)}, nil
	case "noise":
		scale := mc.Scale
		if scale == 0 {
			scale = 1
		}
		noise := texture.NewPerlin(rand.New(rand.NewSource(mc.Seed)))
		return &Material{Name: mc.Name, Kind: "noise", Albedo: texture.NewNoiseTexture(noise, scale)}, nil
	default:
		return nil, xerrors.Errorf("material %q type %q: %w", mc.Name, mc.Type, ErrUnknownType)
	}
}
