package geometry

import (
	"math"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// RotateY wraps another Hittable and rotates it about the Y axis
type RotateY struct {
	object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY creates a decorator rotating object counter-clockwise (seen from +Y) by angle degrees
func NewRotateY(object Hittable, angle float64) (*RotateY, error) {
	if isNil(object) {
		return nil, xerrors.Errorf("rotate_y: %w", ErrNilObject)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, xerrors.Errorf("rotate_y angle %v: %w", angle, ErrNonFinite)
	}

	radians := angle * math.Pi / 180
	r := &RotateY{
		object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
	r.bbox = r.rotatedBox(object.BoundingBox())

	return r, nil
}

// rotatedBox bounds the eight corners of box after rotation
func (r *RotateY) rotatedBox(box core.AABB) core.AABB {
	if box.IsEmpty() {
		return core.EmptyAABB
	}

	corners := make([]core.Vec3, 0, 8)
	for _, x := range []float64{box.X.Min, box.X.Max} {
		for _, y := range []float64{box.Y.Min, box.Y.Max} {
			for _, z := range []float64{box.Z.Min, box.Z.Max} {
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}

	return core.NewAABBFromPoints(corners...)
}

// toObject rotates a world-space vector by -theta
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector by +theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	rec, ok := r.object.Hit(rotated, rayT)
	if !ok {
		return HitRecord{}, false
	}

	rec.Point = r.toWorld(rec.Point)
	rec.Normal = r.toWorld(rec.Normal)
	return rec, true
}

// BoundingBox returns the box enclosing the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
