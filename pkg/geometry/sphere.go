package geometry

import (
	"math"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// Sphere represents a sphere whose center may move linearly over time
type Sphere struct {
	center   core.Ray // Center at time 0 and its displacement per unit time
	radius   float64
	material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if err := validateSphere(radius, center); err != nil {
		return nil, err
	}

	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		center:   core.NewRay(center, core.Vec3{}),
		radius:   radius,
		material: material,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}, nil
}

// NewMovingSphere creates a sphere at center1 at time 0 moving to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if err := validateSphere(radius, center1, center2); err != nil {
		return nil, err
	}

	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		center:   core.NewRay(center1, center2.Subtract(center1)),
		radius:   radius,
		material: material,
		bbox:     core.NewAABBUnion(box1, box2),
	}, nil
}

func validateSphere(radius float64, centers ...core.Vec3) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return xerrors.Errorf("sphere radius %v: %w", radius, ErrInvalidRadius)
	}
	for _, c := range centers {
		if !c.IsFinite() {
			return xerrors.Errorf("sphere center %v: %w", c, ErrNonFinite)
		}
	}
	return nil
}

// Center returns the sphere center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center.At(time)
}

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 {
	return s.radius
}

// IsMoving reports whether the sphere center changes over time
func (s *Sphere) IsMoving() bool {
	return s.center.Direction != core.Vec3{}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	center := s.center.At(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic in t with b = 2*halfB
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.radius*s.radius

	// A grazing ray (single root) counts as a miss
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root that lies strictly inside the acceptable range
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.material,
	}
	outwardNormal := rec.Point.Subtract(center).Divide(s.radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere over its whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]².
// u runs around the Y axis starting at -X, v runs from -Y to +Y.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
