package core

import "math"

// padThickness is the minimum extent Pad enforces on every axis
const padThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB encloses nothing and is the identity for unions
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates a new AABB from three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
// The points can be given in any order.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{
		X: NewInterval(min.X, max.X),
		Y: NewInterval(min.Y, max.Y),
		Z: NewInterval(min.Z, max.Z),
	}
}

// NewAABBUnion returns the box enclosing both a and b
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABBUnion(aabb, other)
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z).
// Any other value selects X.
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// Pad returns a copy where every axis thinner than padThickness is expanded to it
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() >= padThickness {
			return i
		}
		return i.Expand(padThickness)
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset returns the box translated by v
func (aabb AABB) Offset(v Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(v.X),
		Y: aabb.Y.Offset(v.Y),
		Z: aabb.Z.Offset(v.Z),
	}
}

// Hit tests if a ray intersects with this AABB inside rayT using the slab method.
//
// Zero direction components are not special-cased: the inverse becomes
// ±Inf and the min/max tightening still produces the right answer.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for n := 0; n < 3; n++ {
		slab := aabb.Axis(n)
		invD := 1 / ray.Direction.Axis(n)
		origin := ray.Origin.Axis(n)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsEmpty reports whether any axis interval is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Encloses reports whether other lies entirely inside this box
func (aabb AABB) Encloses(other AABB) bool {
	return aabb.X.Encloses(other.X) &&
		aabb.Y.Encloses(other.Y) &&
		aabb.Z.Encloses(other.Z)
}

// ContainsPoint reports whether p lies inside or on the box
func (aabb AABB) ContainsPoint(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}
