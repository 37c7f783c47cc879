package geometry

import (
	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// Translate wraps another Hittable and moves it by a constant offset
type Translate struct {
	object Hittable
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate creates a decorator that displaces object by offset
func NewTranslate(object Hittable, offset core.Vec3) (*Translate, error) {
	if isNil(object) {
		return nil, xerrors.Errorf("translate: %w", ErrNilObject)
	}
	if !offset.IsFinite() {
		return nil, xerrors.Errorf("translate offset %v: %w", offset, ErrNonFinite)
	}

	return &Translate{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}, nil
}

// Offset returns the displacement applied to the wrapped object
func (t *Translate) Offset() core.Vec3 {
	return t.offset
}

// Hit moves the ray into object space, delegates, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	rec, ok := t.object.Hit(offsetRay, rayT)
	if !ok {
		return HitRecord{}, false
	}

	rec.Point = rec.Point.Add(t.offset)
	return rec, true
}

// BoundingBox returns the wrapped object's box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
