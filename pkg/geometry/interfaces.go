package geometry

import (
	"reflect"

	"github.com/df07/go-raytracing-kernel/pkg/core"
)

// Hittable is implemented by every primitive, decorator and aggregate that
// can be intersected by a ray and bounded by an axis-aligned box.
//
// Hit reports the intersection of ray with the object restricted to
// parametric distances in rayT. The returned record is only meaningful when
// the boolean is true.
//
// BoundingBox returns a box, computed at construction, that encloses every
// point Hit can return for any ray time.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool)
	BoundingBox() core.AABB
}

// isNil reports whether object is nil or an interface holding a nil pointer
func isNil(object Hittable) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
