package geometry

import "github.com/df07/go-raytracing-kernel/pkg/core"

// HittableList is an aggregate that reports the closest hit among its children.
// Objects must only be added while the scene is being built.
type HittableList struct {
	objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	l := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		l.Add(object)
	}
	return l
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Objects returns the children of the list
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of children
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest hit among all children
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	return hitClosest(l.objects, ray, rayT)
}

// BoundingBox returns the union of the children's boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// hitClosest tests every object, shrinking the far limit to the nearest hit so far
func hitClosest(objects []Hittable, ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false

	for _, object := range objects {
		if rec, ok := object.Hit(ray, rayT); ok {
			hitAnything = true
			closest = rec
			rayT.Max = rec.T
		}
	}

	return closest, hitAnything
}
