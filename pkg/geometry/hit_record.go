package geometry

import "github.com/df07/go-raytracing-kernel/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3     // Point of intersection
	Normal    core.Vec3     // Surface normal, always facing against the incoming ray
	Material  core.Material // Material handle of the hit object
	T         float64       // Parameter t along the ray
	U, V      float64       // Surface coordinates of the hit point
	FrontFace bool          // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
