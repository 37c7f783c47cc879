package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracing-kernel/pkg/core"
)

// testMaterial stands in for a renderer-owned material handle
type testMaterial struct {
	Name string
}

var forward = core.NewInterval(0.001, math.Inf(1))

func assertVecNear(t *testing.T, what string, got, want core.Vec3, tolerance float64) {
	t.Helper()
	if got.Subtract(want).Length() > tolerance {
		t.Errorf("Expected %s %v, got %v", what, want, got)
	}
}

// enclosesWithin reports whether p lies in box grown by eps on every side
func enclosesWithin(box core.AABB, p core.Vec3, eps float64) bool {
	grown := core.NewAABB(box.X.Expand(2*eps), box.Y.Expand(2*eps), box.Z.Expand(2*eps))
	return grown.ContainsPoint(p)
}

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	s, err := NewSphere(center, radius, testMaterial{"sphere"})
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func mustQuad(t *testing.T, corner, u, v core.Vec3) *Quad {
	t.Helper()
	q, err := NewQuad(corner, u, v, testMaterial{"quad"})
	if err != nil {
		t.Fatalf("NewQuad: %v", err)
	}
	return q
}
