package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

func TestHittableList_ClosestHit(t *testing.T) {
	far := mustSphere(t, core.NewVec3(0, 0, -3), 0.5)
	near, err := NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial{"near"})
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}

	// Insertion order must not matter
	list := NewHittableList(far, near)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), forward)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected closest hit at t=0.5, got %f", hit.T)
	}
	if hit.Material != (testMaterial{"near"}) {
		t.Errorf("Expected material of the near sphere, got %v", hit.Material)
	}

	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}
	wantBox := core.NewAABBUnion(far.BoundingBox(), near.BoundingBox())
	if list.BoundingBox() != wantBox {
		t.Errorf("Expected box %v, got %v", wantBox, list.BoundingBox())
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), forward); isHit {
		t.Error("Expected empty list to never hit")
	}
	if !list.BoundingBox().IsEmpty() {
		t.Errorf("Expected empty bounding box, got %v", list.BoundingBox())
	}
}

func TestNewBox(t *testing.T) {
	box, err := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), testMaterial{"box"})
	if err != nil {
		t.Fatalf("NewBox: %v", err)
	}

	if box.Len() != 6 {
		t.Fatalf("Expected 6 faces, got %d", box.Len())
	}
	if !box.BoundingBox().Encloses(core.NewAABBFromPoints(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))) {
		t.Errorf("box bounding box %v does not enclose the unit cube", box.BoundingBox())
	}

	tests := []struct {
		name       string
		ray        core.Ray
		wantT      float64
		wantNormal core.Vec3
		wantFront  bool
	}{
		{
			name:       "front face from outside",
			ray:        core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1)),
			wantT:      4,
			wantNormal: core.NewVec3(0, 0, 1),
			wantFront:  true,
		},
		{
			name:       "top face from above",
			ray:        core.NewRay(core.NewVec3(0.25, 3, 0.75), core.NewVec3(0, -1, 0)),
			wantT:      2,
			wantNormal: core.NewVec3(0, 1, 0),
			wantFront:  true,
		},
		{
			name:       "left face from outside",
			ray:        core.NewRay(core.NewVec3(-2, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			wantT:      2,
			wantNormal: core.NewVec3(-1, 0, 0),
			wantFront:  true,
		},
		{
			name:       "right face from inside",
			ray:        core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(1, 0, 0)),
			wantT:      0.5,
			wantNormal: core.NewVec3(-1, 0, 0),
			wantFront:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(tt.ray, forward)
			if !isHit {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.wantT, hit.T)
			}
			if hit.FrontFace != tt.wantFront {
				t.Errorf("Expected front face %v, got %v", tt.wantFront, hit.FrontFace)
			}
			assertVecNear(t, "normal", hit.Normal, tt.wantNormal, 1e-9)
		})
	}
}

func TestNewBox_Flat(t *testing.T) {
	_, err := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 1), nil)
	if !xerrors.Is(err, ErrDegenerateEdges) {
		t.Errorf("Expected ErrDegenerateEdges for a flat box, got %v", err)
	}
}

func TestHittableList_Objects(t *testing.T) {
	a := mustSphere(t, core.NewVec3(0, 0, 0), 1)
	b := mustSphere(t, core.NewVec3(5, 0, 0), 1)

	list := NewHittableList(a)
	list.Add(b)

	objects := list.Objects()
	if len(objects) != 2 || objects[0] != Hittable(a) || objects[1] != Hittable(b) {
		t.Errorf("Objects() = %v, want [a b] in insertion order", objects)
	}
}
