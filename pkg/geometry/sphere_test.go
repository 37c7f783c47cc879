package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"
)

func TestSphere_Hit_Scenario(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, -1), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, forward)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	want := HitRecord{
		Point:     core.NewVec3(0, 0, -0.5),
		Normal:    core.NewVec3(0, 0, 1),
		Material:  testMaterial{"sphere"},
		T:         0.5,
		U:         0.25,
		V:         0.5,
		FrontFace: true,
	}
	if diff := cmp.Diff(want, hit, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("hit record mismatch (-want +got):\n%s", diff)
	}
}

func TestSphere_Hit_NearSurfaceAtRadius(t *testing.T) {
	for _, r := range []float64{0.5, 1, 2.5, 10} {
		sphere := mustSphere(t, core.NewVec3(0, 0, 0), r)
		ray := core.NewRay(core.NewVec3(-2*r, 0, 0), core.NewVec3(1, 0, 0))

		hit, isHit := sphere.Hit(ray, forward)
		if !isHit {
			t.Fatalf("radius %v: expected hit, got miss", r)
		}
		if math.Abs(hit.T-r) > 1e-9 {
			t.Errorf("radius %v: expected t=%v, got %v", r, r, hit.T)
		}
		assertVecNear(t, "normal", hit.Normal, core.NewVec3(-1, 0, 0), 1e-9)
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("radius %v: normal is not unit length: %v", r, hit.Normal)
		}
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, forward); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, forward)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			assertVecNear(t, "normal", hit.Normal, tt.expectedNormal, 1e-9)
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name    string
		rayT    core.Interval
		wantHit bool
		wantT   float64
	}{
		{"max before sphere", core.NewInterval(0.001, 0.5), false, 0},
		{"min past sphere", core.NewInterval(3.5, 1000), false, 0},
		{"min past near root", core.NewInterval(1.5, 1000), true, 3},
		// Roots exactly on the interval ends are rejected
		{"max exactly at near root", core.NewInterval(0.001, 1), false, 0},
		{"min exactly at far root", core.NewInterval(3, 1000), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.rayT)
			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.wantHit, isHit, hit.T)
			}
			if isHit && math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.wantT, hit.T)
			}
		})
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		point core.Vec3
		u, v  float64
	}{
		{core.NewVec3(1, 0, 0), 0.5, 0.5},
		{core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{core.NewVec3(0, 1, 0), 0.5, 1.0},
		{core.NewVec3(0, -1, 0), 0.5, 0.0},
		{core.NewVec3(0, 0, 1), 0.25, 0.5},
		{core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		u, v := sphereUV(tt.point)
		if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
			t.Errorf("sphereUV(%v) = (%v, %v), want (%v, %v)", tt.point, u, v, tt.u, tt.v)
		}
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, 2, 3), 2)
	want := core.NewAABBFromPoints(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))

	if diff := cmp.Diff(want, sphere.BoundingBox()); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}
	if sphere.IsMoving() {
		t.Error("Expected stationary sphere")
	}
}

func TestMovingSphere(t *testing.T) {
	sphere, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0.5, testMaterial{"moving"})
	if err != nil {
		t.Fatalf("NewMovingSphere: %v", err)
	}

	if !sphere.IsMoving() {
		t.Error("Expected moving sphere")
	}
	assertVecNear(t, "center at t=0.5", sphere.Center(0.5), core.NewVec3(1, 0, 0), 1e-12)

	wantBox := core.NewAABBFromPoints(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(2.5, 0.5, 0.5))
	if diff := cmp.Diff(wantBox, sphere.BoundingBox()); diff != "" {
		t.Errorf("bounding box mismatch (-want +got):\n%s", diff)
	}

	origin := core.NewVec3(1, 0, 5)
	direction := core.NewVec3(0, 0, -1)

	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 0), forward); isHit {
		t.Error("Expected miss at time 0, sphere has not arrived yet")
	}

	hit, isHit := sphere.Hit(core.NewRayAtTime(origin, direction, 0.5), forward)
	if !isHit {
		t.Fatal("Expected hit at time 0.5")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}
	assertVecNear(t, "normal", hit.Normal, core.NewVec3(0, 0, 1), 1e-9)
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name    string
		center  core.Vec3
		radius  float64
		wantErr error
	}{
		{"zero radius", core.NewVec3(0, 0, 0), 0, ErrInvalidRadius},
		{"negative radius", core.NewVec3(0, 0, 0), -1, ErrInvalidRadius},
		{"NaN radius", core.NewVec3(0, 0, 0), math.NaN(), ErrInvalidRadius},
		{"infinite radius", core.NewVec3(0, 0, 0), math.Inf(1), ErrInvalidRadius},
		{"NaN center", core.NewVec3(math.NaN(), 0, 0), 1, ErrNonFinite},
		{"valid", core.NewVec3(1, 2, 3), 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere, err := NewSphere(tt.center, tt.radius, nil)
			if tt.wantErr == nil {
				if err != nil || sphere == nil {
					t.Fatalf("Expected sphere, got error %v", err)
				}
				return
			}
			if !xerrors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if sphere != nil {
				t.Errorf("Expected nil sphere on error, got %v", sphere)
			}
		})
	}

	if _, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, math.Inf(1), 0), 1, nil); !xerrors.Is(err, ErrNonFinite) {
		t.Errorf("Expected ErrNonFinite for infinite second center, got %v", err)
	}
}

func TestSphere_Hit_TangentRayMisses(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1)

	// Grazes the top of the sphere: the discriminant is exactly zero
	ray := core.NewRay(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0))
	if hit, isHit := sphere.Hit(ray, forward); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}

	// Just inside the silhouette still hits
	ray = core.NewRay(core.NewVec3(-5, 0.999, 0), core.NewVec3(1, 0, 0))
	if _, isHit := sphere.Hit(ray, forward); !isHit {
		t.Error("Expected ray inside the silhouette to hit")
	}
}

func TestSphere_Radius(t *testing.T) {
	if got := mustSphere(t, core.NewVec3(1, 2, 3), 2.5).Radius(); got != 2.5 {
		t.Errorf("Radius() = %v, want 2.5", got)
	}
}
