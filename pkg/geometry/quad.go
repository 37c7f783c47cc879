package geometry

import (
	"math"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// parallelEpsilon rejects rays whose direction is nearly in the plane
const parallelEpsilon = 1e-8

// interiorFunc reports whether planar coordinates (alpha, beta) lie on the
// shape and, if so, the texture coordinates of that point
type interiorFunc func(alpha, beta float64) (u, v float64, ok bool)

// planar holds the plane math shared by every flat primitive. A point on
// the plane is Q + alpha*u + beta*v; the concrete shape only decides which
// (alpha, beta) pairs belong to it.
type planar struct {
	q, u, v  core.Vec3
	normal   core.Vec3 // unit(u × v)
	d        float64   // plane constant: normal · Q
	w        core.Vec3 // n / (n · n), maps hit points to (alpha, beta)
	material core.Material
	bbox     core.AABB
	interior interiorFunc
}

func newPlanar(q, u, v core.Vec3, material core.Material, interior interiorFunc) (planar, error) {
	for _, vec := range []core.Vec3{q, u, v} {
		if !vec.IsFinite() {
			return planar{}, xerrors.Errorf("plane point or edge %v: %w", vec, ErrNonFinite)
		}
	}

	n := u.Cross(v)
	// |u × v| = |u||v|sin(angle), so this rejects zero-length and parallel edges alike
	if lenSq := n.LengthSquared(); lenSq == 0 || lenSq < 1e-16*u.LengthSquared()*v.LengthSquared() {
		return planar{}, xerrors.Errorf("edges u=%v v=%v: %w", u, v, ErrDegenerateEdges)
	}

	normal := n.Normalize()
	return planar{
		q:        q,
		u:        u,
		v:        v,
		normal:   normal,
		d:        normal.Dot(q),
		w:        n.Divide(n.Dot(n)),
		material: material,
		interior: interior,
	}, nil
}

// Normal returns the unit plane normal (u × v direction)
func (p *planar) Normal() core.Vec3 {
	return p.normal
}

// Hit tests if a ray intersects with the planar shape
func (p *planar) Hit(ray core.Ray, rayT core.Interval) (HitRecord, bool) {
	denominator := p.normal.Dot(ray.Direction)
	if math.Abs(denominator) < parallelEpsilon {
		return HitRecord{}, false
	}

	t := (p.d - p.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return HitRecord{}, false
	}

	intersection := ray.At(t)
	planarHitVector := intersection.Subtract(p.q)
	alpha := p.w.Dot(planarHitVector.Cross(p.v))
	beta := p.w.Dot(p.u.Cross(planarHitVector))

	u, v, ok := p.interior(alpha, beta)
	if !ok {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:        t,
		Point:    intersection,
		Material: p.material,
		U:        u,
		V:        v,
	}
	rec.SetFaceNormal(ray, p.normal)

	return rec, true
}

// BoundingBox returns the padded bounding box of the shape
func (p *planar) BoundingBox() core.AABB {
	return p.bbox
}

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	planar
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) (*Quad, error) {
	p, err := newPlanar(corner, u, v, material, insideUnitSquare)
	if err != nil {
		return nil, xerrors.Errorf("quad: %w", err)
	}

	// Both diagonals, so the box also holds when u and v are not perpendicular
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))
	p.bbox = diagonal1.Union(diagonal2).Pad()

	return &Quad{planar: p}, nil
}

// Corner returns the quad's origin corner
func (q *Quad) Corner() core.Vec3 {
	return q.q
}

// Edges returns the two edge vectors of the quad
func (q *Quad) Edges() (u, v core.Vec3) {
	return q.u, q.v
}

func insideUnitSquare(alpha, beta float64) (float64, float64, bool) {
	if alpha < 0 || 1 < alpha || beta < 0 || 1 < beta {
		return 0, 0, false
	}
	return alpha, beta, true
}

// Triangle represents the triangle with vertices Q, Q+u and Q+v
type Triangle struct {
	planar
}

// NewTriangle creates a new triangle from a vertex and the two edges leaving it
func NewTriangle(vertex, u, v core.Vec3, material core.Material) (*Triangle, error) {
	p, err := newPlanar(vertex, u, v, material, insideTriangle)
	if err != nil {
		return nil, xerrors.Errorf("triangle: %w", err)
	}
	p.bbox = core.NewAABBFromPoints(vertex, vertex.Add(u), vertex.Add(v)).Pad()

	return &Triangle{planar: p}, nil
}

func insideTriangle(alpha, beta float64) (float64, float64, bool) {
	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return 0, 0, false
	}
	return alpha, beta, true
}

// Ellipse represents a flat ellipse centered at Q with semi-axes u and v
type Ellipse struct {
	planar
}

// NewEllipse creates a new ellipse; a disk when u and v are perpendicular and of equal length
func NewEllipse(center, u, v core.Vec3, material core.Material) (*Ellipse, error) {
	p, err := newPlanar(center, u, v, material, insideUnitDisk)
	if err != nil {
		return nil, xerrors.Errorf("ellipse: %w", err)
	}
	p.bbox = core.NewAABBFromPoints(
		center.Add(u).Add(v),
		center.Add(u).Subtract(v),
		center.Subtract(u).Add(v),
		center.Subtract(u).Subtract(v),
	).Pad()

	return &Ellipse{planar: p}, nil
}

// insideUnitDisk maps alpha, beta in [-1,1] to texture coordinates in [0,1]
func insideUnitDisk(alpha, beta float64) (float64, float64, bool) {
	if alpha*alpha+beta*beta > 1 {
		return 0, 0, false
	}
	return alpha/2 + 0.5, beta/2 + 0.5, true
}
