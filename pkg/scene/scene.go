// Package scene loads YAML scene descriptions into hittable graphs and
// probe rays that can be traced against them.
package scene

import (
	"os"
	"strconv"
	"time"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"github.com/df07/go-raytracing-kernel/pkg/geometry"
	"github.com/df07/go-raytracing-kernel/pkg/log"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

var logger = log.New("scene")

// Scene contains all the elements loaded from a scene file
type Scene struct {
	Materials map[string]*Material
	Objects   []Object      // Objects in declaration order
	Probes    []Probe       // Rays to trace
	BVH       *geometry.BVH // Acceleration structure for ray-object intersection
}

// Object is a top-level scene object together with the type it was declared as
type Object struct {
	geometry.Hittable
	Type string
}

// Probe is a named ray and the interval it is traced over
type Probe struct {
	Name     string
	Ray      core.Ray
	Interval core.Interval
}

// Load reads and builds the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading scene %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, xerrors.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scene description and builds it.
func Parse(data []byte) (*Scene, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, xerrors.Errorf("decoding yaml: %w", err)
	}
	return Build(&cfg)
}

// Build constructs materials, objects and probes from cfg and prepares the BVH.
func Build(cfg *Config) (*Scene, error) {
	start := time.Now()
	sc := &Scene{Materials: make(map[string]*Material, len(cfg.Materials))}

	for _, mc := range cfg.Materials {
		if _, exists := sc.Materials[mc.Name]; exists {
			return nil, xerrors.Errorf("material %q: %w", mc.Name, ErrDuplicateName)
		}
		mat, err := newMaterial(mc)
		if err != nil {
			return nil, err
		}
		sc.Materials[mc.Name] = mat
	}

	for idx, oc := range cfg.Objects {
		obj, err := sc.newObject(oc)
		if err != nil {
			return nil, xerrors.Errorf("object %d (%s): %w", idx, oc.Type, err)
		}
		sc.Objects = append(sc.Objects, Object{Hittable: obj, Type: oc.Type})
	}

	for idx, rc := range cfg.Rays {
		probe, err := newProbe(idx, rc)
		if err != nil {
			return nil, xerrors.Errorf("ray %d: %w", idx, err)
		}
		sc.Probes = append(sc.Probes, probe)
	}

	sc.Preprocess()
	logger.Infof(
		"built scene in %v: %d materials, %d objects, %d probe rays",
		time.Since(start), len(sc.Materials), len(sc.Objects), len(sc.Probes),
	)

	return sc, nil
}

// Preprocess (re)builds the BVH over the scene objects
func (s *Scene) Preprocess() {
	shapes := make([]geometry.Hittable, len(s.Objects))
	for i, obj := range s.Objects {
		shapes[i] = obj.Hittable
	}
	s.BVH = geometry.NewBVH(shapes)
}

// Trace returns the closest hit for a probe ray
func (s *Scene) Trace(probe Probe) (geometry.HitRecord, bool) {
	return s.BVH.Hit(probe.Ray, probe.Interval)
}

// BoundingBox returns the box enclosing every object in the scene
func (s *Scene) BoundingBox() core.AABB {
	return s.BVH.BoundingBox()
}

func (s *Scene) material(name string) (*Material, error) {
	mat, ok := s.Materials[name]
	if !ok {
		return nil, xerrors.Errorf("%q: %w", name, ErrUnknownMaterial)
	}
	return mat, nil
}

func (s *Scene) newObject(oc ObjectConfig) (geometry.Hittable, error) {
	mat, err := s.material(oc.Material)
	if err != nil {
		return nil, err
	}

	obj, err := newPrimitive(oc, mat)
	if err != nil {
		return nil, err
	}

	if oc.RotateY != 0 {
		if obj, err = geometry.NewRotateY(obj, oc.RotateY); err != nil {
			return nil, err
		}
	}

	if oc.Translate != nil {
		offset, err := toVec3("translate", oc.Translate)
		if err != nil {
			return nil, err
		}
		if obj, err = geometry.NewTranslate(obj, offset); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

// vectors decodes the named fields in order, stopping at the first bad one
func vectors(fields map[string][]float64, names ...string) ([]core.Vec3, error) {
	out := make([]core.Vec3, len(names))
	for i, name := range names {
		v, err := toVec3(name, fields[name])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newPrimitive(oc ObjectConfig, mat *Material) (geometry.Hittable, error) {
	fields := map[string][]float64{
		"center":  oc.Center,
		"center2": oc.Center2,
		"corner":  oc.Corner,
		"u":       oc.U,
		"v":       oc.V,
		"min":     oc.Min,
		"max":     oc.Max,
	}

	switch oc.Type {
	case "sphere":
		vecs, err := vectors(fields, "center")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(vecs[0], oc.Radius, mat)
	case "moving_sphere":
		vecs, err := vectors(fields, "center", "center2")
		if err != nil {
			return nil, err
		}
		return geometry.NewMovingSphere(vecs[0], vecs[1], oc.Radius, mat)
	case "quad":
		vecs, err := vectors(fields, "corner", "u", "v")
		if err != nil {
			return nil, err
		}
		return geometry.NewQuad(vecs[0], vecs[1], vecs[2], mat)
	case "triangle":
		vecs, err := vectors(fields, "corner", "u", "v")
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangle(vecs[0], vecs[1], vecs[2], mat)
	case "ellipse":
		vecs, err := vectors(fields, "center", "u", "v")
		if err != nil {
			return nil, err
		}
		return geometry.NewEllipse(vecs[0], vecs[1], vecs[2], mat)
	case "box":
		vecs, err := vectors(fields, "min", "max")
		if err != nil {
			return nil, err
		}
		return geometry.NewBox(vecs[0], vecs[1], mat)
	default:
		return nil, xerrors.Errorf("object type %q: %w", oc.Type, ErrUnknownType)
	}
}

func newProbe(idx int, rc RayConfig) (Probe, error) {
	origin, err := toVec3("origin", rc.Origin)
	if err != nil {
		return Probe{}, err
	}
	direction, err := toVec3("direction", rc.Direction)
	if err != nil {
		return Probe{}, err
	}

	// Moving objects are only bounded over the shutter interval
	if !(rc.Time >= 0 && rc.Time <= 1) {
		return Probe{}, xerrors.Errorf("time %v: %w", rc.Time, ErrBadTime)
	}

	name := rc.Name
	if name == "" {
		name = "ray-" + strconv.Itoa(idx)
	}

	return Probe{
		Name:     name,
		Ray:      core.NewRayAtTime(origin, direction, rc.Time),
		Interval: rc.interval(),
	}, nil
}
