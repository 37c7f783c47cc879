package scene

import (
	"math"

	"github.com/df07/go-raytracing-kernel/pkg/core"
	"golang.org/x/xerrors"
)

// Config is the YAML representation of a scene file.
type Config struct {
	Materials []MaterialConfig `yaml:"materials"`
	Objects   []ObjectConfig   `yaml:"objects"`
	Rays      []RayConfig      `yaml:"rays"`
}

// MaterialConfig declares a named material. Type is "solid" (the default)
// or "noise".
type MaterialConfig struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Color []float64 `yaml:"color"`
	Seed  int64     `yaml:"seed"`
	Scale float64   `yaml:"scale"`
}

// ObjectConfig declares one object. Which fields apply depends on Type:
//
//	sphere         center, radius
//	moving_sphere  center, center2, radius
//	quad           corner, u, v
//	triangle       corner, u, v
//	ellipse        center, u, v
//	box            min, max
//
// Translate and RotateY wrap the object; rotation is applied first.
type ObjectConfig struct {
	Type     string    `yaml:"type"`
	Material string    `yaml:"material"`
	Center   []float64 `yaml:"center"`
	Center2  []float64 `yaml:"center2"`
	Radius   float64   `yaml:"radius"`
	Corner   []float64 `yaml:"corner"`
	U        []float64 `yaml:"u"`
	V        []float64 `yaml:"v"`
	Min      []float64 `yaml:"min"`
	Max      []float64 `yaml:"max"`

	Translate []float64 `yaml:"translate"`
	RotateY   float64   `yaml:"rotate_y"`
}

// RayConfig declares a probe ray. Time must lie in [0, 1], the interval over
// which moving objects are bounded. TMin defaults to 0.001 and TMax to +Inf.
type RayConfig struct {
	Name      string    `yaml:"name"`
	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`
	Time      float64   `yaml:"time"`
	TMin      *float64  `yaml:"t_min"`
	TMax      *float64  `yaml:"t_max"`
}

// defaultTMin keeps probes from hitting a surface they start on
const defaultTMin = 0.001

func toVec3(field string, values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, xerrors.Errorf("%s: got %d components: %w", field, len(values), ErrBadVector)
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func (rc RayConfig) interval() core.Interval {
	tMin, tMax := defaultTMin, math.Inf(1)
	if rc.TMin != nil {
		tMin = *rc.TMin
	}
	if rc.TMax != nil {
		tMax = *rc.TMax
	}
	return core.NewInterval(tMin, tMax)
}
