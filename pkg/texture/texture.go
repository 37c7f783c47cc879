// Package texture provides spatially varying colors for renderers,
// including the lattice noise generator used by procedural textures.
package texture

import "github.com/df07/go-raytracing-kernel/pkg/core"

// Texture provides a color for a surface point
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and world point p.
	// Image textures use (u, v); procedural textures use p.
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// NoiseTexture is a grey texture whose intensity is lattice noise sampled at the scaled point
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture; larger scales give finer cells
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

// Value returns white attenuated by the noise at p
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	intensity := n.Noise.Noise(p.Multiply(n.Scale))
	return core.NewVec3(intensity, intensity, intensity)
}
