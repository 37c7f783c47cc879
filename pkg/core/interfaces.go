package core

// Material is an opaque handle to surface appearance owned by the scene.
// Geometry stores and forwards it but never inspects it.
type Material interface{}
