// Package render maps Earth-fixed directions into the axis convention of the
// rendering engine: y up, the north pole along +y, the prime meridian along -x.
package render

import (
	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/vectors"
)

// Vector is a direction in render-space coordinates.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// FromECEF converts an ECEF direction to render space:
//
//	(x', y', z') = (-x, z, y)
//
// A permutation composed with one sign flip, so lengths are preserved exactly.
func FromECEF(v earth.DirectionECEF) Vector {
	return Vector{X: -v.X, Y: v.Z, Z: v.Y}
}

// ToECEF inverts FromECEF. The mapping is its own inverse.
func (v Vector) ToECEF() earth.DirectionECEF {
	return earth.DirectionECEF{X: -v.X, Y: v.Z, Z: v.Y}
}

func (v Vector) Vec3() vectors.Vec3 {
	return vectors.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// LightPosition places a directional light (or the sun sprite) at distance
// scene units from the origin along v.
func (v Vector) LightPosition(distance float64) vectors.Vec3 {
	return v.Vec3().Scale(distance)
}
