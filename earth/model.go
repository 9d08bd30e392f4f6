// Package earth computes the direction of the Sun as seen from Earth's
// centre, in the inertial (ECI) and Earth-fixed (ECEF) frames.
//
// Every function is pure: no package state, safe for concurrent use.
package earth

import (
	"math"

	"github.com/echoflaresat/sunvec/timescale"
	"github.com/echoflaresat/sunvec/vectors"
)

const Radius = 6371.0 // Earth radius in km (spherical approximation)

// DirectionECI is a unit direction in the Earth-centred inertial frame:
// x toward the vernal equinox, z toward the celestial north pole.
type DirectionECI struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// DirectionECEF is a unit direction in the Earth-centred Earth-fixed frame:
// x toward the prime meridian at the equator, y 90° east, z toward the north pole.
type DirectionECEF struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (d DirectionECI) Vec3() vectors.Vec3  { return vectors.Vec3{X: d.X, Y: d.Y, Z: d.Z} }
func (d DirectionECEF) Vec3() vectors.Vec3 { return vectors.Vec3{X: d.X, Y: d.Y, Z: d.Z} }

func eciFromVec(v vectors.Vec3) DirectionECI   { return DirectionECI{X: v.X, Y: v.Y, Z: v.Z} }
func ecefFromVec(v vectors.Vec3) DirectionECEF { return DirectionECEF{X: v.X, Y: v.Y, Z: v.Z} }

// SunDirectionECEF returns the unit Sun direction in the Earth-fixed frame.
// jd must be the same Julian Date the caller used for the inertial direction.
func SunDirectionECEF(jd timescale.JulianDate) DirectionECEF {
	return ECIToECEF(SunDirectionECI(jd), jd)
}

// ECIToECEF rotates an inertial direction into the Earth-fixed frame using
// Greenwich Mean Sidereal Time at jd.
func ECIToECEF(d DirectionECI, jd timescale.JulianDate) DirectionECEF {
	return ECIToECEFWithAngle(d, DegToRad(GMST(jd)))
}

// ECIToECEFWithAngle applies R3(theta), a rotation about z by the sidereal
// angle theta in radians, and renormalizes.
// Useful when converting many directions at one instant (compute GMST once).
func ECIToECEFWithAngle(d DirectionECI, theta float64) DirectionECEF {
	cosT := math.Cos(theta)
	sinT := math.Sin(theta)

	v := vectors.Vec3{
		X: cosT*d.X + sinT*d.Y,
		Y: -sinT*d.X + cosT*d.Y,
		Z: d.Z,
	}
	return ecefFromVec(v.Normalize())
}
