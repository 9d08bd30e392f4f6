package earth

import (
	"math"

	"github.com/echoflaresat/sunvec/vectors"
)

// Position returns the ECEF position in km of a point at geodetic lat/lon
// (deg) and altitude altKm above the spherical Earth.
func Position(latDeg, lonDeg, altKm float64) vectors.Vec3 {
	return SurfaceNormal(latDeg, lonDeg).Vec3().Scale(Radius + altKm)
}

// InShadow reports whether pos (ECEF, km) lies inside Earth's shadow,
// modelled as a cylinder of radius Radius extending away from the Sun.
// Points inside the Earth count as shadowed.
func InShadow(pos vectors.Vec3, sun DirectionECEF) bool {
	if pos.Norm() < Radius {
		return true
	}
	axis := sun.Vec3().Normalize().Scale(-1)
	along := pos.Dot(axis)
	if along <= 0 {
		return false // sunward half-space
	}
	perp := pos.Sub(axis.Scale(along))
	return perp.Norm() < Radius
}

// ShadowCrossing intersects the path origin + t*dir (t >= 0) with the region
// InShadow reports as shadowed: the Earth itself plus the night-side half of
// the shadow cylinder. It returns whether the path is shadowed anywhere and
// the entry and exit parameters. entry is 0 when origin is already shadowed;
// exit is +Inf when the path never leaves the shadow.
func ShadowCrossing(origin, dir vectors.Vec3, sun DirectionECEF) (bool, float64, float64) {
	lo, hi, ok := nightCylinder(origin, dir, sun)
	blo, bhi, bok := sphereInterval(origin, dir, Radius)

	switch {
	case ok && bok && blo <= hi && lo <= bhi:
		return true, math.Min(lo, blo), math.Max(hi, bhi)
	case ok && (!bok || lo < blo):
		return true, lo, hi
	case bok:
		return true, blo, bhi
	}
	return false, 0, 0
}

// nightCylinder returns the t >= 0 interval of the path inside the shadow
// cylinder and on the night side of the terminator plane.
func nightCylinder(origin, dir vectors.Vec3, sun DirectionECEF) (float64, float64, bool) {
	axis := sun.Vec3().Normalize().Scale(-1)

	// Work in the plane perpendicular to the axis.
	dDotA := dir.Dot(axis)
	dPerp := dir.Sub(axis.Scale(dDotA))
	oDotA := origin.Dot(axis)
	oPerp := origin.Sub(axis.Scale(oDotA))

	a := dPerp.Dot(dPerp)
	b := 2 * dPerp.Dot(oPerp)
	c := oPerp.Dot(oPerp) - Radius*Radius

	lo, hi := 0.0, math.Inf(1)
	if a == 0 {
		// Parallel to the axis: inside for every t or for none.
		if c >= 0 {
			return 0, 0, false
		}
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, 0, false
		}
		sqrtD := math.Sqrt(disc)
		lo = math.Max(lo, (-b-sqrtD)/(2*a))
		hi = (-b + sqrtD) / (2 * a)
	}

	// Night side: oDotA + t*dDotA > 0.
	switch {
	case dDotA > 0:
		lo = math.Max(lo, -oDotA/dDotA)
	case dDotA < 0:
		hi = math.Min(hi, -oDotA/dDotA)
	case oDotA <= 0:
		return 0, 0, false
	}

	if hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// sphereInterval returns the t >= 0 interval of origin + t*dir inside the
// sphere of radius r about the origin.
func sphereInterval(origin, dir vectors.Vec3, r float64) (float64, float64, bool) {
	a := dir.Dot(dir)
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * origin.Dot(dir)
	c := origin.Dot(origin) - r*r

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sqrtD := math.Sqrt(disc)
	lo := math.Max(0, (-b-sqrtD)/(2*a))
	hi := (-b + sqrtD) / (2 * a)
	if hi <= lo {
		return 0, 0, false
	}
	return lo, hi, true
}
