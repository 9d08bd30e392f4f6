package earth

import (
	"math"

	"github.com/echoflaresat/sunvec/timescale"
)

// SurfaceNormal returns the outward unit normal of a spherical Earth at the
// given latitude and longitude (degrees, east positive).
func SurfaceNormal(latDeg, lonDeg float64) DirectionECEF {
	lat := DegToRad(latDeg)
	lon := DegToRad(lonDeg)

	return DirectionECEF{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// Illumination returns the cosine of the solar zenith angle at a surface
// point: positive on the day side, negative at night, zero on the terminator.
func Illumination(normal, sun DirectionECEF) float64 {
	return normal.Vec3().Dot(sun.Vec3())
}

// IsDaylight reports whether the Sun's centre is above the horizon of a
// spherical Earth at the given location and date.
func IsDaylight(latDeg, lonDeg float64, jd timescale.JulianDate) bool {
	return Illumination(SurfaceNormal(latDeg, lonDeg), SunDirectionECEF(jd)) > 0
}

// SubsolarPoint returns the latitude and longitude (degrees) where the Sun
// is at the zenith. Longitude is in (-180, 180].
func SubsolarPoint(sun DirectionECEF) (latDeg, lonDeg float64) {
	v := sun.Vec3().Normalize()

	latDeg = RadToDeg(math.Asin(math.Max(-1, math.Min(1, v.Z))))
	lonDeg = RadToDeg(math.Atan2(v.Y, v.X))
	if lonDeg <= -180 {
		lonDeg += 360
	}
	return latDeg, lonDeg
}
