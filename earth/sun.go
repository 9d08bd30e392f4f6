package earth

import (
	"math"

	"github.com/echoflaresat/sunvec/timescale"
	"github.com/echoflaresat/sunvec/vectors"
)

// Low-order solar series, Astronomical Almanac p. C5 (NOAA/USNO).
// Good to about 0.01° in ecliptic longitude for 1950-2050.
const (
	meanAnomalyAt2000   = 357.529
	meanAnomalyRate     = 0.98560028
	meanLongitudeAt2000 = 280.459
	meanLongitudeRate   = 0.98564736
	centerTerm1         = 1.915
	centerTerm2         = 0.020
	obliquityAt2000     = 23.439
	obliquityRate       = 0.00000036
)

// SunDirectionECI returns the unit vector from Earth's centre to the Sun
// in the Earth-centred inertial frame (equator and equinox of date,
// treated as J2000 at this precision).
func SunDirectionECI(jd timescale.JulianDate) DirectionECI {
	lambda, epsilon := eclipticLongitude(jd)

	v := vectors.Vec3{
		X: math.Cos(lambda),
		Y: math.Cos(epsilon) * math.Sin(lambda),
		Z: math.Sin(epsilon) * math.Sin(lambda),
	}
	return eciFromVec(v.Normalize())
}

// SunEquatorial returns the Sun's right ascension in [0, 360) and
// declination in [-90, 90], both in degrees, from the same series.
func SunEquatorial(jd timescale.JulianDate) (raDeg, decDeg float64) {
	d := SunDirectionECI(jd)
	raDeg = NormalizeDegrees(RadToDeg(math.Atan2(d.Y, d.X)))
	decDeg = RadToDeg(math.Asin(math.Max(-1, math.Min(1, d.Z))))
	return raDeg, decDeg
}

// eclipticLongitude returns λ and ε in radians.
func eclipticLongitude(jd timescale.JulianDate) (lambda, epsilon float64) {
	d := jd.DaysSinceJ2000()

	g := DegToRad(NormalizeDegrees(meanAnomalyAt2000 + meanAnomalyRate*d))
	q := DegToRad(NormalizeDegrees(meanLongitudeAt2000 + meanLongitudeRate*d))

	lambda = q + DegToRad(centerTerm1)*math.Sin(g) + DegToRad(centerTerm2)*math.Sin(2*g)
	epsilon = DegToRad(obliquityAt2000 - obliquityRate*d)
	return lambda, epsilon
}
