package earth

import "github.com/echoflaresat/sunvec/timescale"

// GMST returns Greenwich Mean Sidereal Time in degrees, in [0, 360).
//
//	θ = 280.46061837 + 360.98564736629·D + 0.000387933·T² − T³/38710000
//
// D is days and T Julian centuries since J2000.0 (Meeus, eq. 12.4).
func GMST(jd timescale.JulianDate) float64 {
	d := jd.DaysSinceJ2000()
	t := jd.CenturiesSinceJ2000()

	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000.0

	return NormalizeDegrees(gmst)
}
