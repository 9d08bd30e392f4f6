package earth

import "math"

// NormalizeDegrees reduces a into [0, 360).
// math.Mod keeps the sign of its first operand, so negative angles
// (dates before J2000) need the +360 fix-up.
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-17 + 360 rounds to 360.
	if a >= 360 || a == 0 {
		return 0
	}
	return a
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
