// Package timescale converts UTC instants to the continuous Julian Date scale.
//
// The conversion counts elapsed Unix milliseconds, so it inherits Go's
// leap-second-free view of UTC: one day is always 86 400 000 ms.
package timescale

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// UnixEpoch is the Julian Date of 1970-01-01T00:00:00Z.
	UnixEpoch = 2440587.5
	// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01T12:00, TT≈UTC).
	J2000 = 2451545.0
	// MillisPerDay is the length of a Julian day in milliseconds.
	MillisPerDay = 86_400_000
	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525.0
)

// ErrNonFinite is returned when a Julian Date is NaN or infinite.
var ErrNonFinite = errors.New("non-finite julian date")

// JulianDate is a continuous day count since noon, 1 January 4713 BC
// (proleptic Julian calendar), including the fractional day.
type JulianDate float64

// FromTime returns the Julian Date of t. Sub-millisecond precision is dropped.
func FromTime(t time.Time) JulianDate {
	return JulianDate(float64(t.UnixMilli())/MillisPerDay + UnixEpoch)
}

// Time converts jd back to a UTC time.Time, rounded to the millisecond.
func (jd JulianDate) Time() time.Time {
	ms := math.Round((float64(jd) - UnixEpoch) * MillisPerDay)
	return time.UnixMilli(int64(ms)).UTC()
}

// DaysSinceJ2000 returns D = JD - 2451545.0.
func (jd JulianDate) DaysSinceJ2000() float64 {
	return float64(jd) - J2000
}

// CenturiesSinceJ2000 returns T = (JD - 2451545.0) / 36525.
func (jd JulianDate) CenturiesSinceJ2000() float64 {
	return jd.DaysSinceJ2000() / DaysPerCentury
}

// IsFinite reports whether jd is neither NaN nor ±Inf.
func (jd JulianDate) IsFinite() bool {
	f := float64(jd)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Validate returns ErrNonFinite for NaN or infinite dates.
func (jd JulianDate) Validate() error {
	if !jd.IsFinite() {
		return fmt.Errorf("%w: %v", ErrNonFinite, float64(jd))
	}
	return nil
}
