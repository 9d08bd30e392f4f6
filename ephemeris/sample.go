// Package ephemeris runs the time → ECI → ECEF → render pipeline for one or
// many instants, with optional memoisation.
package ephemeris

import (
	"time"

	"github.com/echoflaresat/sunvec/earth"
	"github.com/echoflaresat/sunvec/render"
	"github.com/echoflaresat/sunvec/timescale"
)

// Sample holds the Sun direction in every frame for one instant.
type Sample struct {
	Time   time.Time            `json:"time" yaml:"time"`
	JD     timescale.JulianDate `json:"jd" yaml:"jd"`
	ECI    earth.DirectionECI   `json:"eci" yaml:"eci"`
	ECEF   earth.DirectionECEF  `json:"ecef" yaml:"ecef"`
	Render render.Vector        `json:"render" yaml:"render"`
}

// Compute converts t once and feeds the same Julian Date to both rotation
// stages. Time is resolved to the millisecond, like the Julian Date.
func Compute(m earth.Model, t time.Time) Sample {
	t = time.UnixMilli(t.UnixMilli()).UTC()
	jd := timescale.FromTime(t)
	ecef := m.SunDirectionECEF(jd)

	return Sample{
		Time:   t,
		JD:     jd,
		ECI:    m.SunDirectionECI(jd),
		ECEF:   ecef,
		Render: render.FromECEF(ecef),
	}
}
